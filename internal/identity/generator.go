// Пакет identity реализует генератор уникальных идентификаторов клиентов.
package identity

import (
	"sync/atomic"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// Sequence — атомарный счётчик идентификаторов. Нулевое значение готово
// к использованию; первый вызов NextID вернёт 1.
type Sequence struct {
	counter atomic.Int64
}

// NewSequence создаёт генератор, начинающий с 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NextID возвращает следующий идентификатор. Инкремент атомарный,
// поэтому конкурентные вызовы никогда не получают одно значение.
func (s *Sequence) NextID() int64 {
	return s.counter.Add(1)
}

var _ domain.IdentityGenerator = (*Sequence)(nil)
