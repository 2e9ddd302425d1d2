package stream

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// randomKindSource выбирает тип события случайно, по кумулятивным весам.
// math/rand.Rand не потокобезопасен, поэтому доступ под мьютексом:
// один источник могут делить несколько подписок.
type randomKindSource struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	kinds []domain.CustomerEventKind
	cum   []float64
}

// NewUniformKindSource возвращает источник с равновероятным выбором
// из всех типов событий.
func NewUniformKindSource(seed int64) domain.EventKindSource {
	kinds := domain.CustomerEventKinds()
	weights := make([]float64, len(kinds))
	for i := range weights {
		weights[i] = 1
	}
	source, err := NewWeightedKindSource(seed, weights)
	if err != nil {
		// Равные веса всегда валидны.
		panic(err)
	}
	return source
}

// NewWeightedKindSource возвращает источник с весами по порядку
// domain.CustomerEventKinds(). Вес 0 исключает тип из выбора.
func NewWeightedKindSource(seed int64, weights []float64) (domain.EventKindSource, error) {
	kinds := domain.CustomerEventKinds()
	if len(weights) != len(kinds) {
		return nil, fmt.Errorf("expected %d weights, got %d", len(kinds), len(weights))
	}

	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weight for %s must be non-negative, got %f", kinds[i], w)
		}
		total += w
		cum[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("at least one weight must be positive")
	}

	return &randomKindSource{
		rnd:   rand.New(rand.NewSource(seed)),
		kinds: kinds,
		cum:   cum,
	}, nil
}

// Pick возвращает следующий тип события.
func (s *randomKindSource) Pick() domain.CustomerEventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	draw := s.rnd.Float64() * s.cum[len(s.cum)-1]
	for i, bound := range s.cum {
		if draw < bound {
			return s.kinds[i]
		}
	}
	return s.kinds[len(s.kinds)-1]
}
