package domain

import "time"

// CustomerEventKind определяет тип события жизненного цикла клиента.
type CustomerEventKind string

const (
	// CustomerEventCreated — клиент создан.
	CustomerEventCreated CustomerEventKind = "customer.created"
	// CustomerEventUpdated — данные клиента обновлены.
	CustomerEventUpdated CustomerEventKind = "customer.updated"
	// CustomerEventDeleted — клиент удалён.
	CustomerEventDeleted CustomerEventKind = "customer.deleted"
)

// CustomerEventKinds возвращает полный список типов событий.
// Порядок фиксированный, на него опираются весовые настройки генерации.
func CustomerEventKinds() []CustomerEventKind {
	return []CustomerEventKind{
		CustomerEventCreated,
		CustomerEventUpdated,
		CustomerEventDeleted,
	}
}

// CustomerEvent — синтетическое событие о клиенте. События эфемерны:
// генерируются по запросу подписчика и нигде не сохраняются.
type CustomerEvent struct {
	// ID — уникальный идентификатор события для корреляции в логах подписчика.
	ID string
	// Customer — клиент, которого касается событие (копия записи).
	Customer Customer
	// Kind — тип события.
	Kind CustomerEventKind
	// OccurredAt — момент генерации события.
	OccurredAt time.Time
}
