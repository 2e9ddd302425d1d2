package domain

// IdentityGenerator выдаёт уникальные идентификаторы клиентов.
type IdentityGenerator interface {
	// NextID возвращает следующий идентификатор. Последовательность строго
	// возрастает начиная с 1; два вызова никогда не вернут одно значение,
	// в том числе из конкурентных горутин.
	NextID() int64
}

// CustomerReader описывает читающую часть хранилища клиентов.
type CustomerReader interface {
	// Customers возвращает снимок всех клиентов на момент вызова.
	// Последующие записи уже возвращённый срез не меняют.
	Customers() []Customer
	// OrdersFor возвращает заказы клиента в порядке добавления.
	// Для неизвестного клиента — пустой срез, не ошибка.
	OrdersFor(customerID int64) []Order
}

// CustomerRepository — полный контракт хранилища клиентов и их заказов.
// Хранилище — единственная граница синхронизации: снаружи блокировок нет.
type CustomerRepository interface {
	CustomerReader

	// AddCustomer создаёт клиента с новым идентификатором и пустым списком
	// заказов. После возврата клиент виден всем последующим чтениям.
	AddCustomer(name string) (Customer, error)
	// AppendOrder добавляет заказ клиенту. Возвращает ErrCustomerNotFound,
	// если клиента нет. Конкурентные вызовы не теряют добавления.
	AppendOrder(customerID int64, order Order) error
	// NextOrderID выдаёт следующий порядковый номер заказа для клиента
	// (нумерация с 1, своя у каждого клиента).
	NextOrderID(customerID int64) (int64, error)
}

// EventKindSource выбирает тип события для следующей генерации.
// Реализация с фиксированной последовательностью позволяет детерминированные тесты.
type EventKindSource interface {
	Pick() CustomerEventKind
}

// OrderCountSource выдаёт количество заказов для клиента при посеве данных.
type OrderCountSource interface {
	// OrderCount возвращает число в диапазоне [1, max].
	OrderCount(max int) int
}
