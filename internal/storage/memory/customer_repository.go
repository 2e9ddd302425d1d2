package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// customerRecord хранит клиента вместе с его заказами и счётчиком
// порядковых номеров заказов. Доступ только под мьютексом репозитория.
type customerRecord struct {
	customer    domain.Customer
	orders      []domain.Order
	lastOrderID int64
}

// customerRepositoryInMemory — потокобезопасная in-memory реализация
// CustomerRepository. Репозиторий — единственная граница синхронизации:
// все операции атомарны под его мьютексом, чтения возвращают копии.
type customerRepositoryInMemory struct {
	mu sync.RWMutex
	// items ключуется по ID клиента: ID — настоящая идентичность записи,
	// сам Customer никогда не используется как ключ.
	items map[int64]*customerRecord
	// insertion хранит порядок добавления клиентов для стабильных выборок.
	insertion []int64
	ids       domain.IdentityGenerator
}

// NewCustomerRepository возвращает in-memory хранилище клиентов.
// Генератор идентификаторов инжектируется, чтобы тесты могли подставить
// детерминированную реализацию.
func NewCustomerRepository(ids domain.IdentityGenerator) domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[int64]*customerRecord),
		ids:   ids,
	}
}

// AddCustomer создаёт клиента с новым идентификатором и пустым списком заказов.
func (r *customerRepositoryInMemory) AddCustomer(name string) (domain.Customer, error) {
	if name == "" {
		return domain.Customer{}, domain.ErrCustomerNameRequired
	}

	customer := domain.Customer{
		ID:   r.ids.NextID(),
		Name: name,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[customer.ID] = &customerRecord{
		customer: customer,
		orders:   make([]domain.Order, 0),
	}
	r.insertion = append(r.insertion, customer.ID)
	return customer, nil
}

// AppendOrder добавляет заказ в список клиента или возвращает ErrCustomerNotFound.
func (r *customerRepositoryInMemory) AppendOrder(customerID int64, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[customerID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	record.orders = append(record.orders, order)
	return nil
}

// NextOrderID выдаёт следующий порядковый номер заказа для клиента.
// Счётчик свой у каждого клиента, нумерация с 1.
func (r *customerRepositoryInMemory) NextOrderID(customerID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.items[customerID]
	if !ok {
		return 0, domain.ErrCustomerNotFound
	}
	record.lastOrderID++
	return record.lastOrderID, nil
}

// Customers возвращает снимок всех клиентов в порядке добавления.
func (r *customerRepositoryInMemory) Customers() []domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Customer, 0, len(r.insertion))
	for _, id := range r.insertion {
		result = append(result, r.items[id].customer)
	}
	return result
}

// OrdersFor возвращает копию списка заказов клиента в порядке добавления.
// Для неизвестного клиента — пустой срез.
func (r *customerRepositoryInMemory) OrdersFor(customerID int64) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[customerID]
	if !ok {
		return []domain.Order{}
	}
	result := make([]domain.Order, len(record.orders))
	copy(result, record.orders)
	return result
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
