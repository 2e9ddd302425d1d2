// Пакет query реализует читающий слой поверх хранилища клиентов.
package query

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
)

// Engine — композиция read-only операций над CustomerReader.
// Состояния у движка нет: каждый вызов делает свежее чтение из хранилища,
// результаты между вызовами не кешируются.
type Engine struct {
	reader domain.CustomerReader
	logger *log.Entry
}

// NewEngine конструирует движок запросов.
func NewEngine(reader domain.CustomerReader, logger *log.Entry) *Engine {
	if logger == nil {
		logger = log.WithField("component", "query-engine")
	}
	return &Engine{
		reader: reader,
		logger: logger,
	}
}

// Customers возвращает снимок всех клиентов.
func (e *Engine) Customers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.reader.Customers(), nil
}

// CustomersByName возвращает клиентов с точным совпадением имени.
// Имена не уникальны, совпадений может быть ноль и больше одного.
func (e *Engine) CustomersByName(ctx context.Context, name string) ([]domain.Customer, error) {
	customers, err := e.Customers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Customer, 0)
	for _, customer := range customers {
		if customer.Name == name {
			result = append(result, customer)
		}
	}
	return result, nil
}

// CustomerByID возвращает клиента по идентификатору.
// Отсутствие клиента — ErrCustomerNotFound. Если совпадений больше одного,
// возвращается ErrAmbiguousCustomerID: уникальность идентификаторов сломана,
// и это надо отличать от обычного "не найдено". Поиск идёт перебором снимка,
// а не доверяет ключам хранилища, чтобы заметить такую поломку.
func (e *Engine) CustomerByID(ctx context.Context, id int64) (domain.Customer, error) {
	customers, err := e.Customers(ctx)
	if err != nil {
		return domain.Customer{}, err
	}

	var (
		found   domain.Customer
		matches int
	)
	for _, customer := range customers {
		if customer.ID == id {
			found = customer
			matches++
		}
	}

	switch {
	case matches == 0:
		return domain.Customer{}, domain.ErrCustomerNotFound
	case matches > 1:
		e.logger.WithFields(log.Fields{
			"customer_id": id,
			"matches":     matches,
		}).Error("customer id uniqueness invariant violated")
		return domain.Customer{}, domain.ErrAmbiguousCustomerID
	default:
		return found, nil
	}
}

// OrdersFor возвращает заказы клиента. Для неизвестного клиента — пустой
// срез без ошибки: читающий API тотален по отношению к отсутствию данных.
func (e *Engine) OrdersFor(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.reader.OrdersFor(customerID), nil
}
