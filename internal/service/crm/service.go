// Пакет crm собирает четыре операции ядра, которые видит слой привязки
// запросов (GraphQL, RPC — что угодно; ядро про транспорт не знает).
package crm

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
)

// Операции фасада для метрик и логов.
const (
	opListCustomers       = "list_customers"
	opListCustomersByName = "list_customers_by_name"
	opListOrders          = "list_orders"
	opSubscribeEvents     = "subscribe_customer_events"
)

// QueryEngine — читающие операции, которые нужны фасаду.
type QueryEngine interface {
	Customers(ctx context.Context) ([]domain.Customer, error)
	CustomersByName(ctx context.Context, name string) ([]domain.Customer, error)
	OrdersFor(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// EventStreamer — подписка на события клиента.
type EventStreamer interface {
	Subscribe(ctx context.Context, customerID int64) <-chan domain.CustomerEvent
}

// Service — фасад ядра CRM. Логики в нём нет: операции делегируются
// движку запросов и стримеру, фасад добавляет только логи и метрики.
type Service struct {
	queries  QueryEngine
	streamer EventStreamer
	logger   *log.Entry
	metrics  *metrics.CRMMetrics
}

// NewService конструирует фасад.
func NewService(queries QueryEngine, streamer EventStreamer, m *metrics.CRMMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "crm-service")
	}
	return &Service{
		queries:  queries,
		streamer: streamer,
		logger:   logger,
		metrics:  m,
	}
}

// ListCustomers возвращает всех клиентов.
func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	defer s.observe(opListCustomers, time.Now())
	return s.queries.Customers(ctx)
}

// ListCustomersByName возвращает клиентов с точным совпадением имени.
func (s *Service) ListCustomersByName(ctx context.Context, name string) ([]domain.Customer, error) {
	defer s.observe(opListCustomersByName, time.Now())
	return s.queries.CustomersByName(ctx, name)
}

// ListOrders возвращает заказы клиента; для неизвестного клиента — пустой срез.
func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	defer s.observe(opListOrders, time.Now())
	return s.queries.OrdersFor(ctx, customerID)
}

// SubscribeCustomerEvents возвращает канал событий клиента. Слой привязки
// сам переводит канал в свой транспорт живых обновлений.
func (s *Service) SubscribeCustomerEvents(ctx context.Context, customerID int64) <-chan domain.CustomerEvent {
	defer s.observe(opSubscribeEvents, time.Now())
	s.logger.WithField("customer_id", customerID).Debug("customer events subscription requested")
	return s.streamer.Subscribe(ctx, customerID)
}

func (s *Service) observe(operation string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordQuery(operation, time.Since(started))
}
