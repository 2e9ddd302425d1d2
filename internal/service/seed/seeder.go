// Пакет seed наполняет хранилище стартовым набором клиентов и заказов.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
)

const defaultMaxOrdersPerCustomer = 100

// DefaultNames возвращает стандартный набор имён для посева.
func DefaultNames() []string {
	return []string{
		"Vishnu", "Shiv", "Venkat", "Ram", "Braham",
		"Alla", "Jesus", "Durga", "Lakshmi", "Sarswati", "king",
	}
}

// Options задаёт параметры посева.
type Options struct {
	Logger    *log.Entry
	Metrics   *metrics.CRMMetrics
	Counts    domain.OrderCountSource
	Names     []string
	MaxOrders int
}

// Option настраивает Seeder.
type Option func(*Options)

// WithLogger задаёт logger для посева.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMetrics задаёт метрики посева.
func WithMetrics(m *metrics.CRMMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithNames задаёт список имён клиентов.
func WithNames(names []string) Option {
	return func(opts *Options) {
		opts.Names = names
	}
}

// WithMaxOrders задаёт верхнюю границу числа заказов на клиента.
func WithMaxOrders(max int) Option {
	return func(opts *Options) {
		opts.MaxOrders = max
	}
}

// WithOrderCountSource задаёт источник количества заказов
// (для детерминированных тестов).
func WithOrderCountSource(counts domain.OrderCountSource) Option {
	return func(opts *Options) {
		opts.Counts = counts
	}
}

// Seeder однократно наполняет хранилище при старте процесса.
// В стационарном режиме ядро его не использует.
type Seeder struct {
	repo      domain.CustomerRepository
	counts    domain.OrderCountSource
	logger    *log.Entry
	metrics   *metrics.CRMMetrics
	names     []string
	maxOrders int
}

// NewSeeder создаёт Seeder. По умолчанию: стандартные имена,
// до 100 заказов на клиента, случайное количество.
func NewSeeder(repo domain.CustomerRepository, options ...Option) *Seeder {
	opts := Options{
		Names:     DefaultNames(),
		MaxOrders: defaultMaxOrdersPerCustomer,
	}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "seeder")
	}
	if opts.Counts == nil {
		opts.Counts = NewRandomOrderCounts(time.Now().UnixNano())
	}
	if opts.MaxOrders <= 0 {
		opts.MaxOrders = defaultMaxOrdersPerCustomer
	}

	return &Seeder{
		repo:      repo,
		counts:    opts.Counts,
		logger:    logger,
		metrics:   opts.Metrics,
		names:     opts.Names,
		maxOrders: opts.MaxOrders,
	}
}

// Run выполняет посев: создаёт клиента на каждое имя и добавляет ему
// случайное число заказов с порядковыми номерами от 1. Посев прерывается
// отменой ctx между клиентами.
func (s *Seeder) Run(ctx context.Context) error {
	started := time.Now()
	totalOrders := 0

	for _, name := range s.names {
		if err := ctx.Err(); err != nil {
			return err
		}

		customer, err := s.repo.AddCustomer(name)
		if err != nil {
			return fmt.Errorf("seed customer %q: %w", name, err)
		}
		if s.metrics != nil {
			s.metrics.RecordSeededCustomer()
		}

		count := s.counts.OrderCount(s.maxOrders)
		for i := 0; i < count; i++ {
			orderID, err := s.repo.NextOrderID(customer.ID)
			if err != nil {
				return fmt.Errorf("seed order id for customer %d: %w", customer.ID, err)
			}
			if err := s.repo.AppendOrder(customer.ID, domain.Order{ID: orderID, CustomerID: customer.ID}); err != nil {
				return fmt.Errorf("seed order for customer %d: %w", customer.ID, err)
			}
		}
		totalOrders += count
		if s.metrics != nil {
			s.metrics.RecordSeededOrders(count)
		}
	}

	s.logger.WithFields(log.Fields{
		"customers": len(s.names),
		"orders":    totalOrders,
		"took":      time.Since(started).String(),
	}).Info("посев данных завершён")
	return nil
}

// randomOrderCounts — источник случайного числа заказов в диапазоне [1, max].
type randomOrderCounts struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomOrderCounts создаёт источник с заданным seed.
func NewRandomOrderCounts(seed int64) domain.OrderCountSource {
	return &randomOrderCounts{rnd: rand.New(rand.NewSource(seed))}
}

// OrderCount возвращает число заказов в диапазоне [1, max].
func (r *randomOrderCounts) OrderCount(max int) int {
	if max <= 1 {
		return 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return 1 + r.rnd.Intn(max)
}
