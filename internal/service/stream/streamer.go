// Пакет stream реализует подписку на синтетические события клиентов.
package stream

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
)

const (
	defaultEventCount = 10
	defaultInterval   = time.Second
)

// CustomerResolver находит клиента по идентификатору.
// Реализуется движком запросов; в тестах подменяется заглушкой.
type CustomerResolver interface {
	CustomerByID(ctx context.Context, id int64) (domain.Customer, error)
}

// Options задаёт параметры стримера событий.
type Options struct {
	Logger     *log.Entry
	Metrics    *metrics.CRMMetrics
	Kinds      domain.EventKindSource
	Interval   time.Duration
	EventCount int
}

// Option настраивает Streamer.
type Option func(*Options)

// WithLogger задаёт logger для стримера.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMetrics задаёт метрики подписок.
func WithMetrics(m *metrics.CRMMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithKindSource задаёт источник типов событий (для детерминированных тестов).
func WithKindSource(kinds domain.EventKindSource) Option {
	return func(opts *Options) {
		opts.Kinds = kinds
	}
}

// WithInterval задаёт паузу между событиями.
func WithInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

// WithEventCount задаёт количество событий на одну подписку.
func WithEventCount(count int) Option {
	return func(opts *Options) {
		opts.EventCount = count
	}
}

// Streamer отдаёт подписчику конечную последовательность событий клиента
// с фиксированной паузой между событиями. Состояния между подписками нет.
type Streamer struct {
	resolver   CustomerResolver
	kinds      domain.EventKindSource
	logger     *log.Entry
	metrics    *metrics.CRMMetrics
	interval   time.Duration
	eventCount int
}

// NewStreamer создаёт стример событий. По умолчанию: 10 событий,
// пауза 1 секунда, равновероятный выбор типа события.
func NewStreamer(resolver CustomerResolver, options ...Option) *Streamer {
	opts := Options{
		Interval:   defaultInterval,
		EventCount: defaultEventCount,
	}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "event-streamer")
	}
	if opts.Kinds == nil {
		opts.Kinds = NewUniformKindSource(time.Now().UnixNano())
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.EventCount <= 0 {
		opts.EventCount = defaultEventCount
	}

	return &Streamer{
		resolver:   resolver,
		kinds:      opts.Kinds,
		logger:     logger,
		metrics:    opts.Metrics,
		interval:   opts.Interval,
		eventCount: opts.EventCount,
	}
}

// Subscribe возвращает канал с событиями клиента. Канал закрывается после
// отправки всех событий либо при отмене ctx. Для неизвестного клиента
// возвращается сразу закрытый канал: отсутствие клиента — не ошибка подписки.
func (s *Streamer) Subscribe(ctx context.Context, customerID int64) <-chan domain.CustomerEvent {
	events := make(chan domain.CustomerEvent)

	customer, err := s.resolver.CustomerByID(ctx, customerID)
	if err != nil {
		close(events)
		switch {
		case domain.IsNotFound(err):
			s.logger.WithField("customer_id", customerID).Debug("subscription for unknown customer, nothing to stream")
		case domain.IsInvariantViolation(err):
			s.logger.WithField("customer_id", customerID).WithError(err).Error("subscription hit a data-integrity bug")
		default:
			s.logger.WithField("customer_id", customerID).WithError(err).Debug("subscription resolve aborted")
		}
		return events
	}

	if s.metrics != nil {
		s.metrics.RecordStreamStarted()
	}
	go s.emit(ctx, customer, events)
	return events
}

// emit отправляет события с паузой interval перед каждым, включая первое.
// Пауза реализована таймером внутри select, поэтому отмена ctx останавливает
// подписку сразу, не дожидаясь конца паузы.
func (s *Streamer) emit(ctx context.Context, customer domain.Customer, events chan<- domain.CustomerEvent) {
	defer close(events)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for i := 0; i < s.eventCount; i++ {
		select {
		case <-ctx.Done():
			s.finishCanceled(customer, i)
			return
		case <-timer.C:
		}

		event := domain.CustomerEvent{
			ID:         uuid.NewString(),
			Customer:   customer,
			Kind:       s.kinds.Pick(),
			OccurredAt: time.Now().UTC(),
		}

		select {
		case events <- event:
			if s.metrics != nil {
				s.metrics.RecordEventEmitted()
			}
		case <-ctx.Done():
			s.finishCanceled(customer, i)
			return
		}

		if i < s.eventCount-1 {
			timer.Reset(s.interval)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordStreamCompleted()
	}
	s.logger.WithFields(log.Fields{
		"customer_id": customer.ID,
		"events":      s.eventCount,
	}).Debug("event stream completed")
}

func (s *Streamer) finishCanceled(customer domain.Customer, emitted int) {
	if s.metrics != nil {
		s.metrics.RecordStreamCanceled()
	}
	s.logger.WithFields(log.Fields{
		"customer_id": customer.ID,
		"emitted":     emitted,
	}).Debug("event stream canceled by consumer")
}
