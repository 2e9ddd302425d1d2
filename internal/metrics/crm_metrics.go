package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CRMMetrics содержит метрики ядра CRM: запросы, подписки на события и посев данных.
type CRMMetrics struct {
	// Счётчики запросов по операциям
	queriesTotal *prometheus.CounterVec

	// Гистограмма времени выполнения запросов
	queryDuration *prometheus.HistogramVec

	// Счётчики событийных подписок
	eventsEmitted    prometheus.Counter
	streamsStarted   prometheus.Counter
	streamsCanceled  prometheus.Counter
	streamsCompleted prometheus.Counter

	// Gauge для активных подписок
	activeStreams prometheus.Gauge

	// Счётчики посева данных
	seededCustomers prometheus.Counter
	seededOrders    prometheus.Counter
}

// NewCRMMetrics создаёт новый экземпляр метрик CRM.
func NewCRMMetrics() *CRMMetrics {
	return newCRMMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCRMMetricsWithRegisterer(registerer prometheus.Registerer) *CRMMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CRMMetrics{
		queriesTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "crm_queries_total",
			Help: "Total number of query operations grouped by operation name",
		}, []string{"operation"}),
		queryDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "crm_query_duration_seconds",
			Help:    "Duration of query operations in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
		eventsEmitted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_customer_events_emitted_total",
			Help: "Total number of customer events emitted to subscribers",
		}),
		streamsStarted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_event_streams_started_total",
			Help: "Total number of customer event streams started",
		}),
		streamsCanceled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_event_streams_canceled_total",
			Help: "Total number of customer event streams canceled by the consumer",
		}),
		streamsCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_event_streams_completed_total",
			Help: "Total number of customer event streams that emitted all events",
		}),
		activeStreams: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "crm_active_event_streams",
			Help: "Number of currently active customer event streams",
		}),
		seededCustomers: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_seeded_customers_total",
			Help: "Total number of customers created during seeding",
		}),
		seededOrders: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_seeded_orders_total",
			Help: "Total number of orders created during seeding",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordQuery увеличивает счётчик запросов и записывает длительность операции.
func (m *CRMMetrics) RecordQuery(operation string, duration time.Duration) {
	m.queriesTotal.WithLabelValues(operation).Inc()
	m.queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEventEmitted увеличивает счётчик отправленных событий.
func (m *CRMMetrics) RecordEventEmitted() {
	m.eventsEmitted.Inc()
}

// RecordStreamStarted отмечает запуск подписки.
func (m *CRMMetrics) RecordStreamStarted() {
	m.streamsStarted.Inc()
	m.activeStreams.Inc()
}

// RecordStreamCanceled отмечает отмену подписки потребителем.
func (m *CRMMetrics) RecordStreamCanceled() {
	m.streamsCanceled.Inc()
	m.activeStreams.Dec()
}

// RecordStreamCompleted отмечает подписку, отдавшую все события.
func (m *CRMMetrics) RecordStreamCompleted() {
	m.streamsCompleted.Inc()
	m.activeStreams.Dec()
}

// RecordSeededCustomer увеличивает счётчик посеянных клиентов.
func (m *CRMMetrics) RecordSeededCustomer() {
	m.seededCustomers.Inc()
}

// RecordSeededOrders увеличивает счётчик посеянных заказов.
func (m *CRMMetrics) RecordSeededOrders(count int) {
	m.seededOrders.Add(float64(count))
}
