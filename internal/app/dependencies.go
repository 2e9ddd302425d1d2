package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/identity"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
	"github.com/vladislavdragonenkov/crm/internal/service/crm"
	"github.com/vladislavdragonenkov/crm/internal/service/query"
	"github.com/vladislavdragonenkov/crm/internal/service/seed"
	"github.com/vladislavdragonenkov/crm/internal/service/stream"
	"github.com/vladislavdragonenkov/crm/internal/storage/memory"
)

// Dependencies содержит все компоненты ядра. Внешний слой привязки запросов
// работает только с CRM-фасадом; остальное здесь для wiring и тестов.
type Dependencies struct {
	Repo     domain.CustomerRepository
	Queries  *query.Engine
	Streamer *stream.Streamer
	Seeder   *seed.Seeder
	CRM      *crm.Service
	Metrics  *metrics.CRMMetrics
	Logger   *log.Entry
}

// NewDependencies создаёт и связывает все компоненты ядра.
func NewDependencies(cfg Config, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	crmMetrics := metrics.NewCRMMetrics()
	repo := memory.NewCustomerRepository(identity.NewSequence())
	queries := query.NewEngine(repo, logger.WithField("layer", "query"))

	streamOptions := []stream.Option{
		stream.WithLogger(logger.WithField("layer", "stream")),
		stream.WithMetrics(crmMetrics),
		stream.WithInterval(cfg.EventInterval),
		stream.WithEventCount(cfg.EventCount),
	}
	seedOptions := []seed.Option{
		seed.WithLogger(logger.WithField("layer", "seed")),
		seed.WithMetrics(crmMetrics),
		seed.WithNames(cfg.SeedNames),
		seed.WithMaxOrders(cfg.MaxOrdersPerCustomer),
	}
	if cfg.RandSeed != 0 {
		streamOptions = append(streamOptions, stream.WithKindSource(stream.NewUniformKindSource(cfg.RandSeed)))
		seedOptions = append(seedOptions, seed.WithOrderCountSource(seed.NewRandomOrderCounts(cfg.RandSeed)))
	}

	streamer := stream.NewStreamer(queries, streamOptions...)
	seeder := seed.NewSeeder(repo, seedOptions...)
	service := crm.NewService(queries, streamer, crmMetrics, logger.WithField("layer", "crm"))

	return &Dependencies{
		Repo:     repo,
		Queries:  queries,
		Streamer: streamer,
		Seeder:   seeder,
		CRM:      service,
		Metrics:  crmMetrics,
		Logger:   logger,
	}
}
