package query_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	"github.com/vladislavdragonenkov/crm/internal/identity"
	"github.com/vladislavdragonenkov/crm/internal/service/query"
	"github.com/vladislavdragonenkov/crm/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newEngine(t *testing.T, names ...string) (*query.Engine, []domain.Customer) {
	t.Helper()

	repo := memory.NewCustomerRepository(identity.NewSequence())
	customers := make([]domain.Customer, 0, len(names))
	for _, name := range names {
		customer, err := repo.AddCustomer(name)
		require.NoError(t, err)
		customers = append(customers, customer)
	}
	return query.NewEngine(repo, loggerForTests()), customers
}

func TestEngine_CustomersEmptyStore(t *testing.T) {
	engine, _ := newEngine(t)

	customers, err := engine.Customers(context.Background())
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestEngine_Customers(t *testing.T) {
	engine, seeded := newEngine(t, "Vishnu", "Shiv", "Venkat")

	customers, err := engine.Customers(context.Background())
	require.NoError(t, err)
	require.Equal(t, seeded, customers)
}

func TestEngine_CustomersByName(t *testing.T) {
	engine, _ := newEngine(t, "Vishnu", "Shiv", "Vishnu")

	matches, err := engine.CustomersByName(context.Background(), "Vishnu")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, customer := range matches {
		require.Equal(t, "Vishnu", customer.Name)
	}

	none, err := engine.CustomersByName(context.Background(), "Durga")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestEngine_CustomerByID(t *testing.T) {
	engine, seeded := newEngine(t, "Vishnu", "Shiv")

	customer, err := engine.CustomerByID(context.Background(), seeded[1].ID)
	require.NoError(t, err)
	require.Equal(t, seeded[1], customer)
}

func TestEngine_CustomerByIDNotFound(t *testing.T) {
	engine, _ := newEngine(t, "Vishnu")

	_, err := engine.CustomerByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// brokenReader имитирует хранилище с нарушенным инвариантом уникальности.
type brokenReader struct{}

func (brokenReader) Customers() []domain.Customer {
	return []domain.Customer{
		{ID: 7, Name: "Vishnu"},
		{ID: 7, Name: "Shiv"},
	}
}

func (brokenReader) OrdersFor(int64) []domain.Order { return []domain.Order{} }

func TestEngine_CustomerByIDAmbiguous(t *testing.T) {
	engine := query.NewEngine(brokenReader{}, loggerForTests())

	_, err := engine.CustomerByID(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrAmbiguousCustomerID)
	require.True(t, domain.IsInvariantViolation(err))
}

func TestEngine_OrdersFor(t *testing.T) {
	repo := memory.NewCustomerRepository(identity.NewSequence())
	customer, err := repo.AddCustomer("Vishnu")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		orderID, err := repo.NextOrderID(customer.ID)
		require.NoError(t, err)
		require.NoError(t, repo.AppendOrder(customer.ID, domain.Order{ID: orderID, CustomerID: customer.ID}))
	}

	engine := query.NewEngine(repo, loggerForTests())

	orders, err := engine.OrdersFor(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.Order{
		{ID: 1, CustomerID: customer.ID},
		{ID: 2, CustomerID: customer.ID},
		{ID: 3, CustomerID: customer.ID},
	}, orders)
}

func TestEngine_OrdersForUnknownCustomer(t *testing.T) {
	engine, _ := newEngine(t, "Vishnu")

	orders, err := engine.OrdersFor(context.Background(), 42)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestEngine_CanceledContext(t *testing.T) {
	engine, _ := newEngine(t, "Vishnu")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Customers(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = engine.OrdersFor(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}
