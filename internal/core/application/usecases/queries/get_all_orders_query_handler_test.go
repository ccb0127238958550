package queries_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TimelineEntryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE timeline_entries, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_OrdersWithHistory_ReturnsOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	newer := suite.addOrder(ctx, 2, "Mehta Silks", base.Add(time.Hour), 3)
	older := suite.addOrder(ctx, 1, "Sharma Textiles", base, 1)

	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(older.ID().String(), result[0].ID)
	suite.Equal(newer.ID().String(), result[1].ID)

	first := result[0]
	suite.Equal("Sharma Textiles", first.Client)
	suite.Equal("Patel Fabrics", first.Manufacturer)
	suite.Equal(order.ProductSarees, first.Product)
	suite.Equal(40, first.Quantity)
	suite.Equal("Order Received", first.Status)

	second := result[1]
	suite.Equal("Collected from Studio", second.Status)
	suite.Require().Len(second.Timeline, 4)
	suite.Equal("Order Received", second.Timeline[0].Stage)
	suite.Equal("Retrieved from Manufacturer", second.Timeline[1].Stage)
	suite.Equal("At Photography Studio", second.Timeline[2].Stage)
	suite.Equal("Collected from Studio", second.Timeline[3].Stage)
}

// addOrder stores an order advanced the given number of stages past the
// initial one.
func (suite *GetAllOrdersQueryHandlerTestSuite) addOrder(
	ctx context.Context, sequence int, client string, createdAt time.Time, advances int,
) *order.Order {
	id, err := kernel.NewOrderID(sequence)
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, client, "Patel Fabrics", 40, createdAt)
	suite.Require().NoError(err)

	for i := range advances {
		suite.Require().NoError(o.Advance(createdAt.Add(time.Duration(i+1) * time.Minute)))
	}

	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	return o
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repository tracker dependency for test
// purposes. Query tests do not care about aggregate tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.OrderID, _ any) {
	// No-op for query tests
}
