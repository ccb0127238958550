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

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE timeline_entries, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_AllCountersZero() {
	query := queries.NewGetOrderStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(0, result.Total)
	suite.Equal(0, result.Active)

	// Every stage must be present even with no orders
	suite.Len(result.ByStage, 9)
	for _, stage := range order.Stages() {
		suite.Contains(result.ByStage, stage.String())
		suite.Equal(0, result.ByStage[stage.String()])
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_MixedStages_CountsPerStage() {
	ctx := context.Background()

	// Two at the initial stage, one mid-pipeline, one delivered
	suite.addOrder(ctx, 1, 0)
	suite.addOrder(ctx, 2, 0)
	suite.addOrder(ctx, 3, 5)
	suite.addOrder(ctx, 4, 8)

	query := queries.NewGetOrderStatsQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(4, result.Total)
	suite.Equal(3, result.Active)
	suite.Equal(2, result.ByStage["Order Received"])
	suite.Equal(1, result.ByStage["Pre Printing"])
	suite.Equal(1, result.ByStage["Photos Delivered"])
	suite.Equal(0, result.ByStage["Printing"])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) addOrder(ctx context.Context, sequence int, advances int) {
	id, err := kernel.NewOrderID(sequence)
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, "Sharma Textiles", "Patel Fabrics", 40, time.Now().UTC())
	suite.Require().NoError(err)

	for range advances {
		suite.Require().NoError(o.Advance(time.Now().UTC()))
	}

	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
