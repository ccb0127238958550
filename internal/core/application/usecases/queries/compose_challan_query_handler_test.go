package queries_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/orderrepo"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/challan"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ComposeChallanQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ComposeChallanQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ComposeChallanQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewComposeChallanQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ComposeChallanQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ComposeChallanQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE timeline_entries, orders").Error
	suite.Require().NoError(err)
}

func (suite *ComposeChallanQueryHandlerTestSuite) TestHandle_MasterChallan_SinglePageWithChecklist() {
	ctx := context.Background()

	first := suite.addOrder(ctx, 1, "Sharma Textiles", 40)
	second := suite.addOrder(ctx, 2, "Mehta Silks", 25)

	query := suite.newQuery(challan.Master, []kernel.OrderID{first.ID(), second.ID()}, nil)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Empty(result.SkippedOrderIDs)

	doc := result.Document
	suite.Equal(challan.Master, doc.Type)
	suite.Require().Len(doc.Pages, 1)

	page := doc.Pages[0]
	suite.Equal(challan.Letterhead, page.Letterhead)
	suite.Equal("Master Challan", page.Title)
	suite.Require().NotNil(page.Checklist)
	suite.Len(page.Checklist.Items, 9)

	suite.Require().Len(page.Table.Rows, 2)
	suite.Equal(first.ID().String(), page.Table.Rows[0].Cells[0])
	suite.Equal(second.ID().String(), page.Table.Rows[1].Cells[0])
}

func (suite *ComposeChallanQueryHandlerTestSuite) TestHandle_ReceivingChallan_TwoCopyPages() {
	ctx := context.Background()

	o := suite.addOrder(ctx, 1, "Sharma Textiles", 40)

	query := suite.newQuery(challan.Receiving, []kernel.OrderID{o.ID()}, nil)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	doc := result.Document
	suite.Require().Len(doc.Pages, 2)
	suite.Equal("Challan - receiving (Delivery Man Copy)", doc.Pages[0].Title)
	suite.Equal("Challan - receiving (End Party Copy)", doc.Pages[1].Title)

	for _, page := range doc.Pages {
		suite.Require().NotNil(page.Signatures)
		suite.Equal(
			[]string{challan.SignatoryDeliveryMan, challan.SignatoryEndParty},
			page.Signatures.Signatories,
		)
	}
}

func (suite *ComposeChallanQueryHandlerTestSuite) TestHandle_PhotosChallan_CarriesDeliveredCounts() {
	ctx := context.Background()

	o := suite.addOrder(ctx, 1, "Sharma Textiles", 40)

	counts := map[kernel.OrderID]int{o.ID(): 12}
	query := suite.newQuery(challan.Photos, []kernel.OrderID{o.ID()}, counts)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	page := result.Document.Pages[0]
	row := page.Table.Rows[0]
	suite.Equal("12", row.Cells[len(row.Cells)-1])
}

func (suite *ComposeChallanQueryHandlerTestSuite) TestHandle_UnknownIDs_AreReportedAsSkipped() {
	ctx := context.Background()

	known := suite.addOrder(ctx, 1, "Sharma Textiles", 40)
	missing := suite.mustOrderID(404)

	query := suite.newQuery(challan.Delivering, []kernel.OrderID{known.ID(), missing}, nil)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal([]string{missing.String()}, result.SkippedOrderIDs)
	suite.Require().Len(result.Document.Pages, 2)
	suite.Len(result.Document.Pages[0].Table.Rows, 1)
}

func (suite *ComposeChallanQueryHandlerTestSuite) TestHandle_NoOrderResolves_ReturnsError() {
	ctx := context.Background()

	query := suite.newQuery(challan.Master, []kernel.OrderID{suite.mustOrderID(404)}, nil)

	_, err := suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, challan.ErrNoOrdersSelected)
}

func (suite *ComposeChallanQueryHandlerTestSuite) newQuery(
	typ challan.Type, ids []kernel.OrderID, counts map[kernel.OrderID]int,
) queries.ComposeChallanQuery {
	request, err := challan.NewRequest(typ, ids, counts)
	suite.Require().NoError(err)

	query, err := queries.NewComposeChallanQuery(request)
	suite.Require().NoError(err)
	return query
}

func (suite *ComposeChallanQueryHandlerTestSuite) addOrder(
	ctx context.Context, sequence int, client string, quantity int,
) *order.Order {
	id := suite.mustOrderID(sequence)

	o, err := order.NewOrder(id, client, "Patel Fabrics", quantity, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	return o
}

func (suite *ComposeChallanQueryHandlerTestSuite) mustOrderID(sequence int) kernel.OrderID {
	id, err := kernel.NewOrderID(sequence)
	suite.Require().NoError(err)
	return id
}

func TestComposeChallanQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposeChallanQueryHandlerTestSuite))
}
