package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/postgres/catalogrepo"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogRepositoryIntegrationTestSuite provides integration tests for
// CatalogRegistry using PostgreSQL containers.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.CatalogEntryDTO{}))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE catalog_entries").Error)
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_NewEntry_Success() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, suite.newEntry(catalog.Client, "Sharma Textiles"))
	suite.Require().NoError(err)

	names, err := suite.repository.GetAllByKind(ctx, catalog.Client)
	suite.Require().NoError(err)
	suite.Require().Len(names, 1)
	suite.Equal("Sharma Textiles", names[0].Name())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_DuplicateEntry_IsIdempotent() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, suite.newEntry(catalog.Manufacturer, "Patel Fabrics"))
	suite.Require().NoError(err)

	// Adding the same kind and name again must not fail or create a second row
	err = suite.repository.Add(ctx, suite.newEntry(catalog.Manufacturer, "Patel Fabrics"))
	suite.Require().NoError(err)

	entries, err := suite.repository.GetAllByKind(ctx, catalog.Manufacturer)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestAdd_SameNameDifferentKind_KeepsBoth() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newEntry(catalog.Client, "Patel Group")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newEntry(catalog.Manufacturer, "Patel Group")))

	clients, err := suite.repository.GetAllByKind(ctx, catalog.Client)
	suite.Require().NoError(err)
	suite.Len(clients, 1)

	manufacturers, err := suite.repository.GetAllByKind(ctx, catalog.Manufacturer)
	suite.Require().NoError(err)
	suite.Len(manufacturers, 1)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRemove_ExistingEntry_Success() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newEntry(catalog.Client, "Sharma Textiles")))

	err := suite.repository.Remove(ctx, catalog.Client, "Sharma Textiles")
	suite.Require().NoError(err)

	entries, err := suite.repository.GetAllByKind(ctx, catalog.Client)
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRemove_UnknownEntry_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Remove(ctx, catalog.Client, "No Such Client")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetAllByKind_OrdersByCreationTime() {
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	first, err := catalog.NewEntry(catalog.Client, "Verma Prints", base)
	suite.Require().NoError(err)
	second, err := catalog.NewEntry(catalog.Client, "Agarwal Textiles", base.Add(time.Minute))
	suite.Require().NoError(err)

	// Insert newest first to prove ordering comes from the query, not insertion
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	entries, err := suite.repository.GetAllByKind(ctx, catalog.Client)
	suite.Require().NoError(err)

	suite.Require().Len(entries, 2)
	suite.Equal("Verma Prints", entries[0].Name())
	suite.Equal("Agarwal Textiles", entries[1].Name())
}

func (suite *CatalogRepositoryIntegrationTestSuite) newEntry(kind catalog.Kind, name string) catalog.Entry {
	entry, err := catalog.NewEntry(kind, name, time.Now().UTC())
	suite.Require().NoError(err)
	return entry
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
