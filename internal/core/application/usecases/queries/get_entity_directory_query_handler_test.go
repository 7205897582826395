package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/directoryrepo"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetEntityDirectoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetEntityDirectoryQueryHandler
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&directoryrepo.SupplyEntityDTO{},
		&directoryrepo.DriverDTO{},
		&directoryrepo.LabourDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetEntityDirectoryQueryHandler(db)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE supply_entities").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE labours").Error)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) seedDirectory() {
	entities := []directoryrepo.SupplyEntityDTO{
		{ID: 7, Kind: "farmer", Name: "Kumar", Address: "12 Main Rd"},
		{ID: 8, Kind: "farmer", Name: "Anand", Address: "Hill Farm"},
		{ID: 3, Kind: "supplier", Name: "Fresh Co", Address: "Market St"},
	}
	suite.Require().NoError(suite.db.Create(&entities).Error)

	drivers := []directoryrepo.DriverDTO{
		{ID: 4, Name: "Raj"},
		{ID: 5, Name: "Arun"},
	}
	suite.Require().NoError(suite.db.Create(&drivers).Error)

	labours := []directoryrepo.LabourDTO{{ID: 1, Name: "Ravi"}}
	suite.Require().NoError(suite.db.Create(&labours).Error)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TestHandle_EmptyDirectory_ReturnsEmptySlice() {
	query, err := queries.NewGetEntityDirectoryQuery(queries.DirectoryKindFarmer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TestHandle_Farmers_OrderedByName() {
	suite.seedDirectory()

	query, err := queries.NewGetEntityDirectoryQuery(queries.DirectoryKindFarmer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Anand", result[0].Name)
	suite.Equal("Hill Farm", result[0].Address)
	suite.Equal("Kumar", result[1].Name)
	suite.Equal(int64(7), result[1].ID)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TestHandle_Suppliers_FilteredByKind() {
	suite.seedDirectory()

	query, err := queries.NewGetEntityDirectoryQuery(queries.DirectoryKindSupplier)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Fresh Co", result[0].Name)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TestHandle_Drivers_OrderedByName() {
	suite.seedDirectory()

	query, err := queries.NewGetEntityDirectoryQuery(queries.DirectoryKindDriver)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Arun", result[0].Name)
	suite.Equal("Raj", result[1].Name)
	suite.Empty(result[0].Address)
}

func (suite *GetEntityDirectoryQueryHandlerTestSuite) TestHandle_Labours() {
	suite.seedDirectory()

	query, err := queries.NewGetEntityDirectoryQuery(queries.DirectoryKindLabour)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Ravi", result[0].Name)
}

func TestGetEntityDirectoryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetEntityDirectoryQueryHandlerTestSuite))
}

func Test_NewGetEntityDirectoryQuery_RejectsUnknownKind(t *testing.T) {
	_, err := queries.NewGetEntityDirectoryQuery("warehouse")
	assert.ErrorIs(t, err, queries.ErrDirectoryKindIsInvalid)
}
