package stagerepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/stagerepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id uuid.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// StageRecordRepositoryIntegrationTestSuite provides integration tests for
// StageRecordRepository using PostgreSQL containers to verify persistence
// behavior, including the jsonb payload round trip.
type StageRecordRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *stagerepo.GormStageRecordRepository
	tracker    *MockAggregateTracker
}

func (suite *StageRecordRepositoryIntegrationTestSuite) SetupSuite() {
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&stagerepo.StageRecordDTO{}))
}

func (suite *StageRecordRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stage_records").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = stagerepo.NewGormStageRecordRepository(suite.db, suite.tracker)
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StageRecordRepositoryIntegrationTestSuite) createTestRecord(
	orderID string,
	stg stage.Stage,
) *stage.Record {
	payload := stage.Payload{
		CollectionType: "Bag",
		Assignments: []stage.AssignmentRecord{
			{
				ID:            "OI-1",
				Product:       "Tomato",
				NeededQty:     kernel.NewQuantityFromInt(100),
				EntityType:    "farmer",
				EntityID:      stage.FlexID("7"),
				AssignedTo:    "Kumar",
				AssignedQty:   kernel.NewQuantityFromInt(60),
				Price:         kernel.NewQuantityFromInt(30),
				Place:         "Farmer place",
			},
			{
				ID:        "OI-1-remaining-0",
				Product:   "Tomato",
				NeededQty: kernel.NewQuantityFromInt(40),
			},
		},
		Routes: []stage.RouteRecord{
			{
				RouteID:    "farmer-7-OI-1",
				SourceID:   "OI-1",
				Oiid:       "OI-1",
				Product:    "Tomato",
				Location:   "Kumar",
				Address:    "12 Main Rd",
				EntityType: "farmer",
				EntityID:   stage.FlexID("7"),
				Quantity:   kernel.NewQuantityFromInt(60),
				Driver:     "Raj",
				Labours:    stage.FlexStrings{"Ravi"},
			},
		},
	}

	record, err := stage.NewRecord(
		orderID, stg, payload,
		[]string{"missing price: Onion"},
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	return record
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestAdd_ValidRecord_Success() {
	ctx := context.Background()
	record := suite.createTestRecord("ORD-1", stage.Collection)

	suite.tracker.On("TrackAggregate", record.ID(), record).Once()

	suite.Require().NoError(suite.repository.Add(ctx, record))

	var count int64
	suite.Require().NoError(
		suite.db.Model(&stagerepo.StageRecordDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestGet_RoundTripsPayload() {
	ctx := context.Background()
	record := suite.createTestRecord("ORD-1", stage.Collection)

	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	restored, err := suite.repository.Get(ctx, "ORD-1", stage.Collection)
	suite.Require().NoError(err)

	suite.Equal(record.ID(), restored.ID())
	suite.Equal(record.OrderID(), restored.OrderID())
	suite.Equal(record.Stage(), restored.Stage())
	suite.Equal(record.Issues(), restored.Issues())
	suite.Equal(record.Payload().CollectionType, restored.Payload().CollectionType)

	// Decimal internals differ between constructed and decoded quantities,
	// so payload equality is checked on the wire representation.
	wantAssignments, err := stage.EncodeAssignments(record.Payload().Assignments)
	suite.Require().NoError(err)
	gotAssignments, err := stage.EncodeAssignments(restored.Payload().Assignments)
	suite.Require().NoError(err)
	suite.JSONEq(string(wantAssignments), string(gotAssignments))

	wantRoutes, err := stage.EncodeRoutes(record.Payload().Routes)
	suite.Require().NoError(err)
	gotRoutes, err := stage.EncodeRoutes(restored.Payload().Routes)
	suite.Require().NoError(err)
	suite.JSONEq(string(wantRoutes), string(gotRoutes))
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestGet_MissingRecord_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, "ORD-404", stage.Collection)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestUpdate_ReplacesPayload() {
	ctx := context.Background()
	record := suite.createTestRecord("ORD-1", stage.Collection)

	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	replacement := stage.Payload{
		CollectionType: "Box",
		Assignments: []stage.AssignmentRecord{
			{ID: "OI-1", Product: "Tomato", NeededQty: kernel.NewQuantityFromInt(100)},
		},
	}
	record.Replace(replacement, nil, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.repository.Update(ctx, record))

	restored, err := suite.repository.Get(ctx, "ORD-1", stage.Collection)
	suite.Require().NoError(err)
	suite.Equal("Box", restored.Payload().CollectionType)
	suite.Len(restored.Payload().Assignments, 1)
	suite.Nil(restored.Payload().Routes)
	suite.Empty(restored.Issues())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestUpdate_MissingRecord_Fails() {
	ctx := context.Background()
	record := suite.createTestRecord("ORD-1", stage.Collection)

	err := suite.repository.Update(ctx, record)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestAdd_DuplicateStage_Fails() {
	ctx := context.Background()
	first := suite.createTestRecord("ORD-1", stage.Collection)
	second := suite.createTestRecord("ORD-1", stage.Collection)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	suite.Error(suite.repository.Add(ctx, second))
}

func (suite *StageRecordRepositoryIntegrationTestSuite) TestGetAllForOrder_ReturnsAllStages() {
	ctx := context.Background()

	collection := suite.createTestRecord("ORD-1", stage.Collection)
	packaging := suite.createTestRecord("ORD-1", stage.Packaging)
	other := suite.createTestRecord("ORD-2", stage.Collection)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, collection))
	suite.Require().NoError(suite.repository.Add(ctx, packaging))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	records, err := suite.repository.GetAllForOrder(ctx, "ORD-1")
	suite.Require().NoError(err)
	suite.Len(records, 2)
	for _, record := range records {
		suite.Equal("ORD-1", record.OrderID())
	}
}

func TestStageRecordRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StageRecordRepositoryIntegrationTestSuite))
}
