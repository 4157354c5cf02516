package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CartRepositoryIntegrationTestSuite provides integration tests for CartRepository
// using PostgreSQL containers to verify database persistence behavior.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	cartRepository *cartrepo.GormCartRepository
	tracker        *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
	))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_items, carts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.cartRepository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_NewCart_PersistsLines() {
	ctx := context.Background()

	testCart := suite.createTestCart(3)
	suite.tracker.On("TrackAggregate", testCart.CustomerID(), testCart).Once()

	err := suite.cartRepository.Save(ctx, testCart)
	suite.Require().NoError(err)

	suite.assertCartCount(1)
	suite.assertCartItemCount(len(testCart.Lines()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_ExistingCart_ReturnsLinesInInsertionOrder() {
	ctx := context.Background()

	originalCart := suite.createTestCart(3)
	suite.tracker.On("TrackAggregate", originalCart.CustomerID(), originalCart).Once()

	err := suite.cartRepository.Save(ctx, originalCart)
	suite.Require().NoError(err)

	retrievedCart, err := suite.cartRepository.Get(ctx, originalCart.CustomerID())
	suite.Require().NoError(err)

	suite.Equal(originalCart.CustomerID(), retrievedCart.CustomerID())
	suite.Require().Len(retrievedCart.Lines(), len(originalCart.Lines()))
	for i, originalLine := range originalCart.Lines() {
		retrievedLine := retrievedCart.Lines()[i]
		suite.Equal(originalLine.MenuItemID(), retrievedLine.MenuItemID())
		suite.Equal(originalLine.Quantity(), retrievedLine.Quantity())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_NonExistentCart_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedCart, err := suite.cartRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedCart)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ExistingCart_ReplacesLines() {
	ctx := context.Background()

	testCart := suite.createTestCart(2)
	suite.tracker.On("TrackAggregate", testCart.CustomerID(), testCart).Twice()

	err := suite.cartRepository.Save(ctx, testCart)
	suite.Require().NoError(err)

	// Mutate the aggregate: drop one line, bump the other.
	firstLine, ok := testCart.First()
	suite.Require().True(ok)
	removedID := testCart.Lines()[1].MenuItemID()

	suite.Require().NoError(testCart.RemoveItem(removedID))
	suite.Require().NoError(testCart.UpdateQuantity(firstLine.MenuItemID(), 7))

	err = suite.cartRepository.Save(ctx, testCart)
	suite.Require().NoError(err)

	retrievedCart, err := suite.cartRepository.Get(ctx, testCart.CustomerID())
	suite.Require().NoError(err)

	suite.Require().Len(retrievedCart.Lines(), 1)
	suite.Equal(firstLine.MenuItemID(), retrievedCart.Lines()[0].MenuItemID())
	suite.Equal(7, retrievedCart.Lines()[0].Quantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ClearedCart_LeavesEmptyCartRow() {
	ctx := context.Background()

	testCart := suite.createTestCart(2)
	suite.tracker.On("TrackAggregate", testCart.CustomerID(), testCart).Twice()

	err := suite.cartRepository.Save(ctx, testCart)
	suite.Require().NoError(err)

	testCart.Clear()
	err = suite.cartRepository.Save(ctx, testCart)
	suite.Require().NoError(err)

	retrievedCart, err := suite.cartRepository.Get(ctx, testCart.CustomerID())
	suite.Require().NoError(err)
	suite.True(retrievedCart.IsEmpty())

	suite.assertCartCount(1)
	suite.assertCartItemCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestClearAbandoned_StaleCarts_EmptiedAndCounted() {
	ctx := context.Background()

	staleCart := suite.createTestCart(2)
	freshCart := suite.createTestCart(1)
	suite.tracker.On("TrackAggregate", staleCart.CustomerID(), staleCart).Once()
	suite.tracker.On("TrackAggregate", freshCart.CustomerID(), freshCart).Once()

	suite.Require().NoError(suite.cartRepository.Save(ctx, staleCart))
	suite.Require().NoError(suite.cartRepository.Save(ctx, freshCart))

	// Age one cart past the cutoff.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE carts SET updated_at = ? WHERE customer_id = ?",
		time.Now().UTC().Add(-48*time.Hour), staleCart.CustomerID().Bytes(),
	).Error)

	cleared, err := suite.cartRepository.ClearAbandoned(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), cleared)

	// The stale cart survives as an empty row; the fresh cart keeps its lines.
	retrievedStale, err := suite.cartRepository.Get(ctx, staleCart.CustomerID())
	suite.Require().NoError(err)
	suite.True(retrievedStale.IsEmpty())

	retrievedFresh, err := suite.cartRepository.Get(ctx, freshCart.CustomerID())
	suite.Require().NoError(err)
	suite.Len(retrievedFresh.Lines(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CartRepositoryIntegrationTestSuite) TestClearAbandoned_NoStaleCarts_ReturnsZero() {
	ctx := context.Background()

	freshCart := suite.createTestCart(1)
	suite.tracker.On("TrackAggregate", freshCart.CustomerID(), freshCart).Once()
	suite.Require().NoError(suite.cartRepository.Save(ctx, freshCart))

	cleared, err := suite.cartRepository.ClearAbandoned(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Zero(cleared)

	suite.assertCartItemCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestCart creates a cart with the given number of distinct lines.
func (suite *CartRepositoryIntegrationTestSuite) createTestCart(lineCount int) *cart.Cart {
	testCart, err := cart.NewCart(kernel.NewUUID())
	suite.Require().NoError(err)

	for i := range lineCount {
		suite.Require().NoError(testCart.AddItem(kernel.NewUUID(), i+1))
	}
	return testCart
}

// assertCartCount verifies the number of cart rows in the database.
func (suite *CartRepositoryIntegrationTestSuite) assertCartCount(expected int) {
	var count int64
	err := suite.db.Model(&cartrepo.CartDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertCartItemCount verifies the number of cart line rows in the database.
func (suite *CartRepositoryIntegrationTestSuite) assertCartItemCount(expected int) {
	var count int64
	err := suite.db.Model(&cartrepo.CartItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
