package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsSnapshots() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertOrderItemCount(len(testOrder.Items()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForCustomer_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()

	err := suite.orderRepository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.orderRepository.GetForCustomer(ctx, originalOrder.ID(), originalOrder.CustomerID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.CustomerID(), retrievedOrder.CustomerID())
	suite.Equal(originalOrder.VendorID(), retrievedOrder.VendorID())
	suite.Equal(originalOrder.Customer(), retrievedOrder.Customer())
	suite.Equal(originalOrder.Subtotal(), retrievedOrder.Subtotal())
	suite.Equal(originalOrder.DeliveryPrice(), retrievedOrder.DeliveryPrice())
	suite.Equal(originalOrder.Total(), retrievedOrder.Total())
	suite.Equal(originalOrder.Status(), retrievedOrder.Status())
	suite.Equal(originalOrder.PaymentMethod(), retrievedOrder.PaymentMethod())

	suite.Require().Len(retrievedOrder.Items(), len(originalOrder.Items()))
	for i, originalItem := range originalOrder.Items() {
		retrievedItem := retrievedOrder.Items()[i]
		suite.Equal(originalItem.MenuItemID(), retrievedItem.MenuItemID())
		suite.Equal(originalItem.Name(), retrievedItem.Name())
		suite.Equal(originalItem.UnitPrice(), retrievedItem.UnitPrice())
		suite.Equal(originalItem.Quantity(), retrievedItem.Quantity())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForCustomer_WrongCustomer_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.orderRepository.GetForCustomer(ctx, testOrder.ID(), kernel.NewUUID())

	suite.Nil(retrievedOrder)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForVendor_WrongVendor_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.orderRepository.GetForVendor(ctx, testOrder.ID(), kernel.NewUUID())

	suite.Nil(retrievedOrder)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ExpectedMatches_AdvancesStatus() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	expected := testOrder.Status()
	suite.Require().NoError(testOrder.AdvanceTo(order.Preparing))

	err = suite.orderRepository.UpdateStatus(ctx, testOrder, expected)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.orderRepository.GetForVendor(ctx, testOrder.ID(), testOrder.VendorID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ExpectedStale_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	err := suite.orderRepository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// First advance wins.
	expected := testOrder.Status()
	suite.Require().NoError(testOrder.AdvanceTo(order.Preparing))
	suite.Require().NoError(suite.orderRepository.UpdateStatus(ctx, testOrder, expected))

	// A write that still believes the order is Pending loses the race.
	err = suite.orderRepository.UpdateStatus(ctx, testOrder, order.Pending)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// The stored status is untouched.
	retrievedOrder, err := suite.orderRepository.GetForVendor(ctx, testOrder.ID(), testOrder.VendorID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a Pending order with two item snapshots.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoney(160)
	suite.Require().NoError(err)

	item1, err := order.NewItem(kernel.NewUUID(), "Margherita", price, 2)
	suite.Require().NoError(err)

	sidePrice, err := kernel.NewMoney(45)
	suite.Require().NoError(err)

	item2, err := order.NewItem(kernel.NewUUID(), "Garlic Bread", sidePrice, 1)
	suite.Require().NoError(err)

	deliveryPrice, err := kernel.NewMoney(40)
	suite.Require().NoError(err)

	snapshot := order.CustomerSnapshot{
		Name:    "Alice",
		Phone:   "+15550100",
		Address: "1 Main Street",
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		snapshot, []order.Item{item1, item2}, deliveryPrice,
	)
	suite.Require().NoError(err)

	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertOrderItemCount verifies the number of order item snapshots in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
