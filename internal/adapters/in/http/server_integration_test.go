package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/vendorrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ServerIntegrationTestSuite exercises the HTTP surface end to end:
// routing, auth middleware, use case handlers and Postgres persistence.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	server    *httptest.Server
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
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
		&customerrepo.CustomerDTO{},
		&vendorrepo.VendorDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))

	root := cmd.NewCompositionRoot(cmd.Config{
		JWTSecret: "integration-test-secret",
		JWTTTL:    time.Hour,
	}, db)

	e := echo.New()
	e.Use(httpadapter.AuthMiddleware(root.TokenService()))
	servers.RegisterHandlers(e, httpadapter.NewServer(root.CreateHTTPHandlers(), root.TokenService()))

	suite.server = httptest.NewServer(e)
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE cart_items, carts, order_items, orders, menu_items, customers, vendors",
	).Error)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ServerIntegrationTestSuite) do(method, path, token string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}

	req, err := nethttp.NewRequest(method, suite.server.URL+path, reader)
	suite.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := suite.server.Client().Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)
	return resp.StatusCode, payload
}

func (suite *ServerIntegrationTestSuite) registerCustomer() string {
	status, body := suite.do(nethttp.MethodPost, "/api/v1/customers/register", "", servers.RegisterCustomerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+15550100",
		Address:  "1 Main Street",
		Password: "secret123",
	})
	suite.Require().Equal(nethttp.StatusCreated, status, string(body))

	var token servers.AuthToken
	suite.Require().NoError(json.Unmarshal(body, &token))
	return token.Token
}

func (suite *ServerIntegrationTestSuite) registerVendor() string {
	status, body := suite.do(nethttp.MethodPost, "/api/v1/vendors/register", "", servers.RegisterVendorRequest{
		ShopName:  "Pizza Corner",
		OwnerName: "Bob",
		Email:     "bob@example.com",
		Phone:     "+15550101",
		Address:   "2 Side Street",
		Password:  "secret123",
	})
	suite.Require().Equal(nethttp.StatusCreated, status, string(body))

	var token servers.AuthToken
	suite.Require().NoError(json.Unmarshal(body, &token))
	return token.Token
}

func (suite *ServerIntegrationTestSuite) addMenuItem(vendorToken string, price int64) servers.MenuItem {
	status, body := suite.do(nethttp.MethodPost, "/api/v1/vendor/menu", vendorToken, servers.NewMenuItemRequest{
		Name:     "Margherita",
		Price:    price,
		Category: "Pizza",
	})
	suite.Require().Equal(nethttp.StatusCreated, status, string(body))

	var item servers.MenuItem
	suite.Require().NoError(json.Unmarshal(body, &item))
	return item
}

func (suite *ServerIntegrationTestSuite) TestAddCartItem_ReturnsPricedCart() {
	vendorToken := suite.registerVendor()
	item := suite.addMenuItem(vendorToken, 160)
	customerToken := suite.registerCustomer()

	status, body := suite.do(nethttp.MethodPost, "/api/v1/cart/items", customerToken, servers.AddCartItemRequest{
		MenuItemId: item.Id,
		Quantity:   2,
	})

	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var view servers.Cart
	suite.Require().NoError(json.Unmarshal(body, &view))
	suite.Equal(2, view.ItemCount)
	suite.Equal(1, view.DistinctItems)
	suite.Equal(int64(320), view.Subtotal)
	suite.Require().Len(view.Items, 1)
	suite.Equal("Margherita", view.Items[0].Name)
	suite.Equal(int64(160), view.Items[0].UnitPrice)
	suite.Equal(int64(320), view.Items[0].LineTotal)
}

func (suite *ServerIntegrationTestSuite) TestUpdateAndRemoveCartItem_ReturnPricedCart() {
	vendorToken := suite.registerVendor()
	item := suite.addMenuItem(vendorToken, 160)
	customerToken := suite.registerCustomer()

	status, _ := suite.do(nethttp.MethodPost, "/api/v1/cart/items", customerToken, servers.AddCartItemRequest{
		MenuItemId: item.Id,
		Quantity:   1,
	})
	suite.Require().Equal(nethttp.StatusOK, status)

	itemPath := "/api/v1/cart/items/" + item.Id.String()

	status, body := suite.do(nethttp.MethodPatch, itemPath, customerToken, servers.UpdateCartItemRequest{Quantity: 3})
	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var view servers.Cart
	suite.Require().NoError(json.Unmarshal(body, &view))
	suite.Equal(3, view.ItemCount)
	suite.Equal(int64(480), view.Subtotal)

	status, body = suite.do(nethttp.MethodDelete, itemPath, customerToken, nil)
	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	suite.Require().NoError(json.Unmarshal(body, &view))
	suite.Equal(0, view.ItemCount)
	suite.Empty(view.Items)
}

func (suite *ServerIntegrationTestSuite) TestClearCart_ReturnsEmptiedCart() {
	vendorToken := suite.registerVendor()
	item := suite.addMenuItem(vendorToken, 160)
	customerToken := suite.registerCustomer()

	status, _ := suite.do(nethttp.MethodPost, "/api/v1/cart/items", customerToken, servers.AddCartItemRequest{
		MenuItemId: item.Id,
		Quantity:   2,
	})
	suite.Require().Equal(nethttp.StatusOK, status)

	status, body := suite.do(nethttp.MethodDelete, "/api/v1/cart", customerToken, nil)

	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var view servers.Cart
	suite.Require().NoError(json.Unmarshal(body, &view))
	suite.Equal(0, view.ItemCount)
	suite.Equal(int64(0), view.Subtotal)
	suite.Empty(view.Items)
}

func (suite *ServerIntegrationTestSuite) TestCartMutations_WithoutCart_ReturnNotFound() {
	customerToken := suite.registerCustomer()

	status, body := suite.do(nethttp.MethodDelete, "/api/v1/cart", customerToken, nil)
	suite.Equal(nethttp.StatusNotFound, status, string(body))

	status, body = suite.do(nethttp.MethodDelete, "/api/v1/cart/items/"+kernel.NewUUID().String(), customerToken, nil)
	suite.Equal(nethttp.StatusNotFound, status, string(body))
}

func (suite *ServerIntegrationTestSuite) TestGetCustomerProfile_ReturnsOwnProfile() {
	customerToken := suite.registerCustomer()

	status, body := suite.do(nethttp.MethodGet, "/api/v1/customers/profile", customerToken, nil)

	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var profile servers.CustomerProfile
	suite.Require().NoError(json.Unmarshal(body, &profile))
	suite.Equal("Alice", profile.Name)
	suite.Equal("alice@example.com", profile.Email)
	suite.Equal("+15550100", profile.Phone)
	suite.Equal("1 Main Street", profile.Address)
}

func (suite *ServerIntegrationTestSuite) TestGetVendor_ReturnsPublicProfile() {
	suite.registerVendor()

	status, body := suite.do(nethttp.MethodGet, "/api/v1/vendors", "", nil)
	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var vendors []servers.Vendor
	suite.Require().NoError(json.Unmarshal(body, &vendors))
	suite.Require().Len(vendors, 1)

	status, body = suite.do(nethttp.MethodGet, "/api/v1/vendors/"+vendors[0].Id.String(), "", nil)
	suite.Require().Equal(nethttp.StatusOK, status, string(body))

	var vend servers.Vendor
	suite.Require().NoError(json.Unmarshal(body, &vend))
	suite.Equal("Pizza Corner", vend.ShopName)
	suite.Equal("2 Side Street", vend.Address)
	suite.Equal(vendors[0].Id, vend.Id)
}

func (suite *ServerIntegrationTestSuite) TestGetVendor_UnknownID_ReturnsNotFound() {
	status, body := suite.do(nethttp.MethodGet, "/api/v1/vendors/"+kernel.NewUUID().String(), "", nil)
	suite.Equal(nethttp.StatusNotFound, status, string(body))
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
