// Package http implements the inbound HTTP adapter. It binds the generated
// server interface to the application's command and query handlers and owns
// nothing but translation: body to command, response struct to JSON, error to
// status code.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles every use case the HTTP server dispatches to.
type Handlers struct {
	// Command handlers
	RegisterCustomer   commands.RegisterCustomerCommandHandler
	RegisterVendor     commands.RegisterVendorCommandHandler
	AddCartItem        commands.AddCartItemCommandHandler
	UpdateCartItem     commands.UpdateCartItemCommandHandler
	RemoveCartItem     commands.RemoveCartItemCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	AdvanceOrderStatus commands.AdvanceOrderStatusCommandHandler
	AddMenuItem        commands.AddMenuItemCommandHandler
	UpdateMenuItem     commands.UpdateMenuItemCommandHandler
	RemoveMenuItem     commands.RemoveMenuItemCommandHandler
	SetDeliveryPrice   commands.SetDeliveryPriceCommandHandler

	// Query handlers
	AuthenticateCustomer queries.AuthenticateCustomerQueryHandler
	AuthenticateVendor   queries.AuthenticateVendorQueryHandler
	GetVendors           queries.GetVendorsQueryHandler
	GetVendor            queries.GetVendorQueryHandler
	GetVendorMenu        queries.GetVendorMenuQueryHandler
	GetCustomerProfile   queries.GetCustomerProfileQueryHandler
	GetCart              queries.GetCartQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetCustomerOrder     queries.GetCustomerOrderQueryHandler
	GetVendorOrders      queries.GetVendorOrdersQueryHandler
	GetVendorOrder       queries.GetVendorOrderQueryHandler
}

// Server implements the generated ServerInterface. It derives the customer or
// vendor scope of every operation from the authenticated principal, never
// from the request body.
type Server struct {
	handlers Handlers
	tokens   *auth.TokenService
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(handlers Handlers, tokens *auth.TokenService) *Server {
	return &Server{handlers: handlers, tokens: tokens}
}

// RegisterCustomer handles POST /api/v1/customers/register.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body servers.RegisterCustomerRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		customerID, body.Name, body.Email, body.Phone, body.Address, body.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(customerID.String(), auth.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.AuthToken{Token: token})
}

// LoginCustomer handles POST /api/v1/customers/login.
func (s *Server) LoginCustomer(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewAuthenticateCustomerQuery(body.Email, body.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	customerID, err := s.handlers.AuthenticateCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(customerID.String(), auth.RoleCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AuthToken{Token: token})
}

// GetCustomerProfile handles GET /api/v1/customers/profile.
func (s *Server) GetCustomerProfile(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerProfileQuery(customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	profile, err := s.handlers.GetCustomerProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CustomerProfile{
		Id:      profile.ID.Bytes(),
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
	})
}

// RegisterVendor handles POST /api/v1/vendors/register.
func (s *Server) RegisterVendor(ctx echo.Context) error {
	var body servers.RegisterVendorRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	vendorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVendorCommand(
		vendorID, body.ShopName, body.OwnerName, body.Email, body.Phone, body.Address, body.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RegisterVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(vendorID.String(), auth.RoleVendor)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.AuthToken{Token: token})
}

// LoginVendor handles POST /api/v1/vendors/login.
func (s *Server) LoginVendor(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewAuthenticateVendorQuery(body.Email, body.Password)
	if err != nil {
		return badRequest(ctx, err)
	}

	vendorID, err := s.handlers.AuthenticateVendor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(vendorID.String(), auth.RoleVendor)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AuthToken{Token: token})
}

// GetVendors handles GET /api/v1/vendors.
func (s *Server) GetVendors(ctx echo.Context) error {
	vendors, err := s.handlers.GetVendors.Handle(ctx.Request().Context(), queries.NewGetVendorsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Vendor, len(vendors))
	for i, v := range vendors {
		response[i] = servers.Vendor{
			Id:            v.ID.Bytes(),
			ShopName:      v.ShopName,
			Address:       v.Address,
			DeliveryPrice: v.DeliveryPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVendor handles GET /api/v1/vendors/{vendorId}.
func (s *Server) GetVendor(ctx echo.Context, vendorId openapi_types.UUID) error {
	vendorID, err := kernel.UUIDFromBytes(vendorId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetVendorQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	vend, err := s.handlers.GetVendor.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Vendor{
		Id:            vend.ID.Bytes(),
		ShopName:      vend.ShopName,
		Address:       vend.Address,
		DeliveryPrice: vend.DeliveryPrice,
	})
}

// GetVendorMenu handles GET /api/v1/vendors/{vendorId}/menu.
func (s *Server) GetVendorMenu(
	ctx echo.Context,
	vendorId openapi_types.UUID,
	params servers.GetVendorMenuParams,
) error {
	vendorID, err := kernel.UUIDFromBytes(vendorId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	onlyAvailable := params.OnlyAvailable != nil && *params.OnlyAvailable
	query, err := queries.NewGetVendorMenuQuery(vendorID, onlyAvailable)
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.handlers.GetVendorMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Id:          item.ID.Bytes(),
			VendorId:    item.VendorID.Bytes(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			Available:   item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	return s.respondCart(ctx, customerID)
}

// respondCart renders the customer's priced cart view. Cart mutations
// return it too, so the client always sees the cart that resulted from
// the call.
func (s *Server) respondCart(ctx echo.Context, customerID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cartView, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]servers.CartLine, len(cartView.Lines))
	for i, line := range cartView.Lines {
		items[i] = servers.CartLine{
			MenuItemId: line.MenuItemID.Bytes(),
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			LineTotal:  line.LineTotal,
			Available:  line.Available,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Cart{
		Items:         items,
		ItemCount:     cartView.ItemCount,
		DistinctItems: cartView.DistinctItems,
		Subtotal:      cartView.Subtotal,
	})
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	var body servers.AddCartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromBytes(body.MenuItemId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(customerID, menuItemID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, customerID)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/{menuItemId}.
func (s *Server) UpdateCartItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	var body servers.UpdateCartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromBytes(menuItemId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(customerID, menuItemID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, customerID)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{menuItemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	menuItemID, err := kernel.UUIDFromBytes(menuItemId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, menuItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, customerID)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, customerID)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	// The order id is minted here so the handler stays idempotent to retries
	// at the transport level.
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.handlers.GetCustomerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAPIOrder(placed))
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetCustomerOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetCustomerOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	customerID, err := principalID(ctx, auth.RoleCustomer)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.handlers.GetCustomerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(resp))
}

// AddMenuItem handles POST /api/v1/vendor/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	var body servers.NewMenuItemRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		menuItemID, vendorID, body.Name, description, price, body.Category)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.MenuItem{
		Id:          menuItemID.Bytes(),
		VendorId:    vendorID.Bytes(),
		Name:        body.Name,
		Description: description,
		Price:       body.Price,
		Category:    body.Category,
		Available:   true,
	})
}

// UpdateMenuItem handles PUT /api/v1/vendor/menu/{menuItemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	var body servers.UpdateMenuItemRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromBytes(menuItemId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID, vendorID, body.Name, description, price, body.Category, body.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/vendor/menu/{menuItemId}.
func (s *Server) RemoveMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	menuItemID, err := kernel.UUIDFromBytes(menuItemId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveMenuItemCommand(menuItemID, vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RemoveMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetDeliveryPrice handles PUT /api/v1/vendor/delivery-price.
func (s *Server) SetDeliveryPrice(ctx echo.Context) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	var body servers.DeliveryPriceRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	price, err := kernel.NewMoney(body.DeliveryPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetDeliveryPriceCommand(vendorID, price)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SetDeliveryPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVendorOrders handles GET /api/v1/vendor/orders.
func (s *Server) GetVendorOrders(ctx echo.Context, params servers.GetVendorOrdersParams) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	status := ""
	if params.Status != nil {
		status = *params.Status
	}

	query, err := queries.NewGetVendorOrdersQuery(vendorID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetVendorOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetVendorOrder handles GET /api/v1/vendor/orders/{orderId}.
func (s *Server) GetVendorOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetVendorOrderQuery(orderID, vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.handlers.GetVendorOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(resp))
}

// AdvanceOrderStatus handles PATCH /api/v1/vendor/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	vendorID, err := principalID(ctx, auth.RoleVendor)
	if err != nil {
		return err
	}

	var body servers.OrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err)
	}

	next, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, vendorID, next)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetVendorOrderQuery(orderID, vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetVendorOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(resp))
}

// toAPIOrder converts the order read model to its wire representation.
func toAPIOrder(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			MenuItemId: item.MenuItemID.Bytes(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		}
	}

	return servers.Order{
		Id:              resp.ID.Bytes(),
		VendorId:        resp.VendorID.Bytes(),
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		DeliveryAddress: resp.DeliveryAddress,
		Items:           items,
		Subtotal:        resp.Subtotal,
		DeliveryPrice:   resp.DeliveryPrice,
		Total:           resp.Total,
		Status:          resp.Status,
		PaymentMethod:   resp.PaymentMethod,
		CreatedAt:       resp.CreatedAt,
	}
}

func toAPIOrders(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toAPIOrder(o)
	}
	return response
}
