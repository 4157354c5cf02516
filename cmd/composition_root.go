package cmd

import (
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/auth"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Every handler gets
// a unit of work factory scoped to exactly the repositories it touches.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *auth.TokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     auth.NewTokenService(config.JWTSecret, config.JWTTTL),
	}
}

// TokenService returns the shared JWT issuer/verifier.
func (c *CompositionRoot) TokenService() *auth.TokenService {
	return c.tokens
}

// CreateHTTPHandlers assembles the full handler set the HTTP server serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterCustomer:   c.CreateRegisterCustomerCommandHandler(),
		RegisterVendor:     c.CreateRegisterVendorCommandHandler(),
		AddCartItem:        c.CreateAddCartItemCommandHandler(),
		UpdateCartItem:     c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:     c.CreateRemoveCartItemCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		AddMenuItem:        c.CreateAddMenuItemCommandHandler(),
		UpdateMenuItem:     c.CreateUpdateMenuItemCommandHandler(),
		RemoveMenuItem:     c.CreateRemoveMenuItemCommandHandler(),
		SetDeliveryPrice:   c.CreateSetDeliveryPriceCommandHandler(),

		AuthenticateCustomer: queries.NewAuthenticateCustomerQueryHandler(c.gormDB),
		AuthenticateVendor:   queries.NewAuthenticateVendorQueryHandler(c.gormDB),
		GetVendors:           queries.NewGetVendorsQueryHandler(c.gormDB),
		GetVendor:            queries.NewGetVendorQueryHandler(c.gormDB),
		GetVendorMenu:        queries.NewGetVendorMenuQueryHandler(c.gormDB),
		GetCustomerProfile:   queries.NewGetCustomerProfileQueryHandler(c.gormDB),
		GetCart:              queries.NewGetCartQueryHandler(c.gormDB),
		GetCustomerOrders:    queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetCustomerOrder:     queries.NewGetCustomerOrderQueryHandler(c.gormDB),
		GetVendorOrders:      queries.NewGetVendorOrdersQueryHandler(c.gormDB),
		GetVendorOrder:       queries.NewGetVendorOrderQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.ShoppingUoWFactory = FuncShoppingUoWFactory(func() commands.ShoppingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearStaleCartsCommandHandler() commands.ClearStaleCartsCommandHandler {
	return commands.NewClearStaleCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, services.NewOrderFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterVendorCommandHandler() commands.RegisterVendorCommandHandler {
	return commands.NewRegisterVendorCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateSetDeliveryPriceCommandHandler() commands.SetDeliveryPriceCommandHandler {
	return commands.NewSetDeliveryPriceCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	return commands.NewRemoveMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vendorUoWFactory() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncShoppingUoWFactory func() commands.ShoppingUoW

func (f FuncShoppingUoWFactory) Create() commands.ShoppingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
