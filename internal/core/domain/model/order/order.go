package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderHasNoItems is returned when attempting to create an order without items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Item is one snapshotted line of an order: the menu item reference plus the
// name and unit price captured at placement time. Once the order exists, later
// catalog changes never affect these values.
type Item struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
}

// NewItem creates an order item snapshot.
func NewItem(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("itemName")
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   quantity,
	}, nil
}

// MenuItemID returns the referenced catalog item id.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the item name captured at placement time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at placement time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Total returns unit price × quantity.
func (i Item) Total() kernel.Money {
	return i.unitPrice.MultiplyByQuantity(i.quantity)
}

// CustomerSnapshot is the delivery contact copied from the customer profile at
// placement time.
type CustomerSnapshot struct {
	Name    string
	Phone   string
	Address string
}

// Validate checks that every snapshot field is present.
func (s CustomerSnapshot) Validate() error {
	if s.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if s.Phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if s.Address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	return nil
}

// Order is the aggregate root for a placed order. It is an immutable snapshot
// of the cart and catalog at placement time; after creation the only mutable
// field is the status, which moves along the forward-only chain.
//
// Invariants:
//   - Must reference a customer and the single vendor all items belong to
//   - Has at least one item; every item carries its own snapshotted price
//   - subtotal = Σ(unitPrice × quantity); total = subtotal + deliveryPrice
//   - Status transitions follow the Pending → Preparing → OutForDelivery →
//     Delivered chain with no skipping or reversal
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	vendorID      kernel.UUID
	customer      CustomerSnapshot
	items         []Item
	subtotal      kernel.Money
	deliveryPrice kernel.Money
	total         kernel.Money
	status        Status
	payment       PaymentMethod

	isConstructed bool
}

// NewOrder creates a Pending, cash-on-delivery order from snapshotted items.
// The subtotal and total are computed here so they can never drift from the
// item snapshots.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	customer CustomerSnapshot,
	items []Item,
	deliveryPrice kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		payment:       PaymentCashOnDelivery,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setCustomerSnapshot(customer),
		o.setItems(items),
		o.setDeliveryPrice(deliveryPrice),
	); err != nil {
		return nil, err
	}

	subtotal := kernel.Zero()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	o.subtotal = subtotal
	o.total = subtotal.Add(o.deliveryPrice)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	customer CustomerSnapshot,
	items []Item,
	deliveryPrice kernel.Money,
	status Status,
	payment PaymentMethod,
) (*Order, error) {
	o, err := NewOrder(id, customerID, vendorID, customer, items, deliveryPrice)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = payment.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.payment = payment
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the id of the vendor fulfilling the order.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Customer returns the delivery contact snapshot.
func (o *Order) Customer() CustomerSnapshot {
	return o.customer
}

// Items returns a copy of the snapshotted order items in cart order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of all item totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryPrice returns the vendor delivery price captured at placement time.
func (o *Order) DeliveryPrice() kernel.Money {
	return o.deliveryPrice
}

// Total returns subtotal plus delivery price.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the order's current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// AdvanceTo moves the order's status to requested.
// The move succeeds only when requested is exactly the single successor of the
// current status; otherwise an IllegalTransitionError is returned and the
// order is unchanged. The previous status is not retained.
func (o *Order) AdvanceTo(requested Status) error {
	newStatus, err := o.status.AdvanceTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setCustomerSnapshot(snapshot CustomerSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	o.customer = snapshot
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryPrice(deliveryPrice kernel.Money) error {
	if err := deliveryPrice.Validate(); err != nil {
		return err
	}
	o.deliveryPrice = deliveryPrice
	return nil
}
