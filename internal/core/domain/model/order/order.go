package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its items, the derived
// total price, the lifecycle status and the payment artifacts.
//
// Order follows these invariants:
//   - It always holds at least one item
//   - TotalPrice always equals the sum of item subtotals; there is no setter for it
//   - A customer reference, when present, is never the nil UUID
//   - Items can only change while the order is Pending
//   - Status changes only through the transition table in Status
//   - UpdatedAt is set by every mutating method and by nothing else
//
// Order is not safe for concurrent mutation. Each command handler loads its own
// instance and the storage layer serialises writers to the same order.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is nil for anonymous orders
	customerID *kernel.UUID

	// items are the order lines, in the order they were added
	items []Item

	// status is the current lifecycle state
	status Status

	// totalPrice is recomputed from items after every item change
	totalPrice kernel.Money

	// qrCode and paymentPreferenceID are opaque payment artifacts, empty when unset
	qrCode              string
	paymentPreferenceID string

	createdAt time.Time
	updatedAt *time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Parameters:
//   - customerID: the ordering customer, or nil for an anonymous order
//   - items: the initial lines; at least one is required
//
// Returns:
//   - *Order: the created order, with a generated id and CreatedAt set to now
//   - error: validation errors joined together when any input is invalid
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	burger, _ := order.NewItem(productID, "Burger", price, 3)
//	o, err := order.NewOrder(nil, []order.Item{burger})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.TotalPrice()) // 30.00
func NewOrder(customerID *kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		id:            kernel.NewUUID(),
		status:        Pending,
		createdAt:     now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Every field is validated again and the
// total price is recomputed from the restored items rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	items []Item,
	status Status,
	qrCode string,
	paymentPreferenceID string,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		qrCode:              qrCode,
		paymentPreferenceID: paymentPreferenceID,
		createdAt:           createdAt,
		isConstructed:       true,
	}
	if updatedAt != nil {
		u := *updatedAt
		o.updatedAt = &u
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer reference, or nil for an anonymous order.
func (o *Order) CustomerID() *kernel.UUID {
	if o.customerID == nil {
		return nil
	}
	id := *o.customerID
	return &id
}

// Items returns a copy of the order lines. Changing the returned slice does not
// affect the order; use AddItem and RemoveItem instead.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of order lines.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the sum of all item subtotals.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// QRCode returns the payment QR code, or "" when no payment flow was started.
func (o *Order) QRCode() string {
	return o.qrCode
}

// PaymentPreferenceID returns the payment provider reference, or "" when unset.
func (o *Order) PaymentPreferenceID() string {
	return o.paymentPreferenceID
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last change, or nil for an untouched order.
func (o *Order) UpdatedAt() *time.Time {
	if o.updatedAt == nil {
		return nil
	}
	u := *o.updatedAt
	return &u
}

// AddItem appends a line to a Pending order and recomputes the total.
//
// Returns:
//   - nil on success
//   - errs.InvalidStateError if the order is not Pending
//   - ErrItemIsNotConstructed if item is a zero value
func (o *Order) AddItem(item Item) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("add item", o.status.String())
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotal()
	o.touch()
	return nil
}

// RemoveItem removes the first line for productID from a Pending order.
//
// Returns:
//   - (true, nil) when a line was removed and the total recomputed
//   - (false, nil) when no line references productID; nothing changes
//   - (false, errs.InvalidStateError) when the order is not Pending, or when the
//     line is the last one (an order never becomes empty)
func (o *Order) RemoveItem(productID kernel.UUID) (bool, error) {
	if o.status != Pending {
		return false, errs.NewInvalidStateError("remove item", o.status.String())
	}

	idx := -1
	for i, item := range o.items {
		if item.productID.IsEqual(productID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	if len(o.items) == 1 {
		return false, errs.NewInvalidStateError("remove the last item", o.status.String())
	}

	items := make([]Item, 0, len(o.items)-1)
	items = append(items, o.items[:idx]...)
	items = append(items, o.items[idx+1:]...)
	o.items = items
	o.recalculateTotal()
	o.touch()
	return true, nil
}

// UpdateStatus moves the order to next following the transition table. Moving to the
// current status succeeds and only refreshes UpdatedAt.
//
// Returns:
//   - nil on success
//   - errs.InvalidTransitionError naming both statuses; the order is left unchanged
//
// Example:
//
//	if err := o.UpdateStatus(order.Ready); errors.Is(err, errs.ErrInvalidTransition) {
//	    // e.g. the order is still Pending
//	}
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// SetQRCode stores the QR code of a started payment flow. It is accepted in any status.
func (o *Order) SetQRCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("qrCode")
	}

	o.qrCode = code
	o.touch()
	return nil
}

// SetPaymentPreferenceID stores the payment provider reference. It is accepted in any status.
func (o *Order) SetPaymentPreferenceID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("paymentPreferenceId")
	}

	o.paymentPreferenceID = id
	o.touch()
	return nil
}

func (o *Order) recalculateTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalPrice = total
}

func (o *Order) touch() {
	t := now()
	o.updatedAt = &t
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		o.customerID = nil
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	id := *customerID
	o.customerID = &id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.recalculateTotal()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// now is the aggregate's clock. Timestamps are kept in UTC and truncated to
// microseconds, the resolution of timestamptz.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
