package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of an order: a product reference, the product name and unit price
// captured when the line was added, and a quantity.
//
// Item is an immutable value object. Two items are equal when product, name, price and
// quantity match; the item id only gives the line a stable row identity in storage.
type Item struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int

	guard guard.ConstructorGuard
}

// NewItem creates an order line with a freshly generated item id.
//
// Parameters:
//   - productID: catalog product reference (must not be the nil UUID)
//   - productName: product name at order time (must not be blank)
//   - unitPrice: price per unit (must be greater than 0)
//   - quantity: number of units (must be greater than 0)
//
// Returns every failing rule at once, joined with errors.Join.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("19.90")
//	item, err := order.NewItem(productID, "Margherita", price, 2)
//	if err != nil {
//	    // errs.IsValidation(err) == true
//	}
func NewItem(productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (Item, error) {
	return RestoreItem(kernel.NewUUID(), productID, productName, unitPrice, quantity)
}

// RestoreItem rebuilds a persisted line, keeping its stored item id.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice kernel.Money,
	quantity int,
) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was built by a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Multiply(i.quantity)
}

// WithQuantity returns a copy of the line with a different quantity and the same item id.
// The receiver is left untouched.
func (i Item) WithQuantity(quantity int) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}

	next := i
	if err := next.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	return next, nil
}

// IsEqual compares items by value; the item id is ignored.
func (i Item) IsEqual(other Item) bool {
	return i.productID.IsEqual(other.productID) &&
		i.productName == other.productName &&
		i.unitPrice.IsEqual(other.unitPrice) &&
		i.quantity == other.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
