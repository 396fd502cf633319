package order

import (
	"errors"
	"math"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// MaxQuantity bounds the quantity of a single line; it matches the int4 column.
const MaxQuantity = math.MaxInt32

var (
	// ErrOrderItemIsNotConstructed is returned for OrderItem values that bypassed
	// NewOrderItem / RestoreOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

	// ErrOrderItemIsAlreadyPersisted is returned when a persisted identity is assigned twice.
	ErrOrderItemIsAlreadyPersisted = errors.New("order item already has a persisted identity")
)

// OrderItem is one (product, quantity) line of an order.
//
// An item may exist transiently with quantity 0 or without a product (a blank
// placeholder row, or a row zeroed by a later edit) but such an item is invalid
// and is pruned before the order is persisted. The identity is nil until the
// repository stores the item.
type OrderItem struct {
	// id is nil until the item is persisted
	id *kernel.UUID

	// productID references the external catalog; 0 means no product selected
	productID int64

	quantity int

	guard guard.ConstructorGuard
}

// NewOrderItem builds a not yet persisted line. Zero values are accepted for both
// arguments (see IsValid); negative values are rejected.
func NewOrderItem(productID int64, quantity int) (*OrderItem, error) {
	item := &OrderItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(item.setProductID(productID), item.setQuantity(quantity)); err != nil {
		return nil, err
	}
	return item, nil
}

// RestoreOrderItem rebuilds a persisted line from storage.
func RestoreOrderItem(id kernel.UUID, productID int64, quantity int) (*OrderItem, error) {
	item, err := NewOrderItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	if err = item.MarkPersisted(id); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate ensures the item was built through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the persisted identity, or nil for an item not saved yet.
func (i *OrderItem) ID() *kernel.UUID {
	if i.id == nil {
		return nil
	}
	id := *i.id
	return &id
}

// IsPersisted reports whether the item has a persisted identity.
func (i *OrderItem) IsPersisted() bool {
	return i.id != nil
}

func (i *OrderItem) ProductID() int64 {
	return i.productID
}

// HasProduct reports whether a product is selected.
func (i *OrderItem) HasProduct() bool {
	return i.productID > 0
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

// IsValid reports whether the item may persist: it needs a product and a
// quantity greater than zero.
func (i *OrderItem) IsValid() bool {
	return i.quantity > 0 && i.HasProduct()
}

// IsEqual compares persisted items by identity; unsaved items are only equal to themselves.
func (i *OrderItem) IsEqual(other *OrderItem) bool {
	if other == nil {
		return false
	}
	if i.id == nil || other.id == nil {
		return i == other
	}
	return i.id.IsEqual(*other.id)
}

// MarkPersisted assigns the identity generated by the repository. It can only be
// called once per item.
func (i *OrderItem) MarkPersisted(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if i.id != nil {
		return ErrOrderItemIsAlreadyPersisted
	}
	i.id = &id
	return nil
}

func (i *OrderItem) change(productID int64, quantity int) error {
	return errors.Join(i.setProductID(productID), i.setQuantity(quantity))
}

func (i *OrderItem) setProductID(productID int64) error {
	if productID < 0 {
		return errs.NewValueIsOutOfRangeError("product id", productID, 0, int64(math.MaxInt64))
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

// RejectInvalidItems splits items into those that may persist and those that must
// be removed (quantity 0 or no product). Order is preserved in both slices and the
// input is not modified, so applying it to its own kept output changes nothing.
func RejectInvalidItems(items []*OrderItem) (kept, rejected []*OrderItem) {
	kept = make([]*OrderItem, 0, len(items))
	for _, item := range items {
		if item.IsValid() {
			kept = append(kept, item)
			continue
		}
		rejected = append(rejected, item)
	}
	return kept, rejected
}
