package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the kitchen workflow. It owns its line items
// exclusively: they are created, pruned and destroyed through the order only.
//
// Order follows these invariants:
//   - id is a valid identifier and never changes
//   - step is always a member of the preparation sequence, New on creation
//   - items never contain two entries with the same persisted identity
//   - version is the optimistic-concurrency counter of the stored row
type Order struct {
	id      kernel.UUID
	step    Step
	items   []*OrderItem
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an order at step New without items.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:    id,
		step:  New,
		items: make([]*OrderItem, 0),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from storage. Every restored item must already
// carry its persisted identity.
func RestoreOrder(id kernel.UUID, step Step, version int, items []*OrderItem) (*Order, error) {
	o, err := NewOrder(id)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(o.setStep(step), o.setVersion(version), o.restoreItems(items)); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Step() Step {
	return o.step
}

// Version returns the stored version the order was loaded at.
func (o *Order) Version() int {
	return o.version
}

// Items returns the attached items in order. The slice is a copy; the items are not.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// PersistedItems returns the attached items that carry a persisted identity.
func (o *Order) PersistedItems() []*OrderItem {
	out := make([]*OrderItem, 0, len(o.items))
	for _, item := range o.items {
		if item.IsPersisted() {
			out = append(out, item)
		}
	}
	return out
}

// Item looks up an attached item by persisted identity.
func (o *Order) Item(id kernel.UUID) (*OrderItem, bool) {
	for _, item := range o.items {
		if item.id != nil && item.id.IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// AddItem attaches a new, not yet persisted line. Invalid lines (quantity 0, no
// product) are accepted here and dropped by RemoveInvalidItems.
func (o *Order) AddItem(productID int64, quantity int) (*OrderItem, error) {
	item, err := NewOrderItem(productID, quantity)
	if err != nil {
		return nil, err
	}
	o.items = append(o.items, item)
	return item, nil
}

// RemoveItem detaches the item with the given identity and returns it.
func (o *Order) RemoveItem(id kernel.UUID) (*OrderItem, error) {
	for i, item := range o.items {
		if item.id != nil && item.id.IsEqual(id) {
			o.items = append(o.items[:i:i], o.items[i+1:]...)
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", id.String())
}

// RemoveInvalidItems detaches every item with quantity 0 or without a product,
// blank placeholders included. It returns the detached items that were persisted,
// whose rows the repository has to delete. Calling it twice is the same as
// calling it once.
func (o *Order) RemoveInvalidItems() []*OrderItem {
	kept, rejected := RejectInvalidItems(o.items)
	o.items = kept

	removed := make([]*OrderItem, 0, len(rejected))
	for _, item := range rejected {
		if item.IsPersisted() {
			removed = append(removed, item)
		}
	}
	return removed
}

// RemoveItemsOfProducts detaches every item referencing one of productIDs and
// returns the detached items that were persisted.
func (o *Order) RemoveItemsOfProducts(productIDs ...int64) []*OrderItem {
	if len(productIDs) == 0 {
		return nil
	}
	drop := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		drop[id] = struct{}{}
	}

	kept := make([]*OrderItem, 0, len(o.items))
	var removed []*OrderItem
	for _, item := range o.items {
		if _, ok := drop[item.productID]; !ok {
			kept = append(kept, item)
			continue
		}
		if item.IsPersisted() {
			removed = append(removed, item)
		}
	}
	o.items = kept
	return removed
}

// ProductIDs returns the distinct product ids referenced by the items, in item order.
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.items))
	ids := make([]int64, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.productID]; ok || !item.HasProduct() {
			continue
		}
		seen[item.productID] = struct{}{}
		ids = append(ids, item.productID)
	}
	return ids
}

// ApplySubmissions merges submitted rows into the items: a row with the id of an
// attached item changes that item, a row without id attaches a new item. Rows
// whose id is malformed or unknown to this order are discarded. Numbers are read
// with the lenient rules of ItemSubmission, so rows are applied as submitted and
// blank rows become invalid items; callers either clean the rows first
// (CleanSubmissions) or prune afterwards (RemoveInvalidItems).
func (o *Order) ApplySubmissions(submissions []ItemSubmission) error {
	var errList []error
	for _, s := range submissions {
		productID, quantity := s.SubmittedProductID(), s.SubmittedQuantity()

		rawID := strings.TrimSpace(s.ID)
		if rawID == "" {
			if _, err := o.AddItem(productID, quantity); err != nil {
				errList = append(errList, err)
			}
			continue
		}

		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			continue
		}
		item, ok := o.Item(id)
		if !ok {
			continue
		}
		if err = item.change(productID, quantity); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// IsNextStep reports whether candidate is the step right after the current one.
func (o *Order) IsNextStep(candidate Step) bool {
	return o.step.IsNext(candidate)
}

// TransferToKitchen submits the order: the step is forced to Queued whatever it
// was, including a backward jump from a later step.
func (o *Order) TransferToKitchen() Notification {
	o.step = Queued
	return newSentToKitchenNotification(o.id)
}

// Advance moves the order exactly one step forward.
//
// It returns the notification to display, if any, classified by the successor of
// the step just entered:
//   - entering in_progress (next is ready): "Order {id} in Progress"
//   - entering ready (next is released): "Order {id} Ready"
//   - entering queued or released: none
//
// A released order cannot advance; the error wraps ErrInvalidTransition and the
// step is left unchanged.
func (o *Order) Advance() (*Notification, error) {
	next, err := o.step.Next()
	if err != nil {
		return nil, err
	}
	o.step = next
	return notificationAfterAdvance(o.id, next), nil
}

// CommitVersion records that the stored row moved to the next version. It is
// called by the repository after a successful update.
func (o *Order) CommitVersion() {
	o.version++
}

func (o *Order) setStep(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}
	o.step = step
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

func (o *Order) restoreItems(items []*OrderItem) error {
	restored := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.IsPersisted() {
			return errs.NewValueIsRequiredError("restored order item id")
		}
		for _, existing := range restored {
			if existing.IsEqual(item) {
				return errs.NewValueIsInvalidErrorWithCause(
					"order items are invalid",
					fmt.Errorf("item %s appears twice", item.id),
				)
			}
		}
		restored = append(restored, item)
	}
	o.items = restored
	return nil
}
