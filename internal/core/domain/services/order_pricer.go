package services

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/product"
)

// ErrProductIsNotResolvable is returned when a persisted item references a product
// the catalog does not know. It reports broken data and is never silenced.
var ErrProductIsNotResolvable = errors.New("order item references a product that cannot be resolved")

// OrderPricer computes order totals.
//
// Business rules:
//   - Only items with a persisted identity count; transient rows are drafts
//   - The total of an order without persisted items is 0.00
//   - Each line contributes quantity * unit price, rounded to cents
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	total, err := pricer.TotalPrice(o, productsByID)
//	if errors.Is(err, ErrProductIsNotResolvable) {
//	    // catalog and orders disagree
//	}
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// TotalPrice sums the persisted items of o using the given catalog entries.
func (OrderPricer) TotalPrice(o *order.Order, products map[int64]*product.Product) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total kernel.Money
	for _, item := range o.PersistedItems() {
		p, ok := products[item.ProductID()]
		if !ok || p == nil {
			return kernel.Money{}, fmt.Errorf("%w: item %s, product %d", ErrProductIsNotResolvable, item.ID(), item.ProductID())
		}
		total = total.Add(p.UnitPrice().Times(item.Quantity()))
	}
	return total, nil
}
