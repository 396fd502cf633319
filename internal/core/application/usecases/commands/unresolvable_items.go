package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// removeUnresolvableItems drops the items of o whose product the catalog does not
// know, the same way blank rows are dropped. Catalog failures other than not found
// abort the command.
func removeUnresolvableItems(ctx context.Context, catalog ports.ProductCatalog, o *order.Order) error {
	var unknown []int64
	for _, id := range o.ProductIDs() {
		_, err := catalog.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			unknown = append(unknown, id)
			continue
		}
		if err != nil {
			return err
		}
	}
	o.RemoveItemsOfProducts(unknown...)
	return nil
}
