package ports

import (
	"context"

	"kitchen/internal/core/domain/model/product"
)

// ProductCatalog is the read-only lookup of the external product catalog.
type ProductCatalog interface {
	// Get returns a product by id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// All returns every product ordered by name.
	All(ctx context.Context) ([]*product.Product, error)
}
