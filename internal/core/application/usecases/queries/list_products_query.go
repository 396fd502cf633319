package queries

import (
	"context"
	"errors"

	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the product catalog, sorted by name.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ListProductsQueryHandler reads the catalog through its cache.
type ListProductsQueryHandler struct {
	catalog ports.ProductCatalog
}

func NewListProductsQueryHandler(catalog ports.ProductCatalog) ListProductsQueryHandler {
	return ListProductsQueryHandler{catalog: catalog}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return listProducts(ctx, h.catalog)
}

func listProducts(ctx context.Context, catalog ports.ProductCatalog) ([]ProductView, error) {
	products, err := catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			ID:        p.ID(),
			Name:      p.Name(),
			UnitPrice: p.UnitPrice(),
		})
	}
	return views, nil
}
