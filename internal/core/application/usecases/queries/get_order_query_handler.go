package queries

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// GetOrderQueryHandler builds the detail view of an order. Pricing goes through the
// catalog; an item whose product cannot be resolved fails the query with
// services.ErrProductIsNotResolvable.
type GetOrderQueryHandler struct {
	orders  OrderReader
	catalog ports.ProductCatalog
	pricer  services.OrderPricer
}

func NewGetOrderQueryHandler(orders OrderReader, catalog ports.ProductCatalog) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:  orders,
		catalog: catalog,
		pricer:  services.NewOrderPricer(),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	products, err := h.catalog.All(ctx)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	byID := indexProducts(products)
	if err = h.resolveMissing(ctx, o, byID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	total, err := h.pricer.TotalPrice(o, byID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]PricedItem, 0, len(o.Items()))
	for _, item := range o.PersistedItems() {
		p := byID[item.ProductID()]
		items = append(items, PricedItem{
			ID:          *item.ID(),
			ProductID:   item.ProductID(),
			ProductName: p.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   p.UnitPrice(),
			LineTotal:   p.UnitPrice().Times(item.Quantity()),
		})
	}

	return GetOrderQueryResponse{
		ID:         o.ID(),
		Step:       o.Step(),
		Version:    o.Version(),
		Items:      items,
		TotalPrice: total,
	}, nil
}

// resolveMissing asks the catalog one by one for products the full listing lacked;
// a cached listing may predate them. Products that are not found stay missing.
func (h GetOrderQueryHandler) resolveMissing(ctx context.Context, o *order.Order, byID map[int64]*product.Product) error {
	for _, item := range o.PersistedItems() {
		if _, ok := byID[item.ProductID()]; ok {
			continue
		}
		p, err := h.catalog.Get(ctx, item.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		byID[p.ID()] = p
	}
	return nil
}

func indexProducts(products []*product.Product) map[int64]*product.Product {
	byID := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}
	return byID
}
