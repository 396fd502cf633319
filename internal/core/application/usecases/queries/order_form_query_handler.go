package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// OrderFormQueryHandler builds the order forms. Stored lines come first, followed by
// FormPlaceholderRows blank rows; blank rows that come back unchanged are dropped by
// the create and update commands.
type OrderFormQueryHandler struct {
	orders  OrderReader
	catalog ports.ProductCatalog
}

func NewOrderFormQueryHandler(orders OrderReader, catalog ports.ProductCatalog) OrderFormQueryHandler {
	return OrderFormQueryHandler{
		orders:  orders,
		catalog: catalog,
	}
}

// Handle returns the form payload. A missing order yields an errs.ObjectNotFoundError.
func (h OrderFormQueryHandler) Handle(ctx context.Context, query OrderFormQuery) (OrderForm, error) {
	if err := query.Validate(); err != nil {
		return OrderForm{}, err
	}

	form := OrderForm{
		Step: order.New,
		Rows: make([]FormRow, 0, FormPlaceholderRows),
	}

	if id := query.OrderID(); id != nil {
		o, err := h.orders.Get(ctx, *id)
		if err != nil {
			return OrderForm{}, err
		}

		orderID := o.ID()
		form.OrderID = &orderID
		form.Step = o.Step()
		for _, item := range o.Items() {
			form.Rows = append(form.Rows, FormRow{
				ID:        item.ID(),
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
			})
		}
	}

	for range FormPlaceholderRows {
		form.Rows = append(form.Rows, FormRow{})
	}

	products, err := listProducts(ctx, h.catalog)
	if err != nil {
		return OrderForm{}, err
	}
	form.Products = products

	return form, nil
}
