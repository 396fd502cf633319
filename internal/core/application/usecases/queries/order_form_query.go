package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

// FormPlaceholderRows is the number of blank rows appended to every order form.
const FormPlaceholderRows = 3

var ErrOrderFormQueryIsNotConstructed = errors.New(
	"OrderFormQuery must be created via NewNewOrderFormQuery or NewEditOrderFormQuery constructor",
)

// OrderFormQuery retrieves the payload of the new-order form or of the edit form of
// an existing order.
type OrderFormQuery struct {
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewNewOrderFormQuery creates the query of a blank order draft.
func NewNewOrderFormQuery() OrderFormQuery {
	return OrderFormQuery{guard: guard.NewConstructorGuard()}
}

// NewEditOrderFormQuery creates the query of the edit form of an order.
func NewEditOrderFormQuery(orderID kernel.UUID) (OrderFormQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderFormQuery{}, err
	}

	return OrderFormQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q OrderFormQuery) Validate() error {
	return q.guard.Validate(ErrOrderFormQueryIsNotConstructed)
}

// OrderID returns the edited order, nil for a new order.
func (q OrderFormQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// OrderForm is what an order form renders: the rows to edit and the products to pick.
type OrderForm struct {
	// OrderID is nil for a new order
	OrderID  *kernel.UUID
	Step     order.Step
	Rows     []FormRow
	Products []ProductView
}

// FormRow is an editable line. Placeholder rows have no ID, no product and quantity 0.
type FormRow struct {
	ID        *kernel.UUID
	ProductID int64
	Quantity  int
}

// ProductView is a catalog entry as offered by the forms.
type ProductView struct {
	ID        int64
	Name      string
	UnitPrice kernel.Money
}
