package queries

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewQueueQuery constructor",
)

// ListOrdersQuery retrieves orders with their items, oldest first. Without steps it
// returns every order; a kitchen queue is the list of a single step.
//
// Example:
//
//	query, err := NewQueueQuery(order.InProgress)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	steps []order.Step

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewQueueQuery creates the query of one kitchen queue. Only the steps of
// order.QueueSteps have a queue.
func NewQueueQuery(step order.Step) (ListOrdersQuery, error) {
	if !slices.Contains(order.QueueSteps(), step) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"queue step",
			fmt.Errorf("%s has no queue", step),
		)
	}

	return ListOrdersQuery{
		steps: []order.Step{step},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Steps returns the step filter; empty means every step.
func (q ListOrdersQuery) Steps() []order.Step {
	return slices.Clone(q.steps)
}

// OrderSummary is an order as listed on the index and queue screens.
type OrderSummary struct {
	ID        kernel.UUID
	Step      order.Step
	CreatedAt time.Time
	Items     []OrderSummaryItem
}

// OrderSummaryItem is a line of a listed order. ProductName is empty when the
// catalog no longer knows the product.
type OrderSummaryItem struct {
	ID          kernel.UUID
	ProductID   int64
	ProductName string
	Quantity    int
}
