package queries

import (
	"context"
	"database/sql"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order lists straight from the database.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders\n", len(orders))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order lists.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the orders matching the query, by creation time, with their items in
// insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	steps := query.Steps()
	if len(steps) == 0 {
		steps = order.Steps()
	}
	names := make(pq.StringArray, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.step,
			o.created_at,
			i.id,
			i.product_id,
			i.quantity,
			p.name
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		LEFT JOIN products p ON p.id = i.product_id
		WHERE o.step = ANY(?)
		ORDER BY o.created_at, o.id, i.position
	`, names).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary     OrderSummary
			id          uuid.UUID
			stepName    string
			itemID      uuid.NullUUID
			productID   sql.NullInt64
			quantity    sql.NullInt32
			productName sql.NullString
		)

		err = rows.Scan(&id, &stepName, &summary.CreatedAt, &itemID, &productID, &quantity, &productName)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		last := len(orders) - 1
		if last < 0 || !orders[last].ID.IsEqual(orderID) {
			step, stepErr := order.ParseStep(stepName)
			if stepErr != nil {
				return nil, stepErr
			}
			summary.ID = orderID
			summary.Step = step
			summary.Items = make([]OrderSummaryItem, 0)
			orders = append(orders, summary)
			last++
		}

		if !itemID.Valid {
			continue
		}
		itemUUID, idErr := kernel.UUIDFromBytes(itemID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		orders[last].Items = append(orders[last].Items, OrderSummaryItem{
			ID:          itemUUID,
			ProductID:   productID.Int64,
			ProductName: productName.String,
			Quantity:    int(quantity.Int32),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
