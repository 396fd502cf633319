// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling the
// conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates. Steps are
// stored by their literal name so the kitchen queues can be read directly.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Step      string         `gorm:"type:varchar(32);not null;index"`
	Version   int            `gorm:"type:int;not null"`
	CreatedAt time.Time      `gorm:"not null;index"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Position keeps the order in which items were
// attached.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID int64     `gorm:"not null"`
	Quantity  int       `gorm:"type:int;not null"`
	Position  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// pendingItem is a not yet persisted item together with the identity it is stored under.
type pendingItem struct {
	item *order.OrderItem
	id   kernel.UUID
}

// fromDomain converts an order aggregate to its database representation. Items without
// a persisted identity get a fresh one, returned as pending so the caller can mark them
// once the write succeeded.
func fromDomain(aggregate *order.Order) (OrderDTO, []pendingItem) {
	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()

	dtos := make([]OrderItemDTO, 0, len(items))
	pending := make([]pendingItem, 0)
	for position, item := range items {
		var id kernel.UUID
		if persisted := item.ID(); persisted != nil {
			id = *persisted
		} else {
			id = kernel.NewUUID()
			pending = append(pending, pendingItem{item: item, id: id})
		}

		dtos = append(dtos, OrderItemDTO{
			ID:        id.Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Position:  position,
		})
	}

	return OrderDTO{
		ID:      orderID,
		Step:    aggregate.Step().String(),
		Version: aggregate.Version(),
		Items:   dtos,
	}, pending
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder. Items must
// be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	step, err := order.ParseStep(dto.Step)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreOrderItem(itemID, itemDTO.ProductID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, step, dto.Version, items)
}

func markPersisted(pending []pendingItem) error {
	for _, p := range pending {
		if err := p.item.MarkPersisted(p.id); err != nil {
			return err
		}
	}
	return nil
}
