package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a submitted edit form of an existing order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.ItemSubmission
	intent  Intent

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to change an existing order.
func NewUpdateOrderCommand(orderID kernel.UUID, items []order.ItemSubmission, intent Intent) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIntent(intent),
	); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.items = append([]order.ItemSubmission(nil), items...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Items() []order.ItemSubmission {
	return append([]order.ItemSubmission(nil), c.items...)
}

func (c UpdateOrderCommand) Intent() Intent {
	return c.intent
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setIntent(intent Intent) error {
	if err := intent.validate(); err != nil {
		return err
	}

	c.intent = intent
	return nil
}
