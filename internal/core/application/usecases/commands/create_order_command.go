package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a submitted new-order form: the rows as typed by
// staff and the single intent of the submission.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, rows, IntentSubmitToKitchen)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.ItemSubmission
	intent  Intent

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. Rows are kept
// as submitted; invalid rows are pruned by the handler.
func NewCreateOrderCommand(orderID kernel.UUID, items []order.ItemSubmission, intent Intent) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIntent(intent),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.items = append([]order.ItemSubmission(nil), items...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the submitted rows.
func (c CreateOrderCommand) Items() []order.ItemSubmission {
	return append([]order.ItemSubmission(nil), c.items...)
}

func (c CreateOrderCommand) Intent() Intent {
	return c.intent
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setIntent(intent Intent) error {
	if err := intent.validate(); err != nil {
		return err
	}

	c.intent = intent
	return nil
}
