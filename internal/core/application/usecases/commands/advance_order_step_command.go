package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrAdvanceOrderStepCommandIsNotConstructed = errors.New(
	"AdvanceOrderStepCommand must be created via NewAdvanceOrderStepCommand constructor",
)

// AdvanceOrderStepCommand moves an order one step down the kitchen line.
type AdvanceOrderStepCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStepCommand(orderID kernel.UUID) (AdvanceOrderStepCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderStepCommand{}, err
	}

	return AdvanceOrderStepCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStepCommandIsNotConstructed)
}

func (c AdvanceOrderStepCommand) OrderID() kernel.UUID {
	return c.orderID
}
