package commands

import (
	"context"
	"log/slog"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// AdvanceOrderStepResult is the committed step change. Notification is nil when
// the new step notifies nobody.
type AdvanceOrderStepResult struct {
	OrderID      kernel.UUID
	Step         order.Step
	Version      int
	Notification *order.Notification
}

// AdvanceOrderStepCommandHandler advances a stored order by exactly one step and
// notifies the kitchen screens when the new step asks for it.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderStepCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order is gone
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // order is already released
//	}
type AdvanceOrderStepCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewAdvanceOrderStepCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceOrderStepCommandHandler {
	return AdvanceOrderStepCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     loggerOrDefault(logger),
	}
}

// Handle processes the advance command. The transition error of a released order
// is returned unchanged and nothing is written.
func (h *AdvanceOrderStepCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStepCommand) (AdvanceOrderStepResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderStepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderStepResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderStepResult{}, err
	}

	notification, err := o.Advance()
	if err != nil {
		return AdvanceOrderStepResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AdvanceOrderStepResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderStepResult{}, err
	}

	notify(ctx, h.notifier, h.logger, notification)
	return AdvanceOrderStepResult{
		OrderID:      o.ID(),
		Step:         o.Step(),
		Version:      o.Version(),
		Notification: notification,
	}, nil
}
