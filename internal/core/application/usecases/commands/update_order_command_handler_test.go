package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, step order.Step, items ...*order.OrderItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), step, 1, items)
	require.NoError(t, err)
	return o
}

func storedItem(t *testing.T, productID int64, quantity int) *order.OrderItem {
	t.Helper()
	item, err := order.RestoreOrderItem(kernel.NewUUID(), productID, quantity)
	require.NoError(t, err)
	return item
}

func TestUpdateOrderCommandHandler_Handle_PrunesAndApplies(t *testing.T) {
	ctx := t.Context()
	kept := storedItem(t, 1, 1)
	zombie := storedItem(t, 2, 3)
	alreadyInvalid := storedItem(t, 3, 0)
	o := storedOrder(t, order.New, kept, zombie, alreadyInvalid)

	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), []order.ItemSubmission{
		{ID: kept.ID().String(), ProductID: "1", Quantity: "4"},
		{ID: zombie.ID().String(), ProductID: "2", Quantity: "0"},
		{ProductID: "5", Quantity: "1"},
		{ID: kernel.NewUUID().String(), ProductID: "6", Quantity: "1"},
		{}, {}, {},
	}, commands.IntentAddItem)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), notifier, nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)

	items := o.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].IsEqual(kept))
	assert.Equal(t, 4, items[0].Quantity())
	assert.False(t, items[1].IsPersisted())
	assert.Equal(t, int64(5), items[1].ProductID())
	assert.Equal(t, order.New, o.Step())
}

func TestUpdateOrderCommandHandler_Handle_SubmitFromReadyGoesBackToQueued(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Ready, storedItem(t, 1, 1))
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), nil, commands.IntentSubmitToKitchen)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Step() == order.Queued
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, notificationOfKind(order.KindSentToKitchen)).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), notifier, nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	assert.Equal(t, order.Queued, o.Step())
}

func TestUpdateOrderCommandHandler_Handle_Delete(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(id, scenarioRows(), commands.IntentDelete)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), nil, nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderCommand(id, nil, commands.IntentAddItem)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order ID", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), nil, nil)
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.New)
	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), nil, commands.IntentAddItem)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errs.NewVersionConflictError("order ID", o.ID(), 1)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), nil, nil)
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand(kernel.NewUUID(), nil, commands.IntentAddItem)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1, 2, 3, 5), nil, nil)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestUpdateOrderCommandHandler_Handle_DropsItemsOfUnknownProducts(t *testing.T) {
	ctx := t.Context()
	kept := storedItem(t, 1, 1)
	orphan := storedItem(t, 99, 2)
	o := storedOrder(t, order.New, kept, orphan)

	cmd, _ := commands.NewUpdateOrderCommand(o.ID(), []order.ItemSubmission{
		{ID: kept.ID().String(), ProductID: "1", Quantity: "1"},
		{ID: orphan.ID().String(), ProductID: "99", Quantity: "2"},
		{ProductID: "424242", Quantity: "1"},
	}, commands.IntentAddItem)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, catalogOf(1), nil, nil)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	require.Len(t, o.Items(), 1)
	assert.True(t, o.Items()[0].IsEqual(kept))
}
