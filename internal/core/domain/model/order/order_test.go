package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedItem(t *testing.T, productID int64, quantity int) *order.OrderItem {
	t.Helper()
	item, err := order.RestoreOrderItem(kernel.NewUUID(), productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should start at step new without items", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.New, o.Step())
		assert.Equal(t, 0, o.Version())
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore step, version and items", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []*order.OrderItem{persistedItem(t, 1, 2), persistedItem(t, 2, 1)}

		o, err := order.RestoreOrder(id, order.Ready, 4, items)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Step())
		assert.Equal(t, 4, o.Version())
		assert.Equal(t, items, o.Items())
	})

	t.Run("should reject invalid state", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.Unknown, -1, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "step is invalid")
		assert.Contains(t, err.Error(), "version is invalid")
	})

	t.Run("should reject transient items", func(t *testing.T) {
		transient, _ := order.NewOrderItem(1, 1)

		_, err := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{transient})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicated items", func(t *testing.T) {
		item := persistedItem(t, 1, 1)

		_, err := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{item, item})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should move exactly one step at a time until released", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		for _, expected := range order.Steps()[1:] {
			before := o.Step()
			require.True(t, o.IsNextStep(expected))

			_, err := o.Advance()

			require.NoError(t, err)
			assert.Equal(t, expected, o.Step())
			assert.True(t, before.IsNext(o.Step()))
		}
	})

	t.Run("should reject released and keep the step", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), order.Released, 3, nil)

		n, err := o.Advance()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Nil(t, n)
		assert.Equal(t, order.Released, o.Step())
	})
}

func TestOrder_TransferToKitchen(t *testing.T) {
	for _, from := range order.Steps() {
		t.Run("from "+from.String(), func(t *testing.T) {
			o, _ := order.RestoreOrder(kernel.NewUUID(), from, 1, nil)

			o.TransferToKitchen()

			assert.Equal(t, order.Queued, o.Step())
		})
	}
}

func TestOrder_RemoveInvalidItems(t *testing.T) {
	t.Run("should prune invalid items and report the persisted ones", func(t *testing.T) {
		valid := persistedItem(t, 1, 2)
		zeroed := persistedItem(t, 2, 0)
		o, _ := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{valid, zeroed})
		_, err := o.AddItem(0, 0)
		require.NoError(t, err)

		removed := o.RemoveInvalidItems()

		assert.Equal(t, []*order.OrderItem{zeroed}, removed)
		assert.Equal(t, []*order.OrderItem{valid}, o.Items())
		for _, item := range o.Items() {
			assert.Positive(t, item.Quantity())
			assert.True(t, item.HasProduct())
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		_, _ = o.AddItem(1, 1)
		_, _ = o.AddItem(1, 0)

		o.RemoveInvalidItems()
		first := o.Items()
		removed := o.RemoveInvalidItems()

		assert.Empty(t, removed)
		assert.Equal(t, first, o.Items())
	})
}

func TestOrder_RemoveItemsOfProducts(t *testing.T) {
	t.Run("should drop items of the given products", func(t *testing.T) {
		kept := persistedItem(t, 1, 2)
		stale := persistedItem(t, 7, 1)
		o, _ := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{kept, stale})
		_, err := o.AddItem(7, 3)
		require.NoError(t, err)

		removed := o.RemoveItemsOfProducts(7)

		assert.Equal(t, []*order.OrderItem{stale}, removed)
		assert.Equal(t, []*order.OrderItem{kept}, o.Items())
	})

	t.Run("should change nothing without products", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())
		_, _ = o.AddItem(1, 1)

		assert.Empty(t, o.RemoveItemsOfProducts())
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_ProductIDs(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID())
	_, _ = o.AddItem(2, 1)
	_, _ = o.AddItem(0, 1)
	_, _ = o.AddItem(1, 1)
	_, _ = o.AddItem(2, 4)

	assert.Equal(t, []int64{2, 1}, o.ProductIDs())
}

func TestOrder_ApplySubmissions(t *testing.T) {
	t.Run("should keep A and drop B on creation", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID())

		err := o.ApplySubmissions([]order.ItemSubmission{
			{ProductID: "1", Quantity: "2"},
			{ProductID: "2", Quantity: "0"},
			{},
			{},
			{},
		})
		require.NoError(t, err)
		o.RemoveInvalidItems()

		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(1), o.Items()[0].ProductID())
		assert.Equal(t, 2, o.Items()[0].Quantity())
	})

	t.Run("should change attached items and ignore unknown ids", func(t *testing.T) {
		existing := persistedItem(t, 1, 1)
		o, _ := order.RestoreOrder(kernel.NewUUID(), order.Queued, 1, []*order.OrderItem{existing})

		err := o.ApplySubmissions([]order.ItemSubmission{
			{ID: existing.ID().String(), ProductID: "3", Quantity: "5"},
			{ID: kernel.NewUUID().String(), ProductID: "4", Quantity: "1"},
			{ID: "garbage", ProductID: "4", Quantity: "1"},
		})

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		item, ok := o.Item(*existing.ID())
		require.True(t, ok)
		assert.Equal(t, int64(3), item.ProductID())
		assert.Equal(t, 5, item.Quantity())
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	item := persistedItem(t, 1, 1)
	o, _ := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{item})

	removed, err := o.RemoveItem(*item.ID())
	require.NoError(t, err)
	assert.Equal(t, item, removed)
	assert.Empty(t, o.Items())

	_, err = o.RemoveItem(*item.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrder_PersistedItems(t *testing.T) {
	item := persistedItem(t, 1, 1)
	o, _ := order.RestoreOrder(kernel.NewUUID(), order.New, 0, []*order.OrderItem{item})
	_, _ = o.AddItem(2, 2)

	assert.Len(t, o.Items(), 2)
	assert.Equal(t, []*order.OrderItem{item}, o.PersistedItems())
}

func TestOrder_CommitVersion(t *testing.T) {
	o, _ := order.RestoreOrder(kernel.NewUUID(), order.New, 2, nil)

	o.CommitVersion()

	assert.Equal(t, 3, o.Version())
}
