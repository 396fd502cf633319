package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestItemSubmission_Numbers(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"2", 2},
		{" 2", 2},
		{"2 pcs", 2},
		{"+3", 3},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{"-4", 0},
		{"3000000000", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := order.ItemSubmission{Quantity: tt.raw, ProductID: tt.raw}

			assert.Equal(t, tt.expected, s.SubmittedQuantity())
		})
	}

	assert.Equal(t, int64(3000000000), order.ItemSubmission{ProductID: "3000000000"}.SubmittedProductID())
}

func TestItemSubmission_IsBlank(t *testing.T) {
	assert.False(t, order.ItemSubmission{ProductID: "1", Quantity: "2"}.IsBlank())
	assert.True(t, order.ItemSubmission{ProductID: "1", Quantity: "0"}.IsBlank())
	assert.True(t, order.ItemSubmission{ProductID: "", Quantity: "2"}.IsBlank())
	assert.True(t, order.ItemSubmission{}.IsBlank())
}

func TestItemSubmission_IsZombie(t *testing.T) {
	id := kernel.NewUUID().String()

	assert.True(t, order.ItemSubmission{ID: id, ProductID: "1", Quantity: "0"}.IsZombie())
	assert.True(t, order.ItemSubmission{ID: id, ProductID: "1", Quantity: ""}.IsZombie())
	assert.False(t, order.ItemSubmission{ID: id, ProductID: "1", Quantity: "1"}.IsZombie())
	assert.False(t, order.ItemSubmission{ID: "", ProductID: "1", Quantity: "0"}.IsZombie())
	assert.False(t, order.ItemSubmission{ID: id, ProductID: " ", Quantity: "0"}.IsZombie())
}

func TestCleanSubmissions(t *testing.T) {
	keep := order.ItemSubmission{ProductID: "1", Quantity: "2"}
	submissions := []order.ItemSubmission{
		keep,
		{ProductID: "2", Quantity: "0"},
		{},
		{},
	}

	cleaned := order.CleanSubmissions(submissions)

	assert.Equal(t, []order.ItemSubmission{keep}, cleaned)
	assert.Equal(t, cleaned, order.CleanSubmissions(cleaned))
	assert.Len(t, submissions, 4)
}

func TestZombieItemIDs(t *testing.T) {
	zeroed := kernel.NewUUID()
	submissions := []order.ItemSubmission{
		{ID: zeroed.String(), ProductID: "1", Quantity: "0"},
		{ID: kernel.NewUUID().String(), ProductID: "1", Quantity: "3"},
		{ID: "not-a-uuid", ProductID: "1", Quantity: "0"},
		{ProductID: "1", Quantity: "0"},
	}

	ids := order.ZombieItemIDs(submissions)

	if assert.Len(t, ids, 1) {
		assert.True(t, ids[0].IsEqual(zeroed))
	}
}
