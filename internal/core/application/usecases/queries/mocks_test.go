package queries_test

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductCatalog) All(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func mustProduct(id int64, name, price string) *product.Product {
	p, err := product.NewProduct(id, name, kernel.MustMoney(price))
	if err != nil {
		panic(err)
	}
	return p
}

func mustStoredOrder(step order.Step, lines ...[2]int) *order.Order {
	items := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), int64(line[0]), line[1])
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), step, 2, items)
	if err != nil {
		panic(err)
	}
	return o
}
