// Package rediscache caches the product catalog in redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/product"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	productsKey = "catalog:products"
	DefaultTTL  = 10 * time.Minute
)

type cachedProduct struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
}

// CachedProductCatalog serves the product list from redis and falls back to the
// source catalog on a miss. Redis failures degrade to the source, never to an error.
type CachedProductCatalog struct {
	source ports.ProductCatalog
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.ProductCatalog = (*CachedProductCatalog)(nil)

// NewCachedProductCatalog wraps source with a redis cache. A non-positive ttl
// means DefaultTTL.
func NewCachedProductCatalog(
	source ports.ProductCatalog,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedProductCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProductCatalog{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "product_catalog_cache"),
	}
}

// Get looks the product up in the cached list. Products missing from the list are
// asked from the source, which is authoritative for not found.
func (c *CachedProductCatalog) Get(ctx context.Context, id int64) (*product.Product, error) {
	products, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID() == id {
			return p, nil
		}
	}
	return c.source.Get(ctx, id)
}

// All returns the cached product list, loading and caching it on a miss.
func (c *CachedProductCatalog) All(ctx context.Context) ([]*product.Product, error) {
	products, err := c.read(ctx)
	if err == nil {
		return products, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
	}

	products, err = c.source.All(ctx)
	if err != nil {
		return nil, err
	}
	if err = c.write(ctx, products); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
	return products, nil
}

// Warm reloads the cache from the source and returns the number of products cached.
func (c *CachedProductCatalog) Warm(ctx context.Context) (int, error) {
	products, err := c.source.All(ctx)
	if err != nil {
		return 0, err
	}
	if err = c.write(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}

// Invalidate drops the cached list.
func (c *CachedProductCatalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productsKey).Err()
}

func (c *CachedProductCatalog) read(ctx context.Context) ([]*product.Product, error) {
	data, err := c.client.Get(ctx, productsKey).Bytes()
	if err != nil {
		return nil, err
	}

	var cached []cachedProduct
	if err = json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(cached))
	for _, cp := range cached {
		price, err := kernel.MoneyFromString(cp.UnitPrice)
		if err != nil {
			return nil, err
		}
		p, err := product.NewProduct(cp.ID, cp.Name, price)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("cached product", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (c *CachedProductCatalog) write(ctx context.Context, products []*product.Product) error {
	cached := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		cached = append(cached, cachedProduct{
			ID:        p.ID(),
			Name:      p.Name(),
			UnitPrice: p.UnitPrice().String(),
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productsKey, data, c.ttl).Err()
}
