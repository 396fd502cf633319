// Package productrepo reads the product catalog table.
package productrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is a row of the catalog table. The table is owned by the catalog; this
// service only reads it.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(dto.ID, dto.Name, price)
}
