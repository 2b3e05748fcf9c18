package entity

import (
	"encoding/json"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is one sold line. Lines from the same checkout share an OrderID.
type Sale struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	OrderID     *string          `gorm:"size:64;index" json:"pedido_id"`
	ProductType enum.ProductType `gorm:"size:32;not null;index" json:"tipo"`
	Item        string           `gorm:"size:100;not null" json:"item"`
	Quantity    int              `gorm:"not null" json:"quantidade"`
	UnitPrice   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"valor_unitario"`
	TotalPrice  decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"valor_total"`
	Date        string           `gorm:"size:10;not null;index" json:"data"` // YYYY-MM-DD
	CreatedAt   time.Time        `json:"data_hora"`
	UpdatedAt   time.Time        `json:"-"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

// MarshalJSON renders money as plain numbers
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"valor_unitario"`
		TotalPrice float64 `json:"valor_total"`
	}{
		Alias:      Alias(s),
		UnitPrice:  Money(s.UnitPrice),
		TotalPrice: Money(s.TotalPrice),
	})
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "vendas"
}

// OrderKey groups sales that belong to the same checkout. Lines without an
// order identifier form an order of their own.
func (s *Sale) OrderKey() string {
	if s.OrderID != nil && *s.OrderID != "" {
		return *s.OrderID
	}
	return SingleOrderKey(s.ID)
}

// Recalculate sets TotalPrice from UnitPrice and Quantity.
func (s *Sale) Recalculate() {
	s.TotalPrice = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity))).Round(2)
}
