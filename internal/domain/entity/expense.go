package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is money spent by the business on a given day
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"size:255;not null" json:"descricao"`
	Category    string          `gorm:"size:100;not null;index" json:"categoria"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Date        string          `gorm:"size:10;not null;index" json:"data"` // YYYY-MM-DD
	CreatedAt   time.Time       `json:"data_hora"`
	UpdatedAt   time.Time       `json:"-"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"valor"`
	}{
		Alias:  Alias(e),
		Amount: Money(e.Amount),
	})
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "despesas"
}
