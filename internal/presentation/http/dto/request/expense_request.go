package request

import "github.com/shopspring/decimal"

// CreateExpenseRequest represents an expense registration
type CreateExpenseRequest struct {
	Descricao string          `json:"descricao" binding:"required,max=255"`
	Categoria string          `json:"categoria" binding:"required,max=100"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data" binding:"omitempty,datetime=2006-01-02"`
}
