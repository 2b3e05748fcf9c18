package request

import (
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest represents one line submitted at checkout
type CreateSaleRequest struct {
	OrderID    *string          `json:"pedido_id" binding:"omitempty,max=64"`
	Tipo       enum.ProductType `json:"tipo" binding:"required"`
	Item       string           `json:"item" binding:"required,max=100"`
	Quantidade int              `json:"quantidade" binding:"required,min=1"`
	// money is validated by the service; decimals have no binding rules
	ValorUnitario decimal.Decimal  `json:"valor_unitario"`
	ValorTotal    *decimal.Decimal `json:"valor_total"`
	Data          string           `json:"data" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateSaleRequest changes the quantity of one line
type UpdateSaleRequest struct {
	Quantidade int `json:"quantidade" binding:"required,min=1"`
}

// DateFilterRequest is the optional ?data= filter of list endpoints
type DateFilterRequest struct {
	Data string `form:"data" binding:"omitempty,datetime=2006-01-02"`
}
