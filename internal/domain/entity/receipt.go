package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"-"`
	Total     decimal.Decimal `json:"-"`
}

// Receipt is a value object representing a printable receipt.
// It is composed from the sales of one order at print time.
type Receipt struct {
	Header  ReceiptHeader `json:"header"`
	OrderID string        `json:"pedido_id"`
	Date    string        `json:"date"`
	Items   []ReceiptItem `json:"items"`
	Total   decimal.Decimal `json:"-"`
}

// NewReceipt builds a receipt from the sales of one order, in the order given.
func NewReceipt(header ReceiptHeader, orderID string, sales []Sale) *Receipt {
	r := &Receipt{Header: header, OrderID: orderID, Items: make([]ReceiptItem, 0, len(sales))}
	for _, s := range sales {
		if r.Date == "" {
			r.Date = s.Date
		}
		r.Items = append(r.Items, ReceiptItem{
			Name:      s.Item,
			Category:  s.ProductType.String(),
			Quantity:  s.Quantity,
			UnitPrice: s.UnitPrice,
			Total:     s.TotalPrice,
		})
		r.Total = r.Total.Add(s.TotalPrice)
	}
	return r
}

func (i ReceiptItem) MarshalJSON() ([]byte, error) {
	type Alias ReceiptItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: Money(i.UnitPrice),
		Total:     Money(i.Total),
	})
}

func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(r),
		Total: Money(r.Total),
	})
}
