package pos

import (
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CartLine is one selected menu item. A cart holds at most one line per
// (Category, Name).
type CartLine struct {
	Category  enum.ProductType
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total is UnitPrice × Quantity.
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the order being built. Every method returns a new Cart and leaves
// the receiver untouched.
type Cart struct {
	Lines []CartLine
}

func (c Cart) Len() int { return len(c.Lines) }

func (c Cart) IsEmpty() bool { return len(c.Lines) == 0 }

func (c Cart) clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// AddItem increments the line for (category, name) or appends a new line
// with quantity 1.
func (c Cart) AddItem(category enum.ProductType, name string, price decimal.Decimal) Cart {
	out := c.clone()
	for i := range out.Lines {
		if out.Lines[i].Category == category && out.Lines[i].Name == name {
			out.Lines[i].Quantity++
			return out
		}
	}
	out.Lines = append(out.Lines, CartLine{Category: category, Name: name, UnitPrice: price, Quantity: 1})
	return out
}

// ChangeQuantity adds delta to a line's quantity. A result of zero or less
// removes the line.
func (c Cart) ChangeQuantity(index, delta int) (Cart, error) {
	if index < 0 || index >= len(c.Lines) {
		return c, errLineNotFound
	}
	if c.Lines[index].Quantity+delta <= 0 {
		return c.RemoveLine(index)
	}
	out := c.clone()
	out.Lines[index].Quantity += delta
	return out, nil
}

// RemoveLine drops a line regardless of its quantity.
func (c Cart) RemoveLine(index int) (Cart, error) {
	if index < 0 || index >= len(c.Lines) {
		return c, errLineNotFound
	}
	lines := make([]CartLine, 0, len(c.Lines)-1)
	lines = append(lines, c.Lines[:index]...)
	lines = append(lines, c.Lines[index+1:]...)
	return Cart{Lines: lines}, nil
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total sums every line. It is recomputed on each call.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

var errLineNotFound = apperror.NewBadRequestError("Item do carrinho não encontrado")
