package pos

import (
	"sort"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Order is a group of sale records sharing an order key. It is derived on
// every load and never stored.
type Order struct {
	Key       string
	Lines     []entity.Sale
	Timestamp time.Time
	Total     decimal.Decimal
}

// SaleIDs returns the ids of every record in the order, in line order.
func (o Order) SaleIDs() []uint {
	ids := make([]uint, len(o.Lines))
	for i, l := range o.Lines {
		ids[i] = l.ID
	}
	return ids
}

// GroupOrders partitions sales by order key. An order takes the timestamp of
// the first record seen for its key. Orders are returned newest first, ties
// keeping first-seen order.
func GroupOrders(sales []entity.Sale) []Order {
	index := make(map[string]int)
	var orders []Order
	for _, s := range sales {
		key := s.OrderKey()
		i, ok := index[key]
		if !ok {
			i = len(orders)
			index[key] = i
			orders = append(orders, Order{Key: key, Timestamp: s.CreatedAt, Total: decimal.Zero})
		}
		orders[i].Lines = append(orders[i].Lines, s)
		orders[i].Total = orders[i].Total.Add(s.TotalPrice)
	}

	sort.SliceStable(orders, func(a, b int) bool {
		return orders[a].Timestamp.After(orders[b].Timestamp)
	})
	return orders
}

// RecentOrders keeps the first limit orders. A limit of zero or less keeps
// everything.
func RecentOrders(orders []Order, limit int) []Order {
	if limit <= 0 || len(orders) <= limit {
		return orders
	}
	return orders[:limit]
}

func findOrder(key string, lists ...[]Order) (Order, bool) {
	for _, list := range lists {
		for _, o := range list {
			if o.Key == key {
				return o, true
			}
		}
	}
	return Order{}, false
}
