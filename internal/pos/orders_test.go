package pos

import (
	"testing"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sale(id uint, orderID *string, total string, at time.Time) entity.Sale {
	return entity.Sale{
		ID:         id,
		OrderID:    orderID,
		Item:       "X-Burger",
		Quantity:   1,
		TotalPrice: decimal.RequireFromString(total),
		CreatedAt:  at,
	}
}

func TestGroupOrders_PartitionsByOrderID(t *testing.T) {
	at := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	orders := GroupOrders([]entity.Sale{
		sale(1, strPtr("A"), "16.00", at),
		sale(2, strPtr("A"), "5.00", at),
		sale(3, nil, "8.00", at),
	})

	require.Len(t, orders, 2)
	assert.Equal(t, "A", orders[0].Key)
	assert.Len(t, orders[0].Lines, 2)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("21.00")))
	assert.Equal(t, "single-3", orders[1].Key)
	assert.Len(t, orders[1].Lines, 1)
}

func TestGroupOrders_EmptyOrderIDIsSingle(t *testing.T) {
	orders := GroupOrders([]entity.Sale{sale(9, strPtr(""), "1.00", time.Now())})

	require.Len(t, orders, 1)
	assert.Equal(t, "single-9", orders[0].Key)
}

func TestGroupOrders_SortsNewestFirst(t *testing.T) {
	t1 := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	orders := GroupOrders([]entity.Sale{
		sale(1, strPtr("T1"), "1.00", t1),
		sale(2, strPtr("T3"), "1.00", t3),
		sale(3, strPtr("T2"), "1.00", t2),
	})

	require.Len(t, orders, 3)
	assert.Equal(t, []string{"T3", "T2", "T1"}, []string{orders[0].Key, orders[1].Key, orders[2].Key})
}

func TestGroupOrders_UsesFirstSeenTimestamp(t *testing.T) {
	early := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	late := early.Add(2 * time.Hour)
	middle := early.Add(time.Hour)

	// Newest-first listing: the first record seen for A is the late one.
	orders := GroupOrders([]entity.Sale{
		sale(2, strPtr("A"), "1.00", late),
		sale(3, strPtr("B"), "1.00", middle),
		sale(1, strPtr("A"), "1.00", early),
	})

	require.Len(t, orders, 2)
	assert.Equal(t, "A", orders[0].Key)
	assert.Equal(t, late, orders[0].Timestamp)
	assert.Equal(t, []uint{2, 1}, orders[0].SaleIDs())
}

func TestRecentOrders(t *testing.T) {
	var sales []entity.Sale
	base := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= 8; i++ {
		sales = append(sales, sale(uint(i), nil, "1.00", base.Add(time.Duration(i)*time.Minute)))
	}

	recent := RecentOrders(GroupOrders(sales), 5)
	require.Len(t, recent, 5)
	assert.Equal(t, "single-8", recent[0].Key)
	assert.Equal(t, "single-4", recent[4].Key)

	assert.Len(t, RecentOrders(GroupOrders(sales[:2]), 5), 2)
	assert.Len(t, RecentOrders(GroupOrders(sales), 0), 8)
}
