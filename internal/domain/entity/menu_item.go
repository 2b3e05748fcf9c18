package entity

import (
	"encoding/json"
	"time"

	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// MenuItem is one priced entry of the catalog
type MenuItem struct {
	ID          uint             `gorm:"primaryKey"`
	Category    enum.ProductType `gorm:"size:32;not null;uniqueIndex:idx_menu_category_name"`
	Name        string           `gorm:"size:100;not null;uniqueIndex:idx_menu_category_name"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Description *string          `gorm:"type:text"`
	Position    int              `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// Menu is the catalog as served to clients: prices per category plus
// descriptions for the sandwich categories.
type Menu struct {
	Items        map[enum.ProductType]map[string]decimal.Decimal
	Descriptions map[enum.ProductType]map[string]string
}

// NewMenu returns an empty menu with every category present.
func NewMenu() *Menu {
	m := &Menu{
		Items:        make(map[enum.ProductType]map[string]decimal.Decimal),
		Descriptions: make(map[enum.ProductType]map[string]string),
	}
	for _, t := range enum.ProductTypes {
		m.Items[t] = map[string]decimal.Decimal{}
		if t.HasDescriptions() {
			m.Descriptions[t] = map[string]string{}
		}
	}
	return m
}

// Add places item in the menu.
func (m *Menu) Add(item MenuItem) {
	if m.Items[item.Category] == nil {
		m.Items[item.Category] = map[string]decimal.Decimal{}
	}
	m.Items[item.Category][item.Name] = item.Price
	if item.Description != nil && item.Category.HasDescriptions() {
		if m.Descriptions[item.Category] == nil {
			m.Descriptions[item.Category] = map[string]string{}
		}
		m.Descriptions[item.Category][item.Name] = *item.Description
	}
}

// Price looks up the price of name in category.
func (m *Menu) Price(category enum.ProductType, name string) (decimal.Decimal, bool) {
	p, ok := m.Items[category][name]
	return p, ok
}

// menuKeys are the wire names of each category's price table.
var menuKeys = map[enum.ProductType]string{
	enum.ProductTypeLanche:        "lanches",
	enum.ProductTypeLancheGourmet: "lanches_gourmet",
	enum.ProductTypePorcao:        "porcoes",
	enum.ProductTypeBebida:        "bebidas",
}

func (m Menu) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(menuKeys)*2)
	for t, key := range menuKeys {
		prices := make(map[string]float64, len(m.Items[t]))
		for name, p := range m.Items[t] {
			prices[name] = Money(p)
		}
		out[key] = prices
		if t.HasDescriptions() {
			desc := m.Descriptions[t]
			if desc == nil {
				desc = map[string]string{}
			}
			out["descricoes_"+key] = desc
		}
	}
	return json.Marshal(out)
}

func (m *Menu) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = *NewMenu()
	for t, key := range menuKeys {
		if body, ok := raw[key]; ok {
			var prices map[string]decimal.Decimal
			if err := json.Unmarshal(body, &prices); err != nil {
				return err
			}
			m.Items[t] = prices
		}
		if body, ok := raw["descricoes_"+key]; ok {
			var desc map[string]string
			if err := json.Unmarshal(body, &desc); err != nil {
				return err
			}
			m.Descriptions[t] = desc
		}
	}
	return nil
}
