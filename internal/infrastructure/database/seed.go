package database

import (
	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

type seedItem struct {
	name        string
	price       string
	description string
}

var defaultMenu = map[enum.ProductType][]seedItem{
	enum.ProductTypeLanche: {
		{"X-Burger", "15.00", "Pão, hambúrguer, queijo e molho da casa"},
		{"X-Salada", "18.00", "Pão, hambúrguer, queijo, alface, tomate e maionese"},
		{"X-Bacon", "20.00", "Pão, hambúrguer, queijo, bacon crocante e maionese"},
		{"X-Tudo", "25.00", "Pão, dois hambúrgueres, queijo, bacon, ovo, presunto, alface e tomate"},
		{"X-Egg", "17.00", "Pão, hambúrguer, queijo e ovo"},
		{"X-Frango", "16.00", "Pão, filé de frango, queijo, alface e tomate"},
		{"Hot Dog", "12.00", "Pão, salsicha, molho de tomate, milho e batata palha"},
		{"Cachorro Quente Especial", "15.00", "Pão, duas salsichas, purê, vinagrete, milho e batata palha"},
		{"Misto Quente", "8.00", "Pão de forma, presunto e queijo na chapa"},
		{"Hambúrguer Simples", "10.00", "Pão e hambúrguer"},
	},
	enum.ProductTypeLancheGourmet: {
		{"Burger Artesanal", "28.00", "Pão brioche, blend bovino 180g, queijo cheddar e cebola caramelizada"},
		{"Smash Duplo", "30.00", "Pão brioche, dois smash burgers, cheddar duplo e picles"},
		{"Burger Costela", "34.00", "Pão australiano, blend de costela 180g, queijo prato e barbecue"},
		{"Chicken Crispy", "27.00", "Pão brioche, frango empanado, coleslaw e maionese de ervas"},
		{"Veggie Burger", "26.00", "Pão integral, hambúrguer de grão-de-bico, rúcula e tomate seco"},
	},
	enum.ProductTypePorcao: {
		{"Batata Frita", "18.00", ""},
		{"Batata com Cheddar e Bacon", "28.00", ""},
		{"Onion Rings", "22.00", ""},
		{"Frango a Passarinho", "32.00", ""},
		{"Calabresa Acebolada", "30.00", ""},
		{"Mandioca Frita", "20.00", ""},
	},
	enum.ProductTypeBebida: {
		{"Coca-Cola 350ml", "5.00", ""},
		{"Coca-Cola 600ml", "8.00", ""},
		{"Coca-Cola 2L", "12.00", ""},
		{"Guaraná 350ml", "4.50", ""},
		{"Guaraná 2L", "10.00", ""},
		{"Água 500ml", "3.00", ""},
		{"Suco Natural", "7.00", ""},
		{"Suco de Lata", "4.00", ""},
		{"Cerveja", "6.00", ""},
		{"Refrigerante Lata", "4.50", ""},
	},
}

// DefaultMenu returns the catalog a new database starts with.
func DefaultMenu() []entity.MenuItem {
	var items []entity.MenuItem
	for _, category := range enum.ProductTypes {
		for pos, s := range defaultMenu[category] {
			item := entity.MenuItem{
				Category: category,
				Name:     s.name,
				Price:    decimal.RequireFromString(s.price),
				Position: pos,
			}
			if s.description != "" {
				desc := s.description
				item.Description = &desc
			}
			items = append(items, item)
		}
	}
	return items
}
