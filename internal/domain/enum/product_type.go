package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProductType is the menu category a sale line belongs to
type ProductType string

const (
	ProductTypeLanche        ProductType = "lanche"
	ProductTypeLancheGourmet ProductType = "lanche_gourmet"
	ProductTypePorcao        ProductType = "porcao"
	ProductTypeBebida        ProductType = "bebida"
)

// ProductTypes lists every category in menu order.
var ProductTypes = []ProductType{
	ProductTypeLanche,
	ProductTypeLancheGourmet,
	ProductTypePorcao,
	ProductTypeBebida,
}

func (t ProductType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known categories.
func (t ProductType) IsValid() bool {
	for _, known := range ProductTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasDescriptions reports whether menu items of this category carry a description.
func (t ProductType) HasDescriptions() bool {
	return t == ProductTypeLanche || t == ProductTypeLancheGourmet
}

func (t ProductType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ProductType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ProductType(str)
	return nil
}

func (t ProductType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ProductType) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case string:
		*t = ProductType(v)
	case []byte:
		*t = ProductType(v)
	default:
		return fmt.Errorf("enum: cannot scan %T into ProductType", value)
	}
	return nil
}
