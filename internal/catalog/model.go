package catalog

import (
	"encoding/json"
	"strconv"
)

type Variant struct {
	ID       int    `yaml:"id" json:"id"`
	Color    string `yaml:"color" json:"color"`
	ImageRef string `yaml:"image" json:"image"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// Product is the static data behind one product card.
type Product struct {
	Name        string    `yaml:"name" json:"name"`
	Brand       string    `yaml:"brand" json:"brand"`
	Description string    `yaml:"description" json:"description"`
	AltText     string    `yaml:"altText" json:"altText"`
	Link        string    `yaml:"link" json:"link"`
	Details     []string  `yaml:"details" json:"details"`
	Sizes       []string  `yaml:"sizes" json:"sizes"`
	Variants    []Variant `yaml:"variants" json:"variants"`
	OnSale      bool      `yaml:"onSale" json:"onSale"`
}

// StandardShipping is charged to members without a premium subscription.
const StandardShipping = 2.99

// ShippingCost is either free or a numeric amount.
type ShippingCost struct {
	free   bool
	amount float64
}

func FreeShipping() ShippingCost {
	return ShippingCost{free: true}
}

func ShippingAmount(amount float64) ShippingCost {
	return ShippingCost{amount: amount}
}

func (s ShippingCost) IsFree() bool {
	return s.free
}

// Amount returns the charge and false when shipping is free.
func (s ShippingCost) Amount() (float64, bool) {
	if s.free {
		return 0, false
	}
	return s.amount, true
}

func (s ShippingCost) String() string {
	if s.free {
		return "Free"
	}
	return strconv.FormatFloat(s.amount, 'f', -1, 64)
}

// MarshalJSON encodes free shipping as "Free" and anything else as a number.
func (s ShippingCost) MarshalJSON() ([]byte, error) {
	if s.free {
		return json.Marshal("Free")
	}
	return json.Marshal(s.amount)
}
