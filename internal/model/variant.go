package model

import (
	"fmt"
	"math"
)

// Size tags a variant. Values outside small/medium are accepted as-is.
type Size string

const (
	NoSize Size = "" // no size filter
	Small  Size = "small"
	Medium Size = "medium"
)

// Title is the display name used by selectors and summary rows.
func (s Size) Title() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case NoSize:
		return "Select size"
	}
	return string(s)
}

// Color is a free-form color name.
type Color = string

// NoColor means no color filter.
const NoColor Color = ""

// Price is a non-negative amount in cents.
type Price int64

// PriceFromFloat rounds a decimal amount to the nearest cent.
func PriceFromFloat(f float64) Price { return Price(math.Round(f * 100)) }

func (p Price) Float() float64 { return float64(p) / 100 }

func (p Price) String() string {
	return fmt.Sprintf("$%d.%02d", int64(p)/100, int64(p)%100)
}

// Variant is one size/color combination with its price and stock.
type Variant struct {
	Size      Size  `json:"size"`
	Color     Color `json:"color"`
	Price     Price `json:"price"`
	Available int   `json:"available"`
}

// Label renders "small | blue".
func (v Variant) Label() string { return string(v.Size) + " | " + v.Color }

func (v Variant) Key() string { return string(v.Size) + "-" + v.Color }
