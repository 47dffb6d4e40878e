// Package summary projects a saved snapshot of variants into per-size
// totals and an overall price range.
package summary

import (
	"strconv"

	"github.com/idilsaglam/variants/internal/model"
)

// PriceRange is the lowest and highest price in a snapshot.
type PriceRange struct {
	Min model.Price
	Max model.Price
}

func (r PriceRange) String() string { return r.Min.String() + " - " + r.Max.String() }

type Summary struct {
	TotalSmall     int
	TotalMedium    int
	TotalAvailable int
	PriceRange     PriceRange
	Count          int
}

// Compute aggregates saved. An empty snapshot yields a {0, 0} price range.
func Compute(saved []model.Variant) Summary {
	var s Summary
	s.Count = len(saved)
	for i, v := range saved {
		switch v.Size {
		case model.Small:
			s.TotalSmall += v.Available
		case model.Medium:
			s.TotalMedium += v.Available
		}
		s.TotalAvailable += v.Available

		if i == 0 || v.Price < s.PriceRange.Min {
			s.PriceRange.Min = v.Price
		}
		if i == 0 || v.Price > s.PriceRange.Max {
			s.PriceRange.Max = v.Price
		}
	}
	return s
}

// Row is one line of the summary table.
type Row struct {
	Label      string
	Total      int
	PriceRange string
}

var Header = []string{"Size", "Total Available", "Price Range"}

// Rows returns the Small and Medium rows followed by the grand total. Both
// size rows show the overall price range, not a per-size one.
func (s Summary) Rows() []Row {
	pr := s.PriceRange.String()
	return []Row{
		{Label: model.Small.Title(), Total: s.TotalSmall, PriceRange: pr},
		{Label: model.Medium.Title(), Total: s.TotalMedium, PriceRange: pr},
		{Label: "Total Available", Total: s.TotalAvailable},
	}
}

// Records flattens Rows for table rendering.
func (s Summary) Records() [][]string {
	rows := s.Rows()
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		if i == len(rows)-1 {
			out = append(out, []string{r.Label, "", strconv.Itoa(r.Total)})
			continue
		}
		out = append(out, []string{r.Label, strconv.Itoa(r.Total), r.PriceRange})
	}
	return out
}
