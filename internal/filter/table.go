package filter

import (
	"strconv"

	"github.com/idilsaglam/variants/internal/model"
)

// Apply keeps the variants matching every active filter. Unset filters
// impose no constraint.
func Apply(c model.Catalog, size model.Size, color model.Color) []model.Variant {
	out := []model.Variant{}
	for _, v := range c.Variants() {
		if size != model.NoSize && v.Size != size {
			continue
		}
		if color != model.NoColor && v.Color != color {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Totals holds available stock per size.
type Totals struct {
	Small  int
	Medium int
}

// CatalogTotals sums over the whole catalog, ignoring any active filter.
func CatalogTotals(c model.Catalog) Totals {
	var t Totals
	for _, v := range c.Variants() {
		switch v.Size {
		case model.Small:
			t.Small += v.Available
		case model.Medium:
			t.Medium += v.Available
		}
	}
	return t
}

// Row is one rendered table line. SmallCell/MediumCell are blank unless the
// row's size matches the column.
type Row struct {
	Variant    model.Variant
	Label      string
	Price      string
	Available  string
	SmallCell  string
	MediumCell string
}

// Table is the derived variant table for a selection.
type Table struct {
	Rows   []Row
	Totals Totals

	filtered []model.Variant
}

var Header = []string{"Variants", "Price", "Available", "Total Small", "Total Medium"}

func BuildTable(c model.Catalog, sel Selection) Table {
	filtered := Apply(c, sel.SelectedSize, sel.SelectedColor)
	rows := make([]Row, 0, len(filtered))
	for _, v := range filtered {
		avail := strconv.Itoa(v.Available)
		r := Row{
			Variant:   v,
			Label:     v.Label(),
			Price:     v.Price.String(),
			Available: avail,
		}
		switch v.Size {
		case model.Small:
			r.SmallCell = avail
		case model.Medium:
			r.MediumCell = avail
		}
		rows = append(rows, r)
	}
	return Table{Rows: rows, Totals: CatalogTotals(c), filtered: filtered}
}

// Saved is the sequence handed to the root controller on save.
func (t Table) Saved() []model.Variant {
	out := make([]model.Variant, len(t.filtered))
	copy(out, t.filtered)
	return out
}

// Records flattens the table into string rows, totals row last.
func (t Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	for _, r := range t.Rows {
		out = append(out, []string{r.Label, r.Price, r.Available, r.SmallCell, r.MediumCell})
	}
	out = append(out, []string{"Total", "", "", strconv.Itoa(t.Totals.Small), strconv.Itoa(t.Totals.Medium)})
	return out
}

// Save returns the currently filtered variants.
func Save(c model.Catalog, sel Selection) []model.Variant {
	return BuildTable(c, sel).Saved()
}
