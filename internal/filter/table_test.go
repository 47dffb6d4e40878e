package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/variants/internal/model"
)

func TestApply(t *testing.T) {
	c := model.Seed()
	tests := []struct {
		name  string
		size  model.Size
		color model.Color
		want  []string
	}{
		{"no filters", model.NoSize, model.NoColor, []string{"small-blue", "small-red", "medium-blue", "medium-red"}},
		{"size only", model.Medium, model.NoColor, []string{"medium-blue", "medium-red"}},
		{"color only", model.NoSize, "red", []string{"small-red", "medium-red"}},
		{"both", model.Small, "blue", []string{"small-blue"}},
		{"no match", model.Small, "green", []string{}},
		{"unknown size", "large", model.NoColor, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(c, tt.size, tt.color)
			keys := make([]string, 0, len(got))
			for _, v := range got {
				keys = append(keys, v.Key())
			}
			require.Equal(t, tt.want, keys)
		})
	}
}

func TestApplyWithoutFiltersReturnsCatalog(t *testing.T) {
	c := model.Seed()
	require.Equal(t, c.Variants(), Apply(c, model.NoSize, model.NoColor))
}

func TestCatalogTotalsIgnoreFilters(t *testing.T) {
	c := model.Seed()
	sel := NewSelection()
	sel.SetSelectedSize(model.Small)
	sel.SetSelectedColor("blue")

	table := BuildTable(c, sel)
	require.Equal(t, Totals{Small: 40, Medium: 40}, table.Totals)

	sum := 0
	for _, v := range c.Variants() {
		sum += v.Available
	}
	require.Equal(t, sum, table.Totals.Small+table.Totals.Medium)
}

func TestBuildTableRows(t *testing.T) {
	sel := NewSelection()
	table := BuildTable(model.Seed(), sel)
	require.Len(t, table.Rows, 4)

	first := table.Rows[0]
	require.Equal(t, "small | blue", first.Label)
	require.Equal(t, "$345.30", first.Price)
	require.Equal(t, "20", first.Available)
	require.Equal(t, "20", first.SmallCell)
	require.Empty(t, first.MediumCell)

	third := table.Rows[2]
	require.Empty(t, third.SmallCell)
	require.Equal(t, "20", third.MediumCell)
}

func TestBuildTableEmptyKeepsTotalsRow(t *testing.T) {
	sel := NewSelection()
	sel.SetSelectedSize(model.Small)
	sel.SetSelectedColor("green")

	table := BuildTable(model.Seed(), sel)
	require.Empty(t, table.Rows)
	require.Equal(t, [][]string{{"Total", "", "", "40", "40"}}, table.Records())
	require.Empty(t, table.Saved())
}

func TestSaveEmitsFilteredSet(t *testing.T) {
	sel := NewSelection()
	sel.SetSelectedSize(model.Small)
	sel.SetSelectedColor("blue")

	saved := Save(model.Seed(), sel)
	require.Equal(t, []model.Variant{{Size: model.Small, Color: "blue", Price: 34530, Available: 20}}, saved)
}
