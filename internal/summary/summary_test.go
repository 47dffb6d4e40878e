package summary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/variants/internal/filter"
	"github.com/idilsaglam/variants/internal/model"
)

func TestCompute(t *testing.T) {
	seed := model.Seed()

	tests := []struct {
		name  string
		size  model.Size
		color model.Color
		want  Summary
	}{
		{
			name:  "small blue",
			size:  model.Small,
			color: "blue",
			want: Summary{
				TotalSmall: 20, TotalAvailable: 20, Count: 1,
				PriceRange: PriceRange{Min: 34530, Max: 34530},
			},
		},
		{
			name: "no filters",
			want: Summary{
				TotalSmall: 40, TotalMedium: 40, TotalAvailable: 80, Count: 4,
				PriceRange: PriceRange{Min: 2300, Max: 34530},
			},
		},
		{
			name:  "empty result",
			size:  model.Small,
			color: "green",
			want:  Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(filter.Apply(seed, tt.size, tt.color))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	in := model.Seed().Variants()
	before := append([]model.Variant(nil), in...)
	Compute(in)
	require.Equal(t, before, in)
}

func TestRowsRepeatOverallPriceRange(t *testing.T) {
	s := Compute(model.Seed().Variants())
	rows := s.Rows()
	require.Len(t, rows, 3)
	require.Equal(t, "Small", rows[0].Label)
	require.Equal(t, "Medium", rows[1].Label)
	require.Equal(t, "$23.00 - $345.30", rows[0].PriceRange)
	require.Equal(t, rows[0].PriceRange, rows[1].PriceRange)
	require.Equal(t, Row{Label: "Total Available", Total: 80}, rows[2])
}

func TestRecordsEmptySnapshot(t *testing.T) {
	got := Compute(nil).Records()
	require.Equal(t, [][]string{
		{"Small", "0", "$0.00 - $0.00"},
		{"Medium", "0", "$0.00 - $0.00"},
		{"Total Available", "", "0"},
	}, got)
}
