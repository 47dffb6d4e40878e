package filter

import (
	"slices"

	"github.com/idilsaglam/variants/internal/model"
)

// Selection is the filter panel state for one session.
type Selection struct {
	SelectedSize  model.Size
	SelectedColor model.Color
	KnownColors   []model.Color // append-only, deduplicated
	Pending       string        // add-color input buffer
}

func NewSelection() Selection {
	return Selection{KnownColors: model.BuiltinColors()}
}

// SetSelectedSize replaces the size filter. model.NoSize clears it.
func (s *Selection) SetSelectedSize(size model.Size) { s.SelectedSize = size }

func (s *Selection) SetSelectedColor(color model.Color) { s.SelectedColor = color }

func (s *Selection) SetPending(text string) { s.Pending = text }

// AddColor appends text to the known colors unless it is empty or already
// present. Reports whether the list changed.
func (s *Selection) AddColor(text string) bool {
	if text == "" || slices.Contains(s.KnownColors, text) {
		return false
	}
	s.KnownColors = append(s.KnownColors, text)
	s.Pending = ""
	return true
}

// CommitPending adds the pending input as a color.
func (s *Selection) CommitPending() bool { return s.AddColor(s.Pending) }

func (s Selection) Colors() []model.Color { return slices.Clone(s.KnownColors) }

// ColorOption is one radio entry.
type ColorOption struct {
	Color    model.Color
	Selected bool
}

func (s Selection) ColorOptions() []ColorOption {
	out := make([]ColorOption, 0, len(s.KnownColors))
	for _, c := range s.KnownColors {
		out = append(out, ColorOption{Color: c, Selected: c == s.SelectedColor})
	}
	return out
}

// SizeOption is one drop-down entry. The first option is the neutral one.
type SizeOption struct {
	Size     model.Size
	Selected bool
}

func (s Selection) SizeOptions() []SizeOption {
	sizes := append([]model.Size{model.NoSize}, model.Sizes()...)
	out := make([]SizeOption, 0, len(sizes))
	for _, sz := range sizes {
		out = append(out, SizeOption{Size: sz, Selected: sz == s.SelectedSize})
	}
	return out
}
