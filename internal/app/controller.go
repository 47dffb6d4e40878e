package app

import (
	"github.com/idilsaglam/variants/internal/filter"
	"github.com/idilsaglam/variants/internal/logger"
	"github.com/idilsaglam/variants/internal/model"
	"github.com/idilsaglam/variants/internal/summary"
)

// Screen is the view currently shown.
type Screen int

const (
	ScreenFiltering Screen = iota
	ScreenSummary
)

func (s Screen) String() string {
	if s == ScreenSummary {
		return "summary"
	}
	return "filtering"
}

// Controller owns the selection, the saved snapshot and the current screen.
// The only transition is filtering -> summary; nothing leads back.
type Controller struct {
	catalog   model.Catalog
	selection filter.Selection
	saved     []model.Variant
	screen    Screen
	log       *logger.Logger
}

func NewController(c model.Catalog, log *logger.Logger) *Controller {
	return &Controller{
		catalog:   c,
		selection: filter.NewSelection(),
		saved:     []model.Variant{},
		screen:    ScreenFiltering,
		log:       log,
	}
}

func (c *Controller) Catalog() model.Catalog { return c.catalog }

func (c *Controller) Screen() Screen { return c.screen }

// Selection exposes the filter panel state for mutation.
func (c *Controller) Selection() *filter.Selection { return &c.selection }

func (c *Controller) Table() filter.Table { return filter.BuildTable(c.catalog, c.selection) }

// Save replaces the snapshot with the current filtered set and shows the
// summary screen.
func (c *Controller) Save() {
	c.saved = c.Table().Saved()
	c.screen = ScreenSummary
	c.log.WithFields(map[string]any{
		"count": len(c.saved),
		"size":  string(c.selection.SelectedSize),
		"color": c.selection.SelectedColor,
	}).Info("selection saved")
}

func (c *Controller) Saved() []model.Variant {
	out := make([]model.Variant, len(c.saved))
	copy(out, c.saved)
	return out
}

func (c *Controller) Summary() summary.Summary { return summary.Compute(c.saved) }
