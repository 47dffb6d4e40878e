package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/variants/internal/app"
	"github.com/idilsaglam/variants/internal/filter"
	"github.com/idilsaglam/variants/internal/model"
	"github.com/idilsaglam/variants/internal/summary"
	"github.com/idilsaglam/variants/internal/ui"
)

// selectionFlags mirror the filter panel controls.
type selectionFlags struct {
	size      string
	color     string
	addColors []string
}

func (f *selectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.size, "size", "", "Size filter (small, medium); empty for none")
	cmd.Flags().StringVar(&f.color, "color", "", "Color filter; empty for none")
	cmd.Flags().StringArrayVar(&f.addColors, "add-color", nil, "Add a color option (repeatable)")
}

func (f *selectionFlags) apply(ctrl *app.Controller) {
	sel := ctrl.Selection()
	for _, c := range f.addColors {
		sel.SetPending(c)
		sel.CommitPending()
	}
	sel.SetSelectedSize(model.Size(f.size))
	sel.SetSelectedColor(f.color)
}

func newTableCmd(e *env) *cobra.Command {
	f := &selectionFlags{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the variant table for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := e.controller()
			f.apply(ctrl)
			t := ctrl.Table()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Title.Render("Variants"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table(filter.Header, t.Records(), true))
			e.log.WithFields(map[string]any{"rows": len(t.Rows)}).Debug("table rendered")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newSummaryCmd(e *env) *cobra.Command {
	f := &selectionFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Save the filtered selection and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := e.controller()
			f.apply(ctrl)
			ctrl.Save()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Title.Render("Saved Selections Summary"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table(summary.Header, ctrl.Summary().Records(), true))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newColorsCmd(e *env) *cobra.Command {
	f := &selectionFlags{}
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the color options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := e.controller()
			f.apply(ctrl)
			lines := []string{ui.Current().Header.Render("COLOR")}
			for _, opt := range ctrl.Selection().ColorOptions() {
				lines = append(lines, ui.Radio(opt.Color, opt.Selected, false))
			}
			ui.Panel(lines)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}
