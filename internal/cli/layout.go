package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlandgraf/tiledeck/pkg/layout"
)

// layoutCommand creates the layout command group for inspecting and managing
// the persisted arrangement.
func (c *CLI) layoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect and manage the persisted tile arrangement",
	}

	cmd.AddCommand(c.layoutShowCommand())
	cmd.AddCommand(c.layoutResetCommand())
	cmd.AddCommand(c.layoutPathCommand())

	return cmd
}

// layoutShowCommand creates the layout show command.
func (c *CLI) layoutShowCommand() *cobra.Command {
	var (
		width  float64
		mobile bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current layout with resolved spans",
		Long: `Print the current layout with resolved spans.

Loads the persisted arrangement (migrating legacy versions on the fly) and
prints each tile with its effective column span. With --width, pixel widths
are computed for that grid width; with --mobile, the half-grid mobile span
rules apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runLayoutShow(cmd.Context(), width, mobile)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "grid width in pixels (0 = unmeasured)")
	cmd.Flags().BoolVar(&mobile, "mobile", false, "resolve spans for a mobile viewport")

	return cmd
}

// runLayoutShow loads the layout and prints the resolved tiles.
func (c *CLI) runLayoutShow(ctx context.Context, width float64, mobile bool) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	l := eng.store.Load(ctx)

	gridPx := layout.UnmeasuredPixelWidth
	if width > 0 {
		gridPx = width
	}
	resolved := eng.geom.Resolve(eng.catalog, l, gridPx, mobile)

	printKeyValue("Version", fmt.Sprintf("%d", l.Version))
	printKeyValue("Tiles", fmt.Sprintf("%d", len(resolved)))
	printNewline()

	for i, rt := range resolved {
		span := fmt.Sprintf("%2d col", rt.Span)
		extras := []string{string(rt.Def.Category)}
		if width > 0 {
			extras = append(extras, fmt.Sprintf("%.0fpx", rt.PixelWidth))
		}
		if rt.Compact {
			extras = append(extras, "compact")
		}
		fmt.Printf("  %2d. %-20s %s  %s\n",
			i+1,
			StyleValue.Render(rt.TileID),
			StyleHighlight.Render(span),
			StyleDim.Render(strings.Join(extras, "  ")))
	}

	return nil
}

// layoutResetCommand creates the layout reset command.
func (c *CLI) layoutResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default tile arrangement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runLayoutReset(cmd.Context())
		},
	}
}

// runLayoutReset replaces the persisted arrangement with the default.
func (c *CLI) runLayoutReset(ctx context.Context) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	l := eng.store.Reset(ctx)
	printSuccess("Layout reset to %d default tiles", len(l.Tiles))
	printNextStep("View it", "tiledeck layout show")
	return nil
}

// layoutPathCommand creates the layout path command.
func (c *CLI) layoutPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the storage location of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runLayoutPath(cmd.Context())
		},
	}
}

// runLayoutPath prints where the layout is persisted.
func (c *CLI) runLayoutPath(ctx context.Context) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	printKeyValue("Backend", eng.cfg.Storage.Backend)
	printKeyValue("Location", eng.backend.Location())
	return nil
}
