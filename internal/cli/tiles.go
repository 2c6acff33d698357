package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// tilesCommand creates the tiles command for browsing the tile catalog.
func (c *CLI) tilesCommand() *cobra.Command {
	var addable bool

	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "List the tile catalog",
		Long: `List the tile catalog, grouped by category.

With --addable, only tiles that could be added to the current dashboard are
shown: tiles already placed are hidden, and solar tiles are hidden unless the
site reports solar sensors in its config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runTiles(cmd.Context(), addable)
		},
	}

	cmd.Flags().BoolVar(&addable, "addable", false, "only show tiles not yet on the dashboard")

	return cmd
}

// runTiles prints the catalog as a table grouped by category.
func (c *CLI) runTiles(ctx context.Context, addableOnly bool) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	var placed map[string]bool
	if addableOnly {
		l := eng.store.Load(ctx)
		placed = map[string]bool{}
		for _, id := range l.TileIDs() {
			placed[id] = true
		}
	}

	rows := [][]string{}
	for _, g := range eng.catalog.ListByCategory() {
		for _, def := range g.Tiles {
			if addableOnly {
				if placed[def.ID] {
					continue
				}
				if def.RequiresSolar && !eng.cfg.Site.Solar {
					continue
				}
			}

			var flags []string
			if def.HasFlipTile {
				flags = append(flags, "chart")
			}
			if def.RequiresSolar {
				flags = append(flags, "solar")
			}
			rows = append(rows, []string{
				def.ID,
				def.Label,
				string(g.Category),
				strconv.Itoa(def.MinColSpan),
				strings.Join(flags, ", "),
			})
		}
	}

	if len(rows) == 0 {
		printInfo("All available tiles are already on the dashboard")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tile", "Label", "Category", "Min", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleValue
			case 2, 4:
				return StyleDim
			default:
				return lipgloss.NewStyle()
			}
		})

	printNewline()
	fmt.Println(t.Render())
	printDetail("%d tiles", len(rows))
	return nil
}
