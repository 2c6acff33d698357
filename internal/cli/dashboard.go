package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// dashboardCommand creates the dashboard command for the interactive TUI.
func (c *CLI) dashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive tile dashboard",
		Long: `Open the interactive tile dashboard.

Browse mode navigates tiles and flips chart-backed tiles with enter. Press 'e'
to enter edit mode, where tiles can be reordered (shift+arrows), resized (+/-),
added (a), removed (d), or snapped to a uniform span preset (1/2/3).

All changes are saved immediately; quitting never loses the arrangement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDashboard(cmd.Context())
		},
	}

	return cmd
}

// runDashboard loads the layout and hands control to the bubbletea program.
func (c *CLI) runDashboard(ctx context.Context) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	l := eng.store.Load(ctx)
	model := NewDashboardModel(eng.catalog, eng.store, eng.adapter, eng.geom, eng.cfg.Grid, eng.cfg.Site.Solar, l)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
