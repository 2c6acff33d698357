package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlandgraf/tiledeck/internal/api"
)

// serveCommand creates the serve command for the read-only HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout over a read-only HTTP API",
		Long: `Serve the layout over a read-only HTTP API.

Wall-mounted displays poll this endpoint to render the dashboard without a
local copy of the state. The API exposes the raw layout, spans resolved for a
given grid width, and the tile catalog. Mutations stay local to each display;
the server never accepts writes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8414", "listen address")

	return cmd
}

// runServe blocks serving HTTP until the context is canceled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}
	defer eng.Close()

	ctx = withLogger(ctx, c.Logger)
	srv := api.New(eng.store, eng.catalog, eng.geom, eng.cfg.Site.Solar, c.Logger)

	c.Logger.Info("Serving layout API", "addr", addr, "backend", eng.cfg.Storage.Backend)
	return srv.ListenAndServe(ctx, addr)
}
