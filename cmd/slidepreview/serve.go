package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidepreview/internal/server"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var flags deckFlags
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser editor and live preview",
		Long: `Serve the editing surface: theme and color controls on one side, the
live slide preview and generated script on the other. Style changes are
pushed to every open page over a websocket.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newAppContext(ctx, root, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			// A failed load is shown on the page; the editor still starts.
			if app.Source != nil {
				if err := app.loadDeck(ctx); err != nil {
					app.Log.Warnw("deck not loaded", "source", app.Source.String(), "error", err.Error())
				}
			}

			if addr == "" {
				addr = app.Config.Server.Addr()
			}
			srv := server.New(app.Store, app.Catalog, app.Holder, app.Log)
			fmt.Fprintf(cmd.OutOrStdout(), "Editor available at http://%s\n", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	bindDeckFlags(&flags, cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from settings, 127.0.0.1:8080)")

	return cmd
}
