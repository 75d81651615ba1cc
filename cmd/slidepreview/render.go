package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidepreview/internal/htmlview"
	"github.com/alexisbeaulieu97/slidepreview/internal/render"
)

const defaultDocumentTitle = "Slide deck"

func newRenderCmd(root *rootFlags) *cobra.Command {
	var flags deckFlags
	var out, title string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the deck as a standalone HTML file",
		Long: `Render every slide with the configured theme and overrides, fully
revealed, into one HTML document. Without --out the document goes to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), root, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.loadDeck(cmd.Context()); err != nil {
				return err
			}

			cfg := app.Store.Snapshot()
			slides := app.Holder.Slides()
			trees := make([]render.Tree, 0, len(slides))
			for _, s := range slides {
				trees = append(trees, render.Render(s, cfg, true))
			}

			data, err := renderBytes(func(w io.Writer) error {
				return htmlview.Document(w, trees, title)
			})
			if err != nil {
				return newCommandError("render deck", app.Source.String(), err,
					"Run with --verbose for details.")
			}
			if err := writeOutput(cmd.OutOrStdout(), out, data); err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d slides to %s\n", len(trees), out)
			}
			return nil
		},
	}

	bindDeckFlags(&flags, cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&title, "title", defaultDocumentTitle, "Document title")

	return cmd
}
