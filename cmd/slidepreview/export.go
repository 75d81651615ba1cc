package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidepreview/internal/script"
	"github.com/alexisbeaulieu97/slidepreview/pkg/diff"
)

func newExportCmd(root *rootFlags) *cobra.Command {
	var flags deckFlags
	var out, against string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the Google Apps Script for the deck",
		Long: `Generate a script that rebuilds the deck in Google Slides with the
current theme and overrides. With --against the output is compared to a
previously exported script and only the differences are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), root, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.loadDeck(cmd.Context()); err != nil {
				return err
			}

			code, err := script.Generate(app.Holder.Slides(), app.Store.Snapshot())
			if err != nil {
				return newCommandError("generate script", app.Source.String(), err,
					"Check the style overrides in the settings file.")
			}

			if against != "" {
				before, err := os.ReadFile(against)
				if err != nil {
					return newCommandError("read previous script", against, err,
						"Pass the path of a script written by an earlier export.")
				}
				d := diff.Unified(before, []byte(code), against, "generated")
				if d == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "No changes")
					return nil
				}
				return writeOutput(cmd.OutOrStdout(), out, []byte(d))
			}

			return writeOutput(cmd.OutOrStdout(), out, []byte(code))
		},
	}

	bindDeckFlags(&flags, cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&against, "against", "", "Show a diff against a previously exported script")

	return cmd
}
