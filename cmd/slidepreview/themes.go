package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemesCmd(root *rootFlags) *cobra.Command {
	var flags deckFlags

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), root, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			active := app.Store.Theme()
			for _, name := range app.Catalog.Sorted() {
				mark := " "
				if name == active {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme to mark as active")

	return cmd
}
