package main

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/slidepreview/internal/tui/preview"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var flags deckFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the deck in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return newCommandError("start preview", "interactive terminal required", errNotTerminal,
					"Use 'slidepreview render --out deck.html' for a static snapshot.")
			}

			// The alternate screen owns the terminal, so logs go to the
			// configured file or nowhere.
			app, err := newAppContext(cmd.Context(), root, flags, io.Discard)
			if err != nil {
				return err
			}
			defer app.Close()
			if app.Source == nil {
				return newCommandError("start preview", "no deck configured", errNoDeck,
					"Pass --deck FILE or --service URL, or set deck.path in the settings file.")
			}

			m := preview.NewModel(preview.Options{
				Source:  app.Source,
				Holder:  app.Holder,
				Store:   app.Store,
				Catalog: app.Catalog,
				Logger:  app.Log,
			})
			program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			return nil
		},
	}

	bindDeckFlags(&flags, cmd.Flags())

	return cmd
}
