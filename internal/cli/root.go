package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"packlist/internal/store"
	"packlist/internal/tui"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "packlist",
		Short:        "Local-first trip packing checklist (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive checklist
  packlist

  # Scriptable commands
  packlist list
  packlist add "Sunscreen" --cat toiletries --emoji 🧴
  packlist toggle item-abc123
  packlist progress
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "data directory (default: ~/.packlist)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "output format for scriptable commands (json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "pretty-print JSON output")

	cmd.AddCommand(
		newListCmd(app),
		newAddCmd(app),
		newToggleCmd(app),
		newAllCmd(app),
		newResetCmd(app),
		newDeleteCmd(app),
		newModeCmd(app),
		newProgressCmd(app),
		newShareCmd(app),
		newWipeCmd(app),
		newDoctorCmd(app),
	)
	return cmd
}

func (app *App) storeDir() (string, error) {
	if strings.TrimSpace(app.Dir) != "" {
		return app.Dir, nil
	}
	return store.DefaultDir()
}

func runTUI(app *App) error {
	dir, err := app.storeDir()
	if err != nil {
		return err
	}
	return tui.Run(store.Store{Dir: dir})
}
