package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"packlist/internal/store"
)

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the persisted records without repairing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.storeDir()
			if err != nil {
				return err
			}
			report := store.Store{Dir: dir}.Doctor()

			if app.jsonOut() {
				if err := app.write(cmd, report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if len(report.Issues) == 0 {
					fmt.Fprintln(out, "ok: no issues found")
				}
				for _, is := range report.Issues {
					fmt.Fprintf(out, "%-5s %-28s %s\n", is.Level, is.Code, is.Message)
				}
			}
			if report.HasErrors() {
				return fmt.Errorf("doctor found structural errors (load will regenerate affected records)")
			}
			return nil
		},
	}
}
