package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"packlist/internal/action"
	"packlist/internal/effects"
	"packlist/internal/format"
	"packlist/internal/state"
	"packlist/internal/store"
)

// session is one scriptable-command lifetime: load, act, flush, exit.
type session struct {
	st      store.Store
	actions *action.Actions
	fx      *effects.Context
}

func (app *App) open(cmd *cobra.Command) (*session, error) {
	dir, err := app.storeDir()
	if err != nil {
		return nil, err
	}
	st := store.Store{Dir: dir}

	settings := st.LoadSettings()
	data := st.LoadData(settings.TripMode)
	stateStore := state.New(&state.State{Settings: settings, Data: data})

	fx := effects.New(effects.Options{
		// Feedback toasts go to stderr so stdout stays scriptable.
		Toast:    func(msg string) { fmt.Fprintln(cmd.ErrOrStderr(), msg) },
		CopyText: clipboard.WriteAll,
	})
	return &session{
		st:      st,
		actions: action.New(stateStore, store.NewWriter(st, 0), fx, nil),
		fx:      fx,
	}, nil
}

// close flushes pending debounced writes and disposes the effects context.
func (s *session) close() {
	s.actions.Flush()
	s.fx.Dispose()
}

func (app *App) write(cmd *cobra.Command, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func (app *App) jsonOut() bool {
	return app.Format != ""
}
