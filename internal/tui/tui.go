package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"packlist/internal/action"
	"packlist/internal/effects"
	"packlist/internal/state"
	"packlist/internal/store"
)

// Run boots the full interactive app: load + repair the persisted records,
// wire the state store, debounced writer, effects context and action layer,
// and hand the whole thing to bubbletea. Pending writes flush on exit.
func Run(st store.Store) error {
	settings := st.LoadSettings()
	data := st.LoadData(settings.TripMode)
	stateStore := state.New(&state.State{Settings: settings, Data: data})

	// The effects context delivers feedback as tea messages. The program
	// pointer is filled in below; a nil program just drops the effect.
	var p *tea.Program
	send := func(msg tea.Msg) {
		if p != nil {
			p.Send(msg)
		}
	}
	fx := effects.New(effects.Options{
		Toast:    func(msg string) { send(toastMsg(msg)) },
		Tick:     func() { send(bellMsg{}) },
		Confetti: func() { send(confettiMsg{}) },
		CopyText: clipboard.WriteAll,
	})
	defer fx.Dispose()

	actions := action.New(stateStore, store.NewWriter(st, 0), fx, nil)
	defer actions.Flush()

	p = tea.NewProgram(newAppModel(stateStore, actions), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
