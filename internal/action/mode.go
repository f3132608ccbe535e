package action

import (
	"fmt"

	"packlist/internal/model"
	"packlist/internal/preset"
	"packlist/internal/state"
	"packlist/internal/store"
)

// ChangeMode switches the trip mode and replaces the entire document with a
// freshly materialized preset. This intentionally discards the previous
// document's item states: switching trip mode is a hard reset of checklist
// progress, not a merge.
func (a *Actions) ChangeMode(mode string) {
	mode = preset.Normalize(mode)
	next := a.store.Update(func(prev *state.State) *state.State {
		ns := *prev
		ns.Settings.TripMode = mode
		ns.Data = store.Materialize(mode)
		ns.Selection = state.Selection{}
		return &ns
	})
	if a.writer != nil {
		a.writer.SaveSettings(next.Settings)
		a.writer.SaveData(next.Data)
	}
	a.fx.Toast(fmt.Sprintf("Switched to %s", preset.Lookup(mode).Label))
}

// WipeAll resets settings to hard defaults and replaces the document with a
// fresh default-mode preset. The store is never torn down; wipe means
// "replace with defaults".
func (a *Actions) WipeAll() {
	next := a.store.Update(func(prev *state.State) *state.State {
		return &state.State{
			Settings: model.DefaultSettings(),
			Data:     store.Materialize(preset.Default),
		}
	})
	if a.writer != nil {
		a.writer.SaveSettings(next.Settings)
		a.writer.SaveData(next.Data)
	}
	a.fx.Toast("Everything reset")
}

// SetMotion toggles animation/confetti effects.
func (a *Actions) SetMotion(on bool) {
	a.commitSettings(func(s *model.Settings) { s.Motion = on })
}

// SetSound toggles tick-sound feedback.
func (a *Actions) SetSound(on bool) {
	a.commitSettings(func(s *model.Settings) { s.Sound = on })
}

// SelectCategory sets the renderer's category filter ("" = all). An unknown
// category clears the filter.
func (a *Actions) SelectCategory(cat string) {
	a.store.Update(func(prev *state.State) *state.State {
		if cat != "" && !prev.Data.HasCategory(cat) {
			cat = ""
		}
		if prev.Selection.Cat == cat {
			return prev
		}
		ns := *prev
		ns.Selection = state.Selection{Cat: cat}
		return &ns
	})
}
