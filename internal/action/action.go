// Package action is the only sanctioned way to mutate the checklist document
// and settings. Every operation funnels through one commit helper that clones
// the document, applies the mutation, runs the completion transition and
// schedules the debounced persistence write.
package action

import (
	"fmt"

	"packlist/internal/effects"
	"packlist/internal/model"
	"packlist/internal/state"
	"packlist/internal/store"
)

type Actions struct {
	store  *state.Store
	writer *store.Writer
	fx     *effects.Context
	share  func(text string) error
}

// New wires the action layer. fx may be nil (a no-op effects context is
// substituted); share may be nil (ShareList then goes straight to the copy
// fallback).
func New(st *state.Store, w *store.Writer, fx *effects.Context, share func(string) error) *Actions {
	if fx == nil {
		fx = effects.New(effects.Options{})
	}
	return &Actions{store: st, writer: w, fx: fx, share: share}
}

// Store exposes the state store for read-only consumers (renderer).
func (a *Actions) Store() *state.Store {
	return a.store
}

// Progress reports the current done/total computation.
func (a *Actions) Progress() model.Progress {
	return a.store.Get().Data.Progress()
}

// Flush forces any pending debounced writes out. Call before process exit.
func (a *Actions) Flush() {
	if a.writer != nil {
		a.writer.Flush()
	}
}

type commitResult struct {
	next      *state.State
	changed   bool
	completed bool
}

// commitData clones the document, applies mutate, and commits. mutate
// returning false aborts the whole operation with no state change and no
// write. Any committed mutation clears the completion latch first; the
// completion transition below may immediately re-set it.
//
// Completion is a level-triggered edge detector: all items done with the
// latch clear sets the latch and increments the streak exactly once; the
// latch re-arms whenever the list stops being fully done. This is the single
// authoritative place that state machine lives.
func (a *Actions) commitData(mutate func(d *model.Document) bool) commitResult {
	res := commitResult{}
	res.next = a.store.Update(func(prev *state.State) *state.State {
		res.changed = false
		res.completed = false
		if prev.Data == nil {
			return prev
		}
		d := prev.Data.Clone()
		if !mutate(d) {
			return prev
		}
		d.CompletedOnce = false

		ns := *prev
		if p := d.Progress(); p.Completed {
			d.CompletedOnce = true
			ns.Settings.Streak = clampStreak(ns.Settings.Streak + 1)
			res.completed = true
		}
		if ns.Selection.Cat != "" && !d.HasCategory(ns.Selection.Cat) {
			ns.Selection = state.Selection{}
		}
		ns.Data = d
		res.changed = true
		return &ns
	})

	if !res.changed {
		return res
	}
	if a.writer != nil {
		a.writer.SaveData(res.next.Data)
		if res.completed {
			a.writer.SaveSettings(res.next.Settings)
		}
	}
	if res.completed {
		if res.next.Settings.Motion {
			a.fx.Confetti()
		}
		a.fx.Toast(fmt.Sprintf("All packed! Streak: %d 🔥", res.next.Settings.Streak))
	}
	return res
}

// commitSettings commits a settings-only change and schedules its write.
// An update that leaves settings unchanged commits and writes nothing.
func (a *Actions) commitSettings(mutate func(s *model.Settings)) *state.State {
	changed := false
	next := a.store.Update(func(prev *state.State) *state.State {
		changed = false
		ns := *prev
		mutate(&ns.Settings)
		ns.Settings.Streak = clampStreak(ns.Settings.Streak)
		if ns.Settings == prev.Settings {
			return prev
		}
		changed = true
		return &ns
	})
	if changed && a.writer != nil {
		a.writer.SaveSettings(next.Settings)
	}
	return next
}

func clampStreak(n int) int {
	if n < 0 {
		return 0
	}
	if n > model.MaxStreak {
		return model.MaxStreak
	}
	return n
}

func capRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
