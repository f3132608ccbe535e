package action

import "packlist/internal/format"

type ShareResult struct {
	OK       bool `json:"ok"`
	Fallback bool `json:"fallback,omitempty"`
}

// ShareList derives the text summary of the current document and hands it to
// the share capability, falling back to copy-to-clipboard when sharing is
// unavailable or fails. Read-only: never mutates state.
func (a *Actions) ShareList() ShareResult {
	d := a.store.Get().Data
	if d == nil {
		return ShareResult{OK: false}
	}
	text := format.Summary(d)

	if a.share != nil {
		if err := a.share(text); err == nil {
			return ShareResult{OK: true}
		}
	}
	if err := a.fx.CopyText(text); err == nil {
		a.fx.Toast("List copied to clipboard")
		return ShareResult{OK: true, Fallback: true}
	}
	a.fx.Toast("Sharing isn't available here")
	return ShareResult{OK: false}
}
