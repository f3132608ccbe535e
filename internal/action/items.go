package action

import (
	"fmt"
	"strings"

	"packlist/internal/model"
	"packlist/internal/preset"
	"packlist/internal/store"
)

// ReasonEmptyName is the CreateItem validation failure reason.
const ReasonEmptyName = "EMPTY_NAME"

type CreateResult struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type CreateItemInput struct {
	Name  string
	Emoji string
	Cat   string
}

// ToggleDone flips the done flag for the item with the matching id. Unknown
// ids are a no-op: no state change, no write, no feedback.
func (a *Actions) ToggleDone(id string) {
	res := a.commitData(func(d *model.Document) bool {
		it, ok := d.FindItem(id)
		if !ok {
			return false
		}
		it.Done = !it.Done
		return true
	})
	if !res.changed {
		return
	}
	if res.next.Settings.Sound {
		a.fx.Tick()
	}
	a.fx.Haptic()
}

// DeleteItem removes the item with the matching id (no-op if not found).
func (a *Actions) DeleteItem(id string) {
	name := ""
	res := a.commitData(func(d *model.Document) bool {
		for i := range d.Items {
			if d.Items[i].ID == id {
				name = d.Items[i].Name
				d.Items = append(d.Items[:i], d.Items[i+1:]...)
				return true
			}
		}
		return false
	})
	if res.changed {
		a.fx.Toast(fmt.Sprintf("Removed %q", name))
	}
}

// ResetChecks marks every item not-done.
func (a *Actions) ResetChecks() {
	a.commitData(func(d *model.Document) bool {
		for i := range d.Items {
			d.Items[i].Done = false
		}
		return true
	})
}

// SetAll marks every item with the given done value.
func (a *Actions) SetAll(done bool) {
	a.commitData(func(d *model.Document) bool {
		for i := range d.Items {
			d.Items[i].Done = done
		}
		return true
	})
}

// CreateItem validates, then prepends a new not-done item with a freshly
// generated unique id. An empty name (after trimming) mutates nothing and
// reports EMPTY_NAME alongside a feedback toast.
func (a *Actions) CreateItem(in CreateItemInput) CreateResult {
	name := capRunes(strings.TrimSpace(in.Name), model.MaxNameLen)
	if name == "" {
		a.fx.Toast("Give the item a name first")
		return CreateResult{OK: false, Reason: ReasonEmptyName}
	}
	emoji := capRunes(strings.TrimSpace(in.Emoji), model.MaxEmojiLen)
	cat := strings.TrimSpace(in.Cat)
	if cat == "" {
		cat = preset.FallbackCategoryID
	}

	id := ""
	res := a.commitData(func(d *model.Document) bool {
		target := cat
		if !d.HasCategory(target) {
			if d.HasCategory(preset.FallbackCategoryID) {
				target = preset.FallbackCategoryID
			} else {
				target = d.Cats[0].ID
			}
		}
		id = store.NewItemID(d)
		d.Items = append([]model.Item{{
			ID:    id,
			Cat:   target,
			Name:  name,
			Emoji: emoji,
		}}, d.Items...)
		return true
	})
	if !res.changed {
		// No document loaded; nothing to mutate.
		return CreateResult{OK: false}
	}
	return CreateResult{OK: true, ID: id}
}
