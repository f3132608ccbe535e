package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"packlist/internal/model"
	"packlist/internal/preset"
)

// Materialize builds a fresh document from the preset catalog for mode, with
// freshly generated item ids. Unknown modes fall back to the default preset.
func Materialize(mode string) *model.Document {
	mode = preset.Normalize(mode)
	p := preset.Lookup(mode)
	d := &model.Document{
		Version: model.SchemaVersion,
		Mode:    mode,
		Cats:    p.Cats,
		Items:   make([]model.Item, 0, len(p.Items)),
	}
	for _, t := range p.Items {
		d.Items = append(d.Items, model.Item{
			ID:    NewItemID(d),
			Cat:   t.Cat,
			Name:  t.Name,
			Emoji: t.Emoji,
		})
	}
	return d
}

// RepairDocument normalizes raw persisted bytes into a well-formed document.
// Anything that is not a JSON object with usable cats/items arrays is
// discarded entirely and regenerated from the preset for mode: a document
// missing one structural piece is not partially repaired.
func RepairDocument(raw []byte, mode string) *model.Document {
	mode = preset.Normalize(mode)
	if len(bytes.TrimSpace(raw)) == 0 {
		return Materialize(mode)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return Materialize(mode)
	}

	if v := coerceString(m["mode"]); strings.TrimSpace(v) != "" {
		mode = preset.Normalize(v)
	}

	rawCats, ok := m["cats"].([]any)
	if !ok {
		return Materialize(mode)
	}
	rawItems, ok := m["items"].([]any)
	if !ok {
		return Materialize(mode)
	}

	d := &model.Document{
		Version:       model.SchemaVersion,
		Mode:          mode,
		Cats:          coerceCats(rawCats),
		Items:         coerceItems(rawItems),
		CompletedOnce: truthy(m["__completedOnce"]),
	}
	return Normalize(d, mode)
}

// Normalize enforces the document invariants on a typed document: schema
// version stamp, known mode, non-empty categories (else full regeneration),
// trimmed/capped fields, category referential integrity and item id
// uniqueness. It is idempotent and runs on both load and save.
func Normalize(d *model.Document, fallbackMode string) *model.Document {
	if d == nil {
		return Materialize(fallbackMode)
	}
	mode := d.Mode
	if strings.TrimSpace(mode) == "" {
		mode = fallbackMode
	}
	mode = preset.Normalize(mode)
	if len(d.Cats) == 0 {
		return Materialize(mode)
	}

	out := d.Clone()
	out.Version = model.SchemaVersion
	out.Mode = mode

	for i := range out.Cats {
		c := &out.Cats[i]
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			c.ID = preset.FallbackCategoryID
		}
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			c.Name = "Category"
		}
		c.Emoji = capRunes(strings.TrimSpace(c.Emoji), model.MaxEmojiLen)
	}

	fallbackCat := fallbackCategory(out)
	seen := make(map[string]bool, len(out.Items))
	for i := range out.Items {
		it := &out.Items[i]
		it.Name = capRunes(strings.TrimSpace(it.Name), model.MaxNameLen)
		if it.Name == "" {
			it.Name = "Item"
		}
		it.Emoji = capRunes(strings.TrimSpace(it.Emoji), model.MaxEmojiLen)
		it.Cat = strings.TrimSpace(it.Cat)
		if !out.HasCategory(it.Cat) {
			it.Cat = fallbackCat
		}
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" || seen[it.ID] {
			it.ID = NewItemID(out)
		}
		seen[it.ID] = true
	}
	return out
}

// RepairSettings sanitizes raw persisted bytes over a full default-settings
// template: missing fields keep their defaults, present fields are coerced
// and clamped to their declared types. It never fails.
func RepairSettings(raw []byte) model.Settings {
	s := model.DefaultSettings()
	if len(bytes.TrimSpace(raw)) == 0 {
		return s
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return s
	}
	s.TripMode = preset.Normalize(coerceString(m["tripMode"]))
	if v, ok := m["motion"]; ok {
		s.Motion = truthy(v)
	}
	if v, ok := m["sound"]; ok {
		s.Sound = truthy(v)
	}
	if v, ok := m["streak"]; ok {
		s.Streak = clampStreak(coerceInt(v))
	}
	return s
}

func sanitizeSettings(s model.Settings) model.Settings {
	s.TripMode = preset.Normalize(s.TripMode)
	s.Streak = clampStreak(s.Streak)
	return s
}

// fallbackCategory picks where dangling item references get re-pointed:
// the misc category when present, else the first category.
func fallbackCategory(d *model.Document) string {
	if d.HasCategory(preset.FallbackCategoryID) {
		return preset.FallbackCategoryID
	}
	return d.Cats[0].ID
}

func coerceCats(raw []any) []model.Category {
	out := make([]model.Category, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, model.Category{
			ID:    coerceString(m["id"]),
			Name:  coerceString(m["name"]),
			Emoji: coerceString(m["emoji"]),
		})
	}
	return out
}

func coerceItems(raw []any) []model.Item {
	out := make([]model.Item, 0, len(raw))
	for _, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, model.Item{
			ID:    coerceString(m["id"]),
			Cat:   coerceString(m["cat"]),
			Name:  coerceString(m["name"]),
			Emoji: coerceString(m["emoji"]),
			Done:  truthy(m["done"]),
		})
	}
	return out
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return ""
	}
}

func coerceInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

// truthy mirrors the loose boolean coercion the persisted records historically
// went through: null, false, 0 and "" are false, everything else is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
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
