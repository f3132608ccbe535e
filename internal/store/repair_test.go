package store

import (
	"reflect"
	"strings"
	"testing"

	"packlist/internal/model"
	"packlist/internal/preset"
)

func TestMaterializeFreshIDs(t *testing.T) {
	d := Materialize("beach")
	if d.Version != model.SchemaVersion {
		t.Fatalf("expected version %d; got %d", model.SchemaVersion, d.Version)
	}
	if d.Mode != "beach" {
		t.Fatalf("expected mode beach; got %q", d.Mode)
	}
	seen := map[string]bool{}
	for _, it := range d.Items {
		if it.ID == "" {
			t.Fatalf("item without id: %+v", it)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
		if !d.HasCategory(it.Cat) {
			t.Fatalf("item %q references unknown category %q", it.ID, it.Cat)
		}
		if it.Done {
			t.Fatalf("materialized item %q starts done", it.ID)
		}
	}

	// Two materializations never share ids.
	d2 := Materialize("beach")
	for _, it := range d2.Items {
		if seen[it.ID] {
			t.Fatalf("repeated materialization reused id %q", it.ID)
		}
	}
}

func TestMaterializeUnknownModeFallsBack(t *testing.T) {
	d := Materialize("not-a-mode")
	if d.Mode != preset.Default {
		t.Fatalf("expected default mode; got %q", d.Mode)
	}
}

func TestRepairDocumentCorruptJSON(t *testing.T) {
	d := RepairDocument([]byte("{not json"), "beach")
	want := preset.Lookup("beach")
	if d.Mode != "beach" {
		t.Fatalf("expected beach; got %q", d.Mode)
	}
	if !reflect.DeepEqual(d.Cats, want.Cats) {
		t.Fatalf("expected preset categories; got %+v", d.Cats)
	}
	if len(d.Items) != len(want.Items) {
		t.Fatalf("expected %d items; got %d", len(want.Items), len(d.Items))
	}
	for i, it := range d.Items {
		if it.Name != want.Items[i].Name || it.Cat != want.Items[i].Cat {
			t.Fatalf("item %d does not match template: %+v", i, it)
		}
	}
}

func TestRepairDocumentNotAnObject(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"hello"`, `42`, `null`, ``} {
		d := RepairDocument([]byte(raw), "city")
		if d == nil || d.Mode != "city" || len(d.Cats) == 0 {
			t.Fatalf("raw %q: expected fresh city document; got %+v", raw, d)
		}
	}
}

func TestRepairDocumentStructuralDiscard(t *testing.T) {
	// Mostly-fine documents missing one structural piece are fully
	// regenerated, never partially repaired.
	cases := []string{
		`{"mode":"beach","cats":{},"items":[]}`,
		`{"mode":"beach","cats":[{"id":"a","name":"A"}],"items":"nope"}`,
		`{"mode":"beach","cats":[],"items":[]}`,
		`{"mode":"beach","cats":[7,8],"items":[]}`,
	}
	want := preset.Lookup("beach")
	for _, raw := range cases {
		d := RepairDocument([]byte(raw), "weekend")
		if d.Mode != "beach" {
			t.Fatalf("raw %s: expected mode beach kept; got %q", raw, d.Mode)
		}
		if !reflect.DeepEqual(d.Cats, want.Cats) {
			t.Fatalf("raw %s: expected regenerated beach categories", raw)
		}
	}
}

func TestRepairDocumentRepointsDanglingCategories(t *testing.T) {
	raw := `{
		"mode":"weekend",
		"cats":[{"id":"docs","name":"Documents"},{"id":"misc","name":"Misc"}],
		"items":[
			{"id":"item-1","cat":"docs","name":"Passport"},
			{"id":"item-2","cat":"ghost","name":"Orphan"}
		]
	}`
	d := RepairDocument([]byte(raw), "weekend")
	if got := d.Items[1].Cat; got != "misc" {
		t.Fatalf("expected orphan re-pointed to misc; got %q", got)
	}
	if got := d.Items[0].Cat; got != "docs" {
		t.Fatalf("valid reference must be preserved; got %q", got)
	}
}

func TestRepairDocumentRepointsToFirstCategoryWithoutMisc(t *testing.T) {
	raw := `{
		"mode":"weekend",
		"cats":[{"id":"alpha","name":"Alpha"},{"id":"beta","name":"Beta"}],
		"items":[{"id":"item-1","cat":"ghost","name":"Orphan"}]
	}`
	d := RepairDocument([]byte(raw), "weekend")
	if got := d.Items[0].Cat; got != "alpha" {
		t.Fatalf("expected first category fallback; got %q", got)
	}
}

func TestRepairDocumentDedupesItemIDs(t *testing.T) {
	raw := `{
		"mode":"weekend",
		"cats":[{"id":"misc","name":"Misc"}],
		"items":[
			{"id":"item-1","cat":"misc","name":"A"},
			{"id":"item-1","cat":"misc","name":"B"},
			{"id":"","cat":"misc","name":"C"},
			{"cat":"misc","name":"D"}
		]
	}`
	d := RepairDocument([]byte(raw), "weekend")
	if len(d.Items) != 4 {
		t.Fatalf("expected 4 items; got %d", len(d.Items))
	}
	seen := map[string]bool{}
	for _, it := range d.Items {
		if it.ID == "" {
			t.Fatalf("item %q kept an empty id", it.Name)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate id %q survived repair", it.ID)
		}
		seen[it.ID] = true
	}
	if d.Items[0].ID != "item-1" {
		t.Fatalf("first occurrence should keep its id; got %q", d.Items[0].ID)
	}
}

func TestRepairDocumentCoercesFields(t *testing.T) {
	long := strings.Repeat("x", 100)
	raw := `{
		"mode":"weekend",
		"cats":[{"id":7,"name":"  Docs  ","emoji":"🪪🧳🎒👛🎫"}],
		"items":[{"id":true,"cat":7,"name":"` + long + `","done":1,"emoji":null}],
		"__completedOnce":1
	}`
	d := RepairDocument([]byte(raw), "weekend")
	if d.Cats[0].ID != "7" {
		t.Fatalf("numeric category id should coerce to string; got %q", d.Cats[0].ID)
	}
	if d.Cats[0].Name != "Docs" {
		t.Fatalf("name should be trimmed; got %q", d.Cats[0].Name)
	}
	if n := len([]rune(d.Cats[0].Emoji)); n > model.MaxEmojiLen {
		t.Fatalf("emoji should be truncated to %d runes; got %d", model.MaxEmojiLen, n)
	}
	it := d.Items[0]
	if !it.Done {
		t.Fatalf("done:1 should coerce true")
	}
	if n := len([]rune(it.Name)); n != model.MaxNameLen {
		t.Fatalf("name should cap at %d runes; got %d", model.MaxNameLen, n)
	}
	if it.Cat != "7" {
		t.Fatalf("item cat should follow coerced category id; got %q", it.Cat)
	}
	if !d.CompletedOnce {
		t.Fatalf("__completedOnce:1 should coerce true")
	}
}

func TestRepairIdempotent(t *testing.T) {
	raw := `{
		"mode":"MOUNTAIN",
		"cats":[{"id":" gear ","name":""},{"id":"misc","name":"Misc"}],
		"items":[
			{"id":"item-1","cat":"gear","name":"  Boots "},
			{"id":"item-1","cat":"ghost","name":""}
		]
	}`
	once := RepairDocument([]byte(raw), "weekend")
	twice := Normalize(once, "weekend")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repair is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeNilDocument(t *testing.T) {
	d := Normalize(nil, "city")
	if d == nil || d.Mode != "city" {
		t.Fatalf("expected fresh city document; got %+v", d)
	}
}

func TestRepairSettings(t *testing.T) {
	def := model.DefaultSettings()

	if got := RepairSettings(nil); got != def {
		t.Fatalf("nil bytes: expected defaults; got %+v", got)
	}
	if got := RepairSettings([]byte("{oops")); got != def {
		t.Fatalf("corrupt bytes: expected defaults; got %+v", got)
	}
	if got := RepairSettings([]byte(`[1,2]`)); got != def {
		t.Fatalf("non-object: expected defaults; got %+v", got)
	}

	got := RepairSettings([]byte(`{"tripMode":"beach","motion":0,"sound":"yes","streak":123456}`))
	if got.TripMode != "beach" {
		t.Fatalf("expected beach; got %q", got.TripMode)
	}
	if got.Motion {
		t.Fatalf("motion:0 should coerce false")
	}
	if !got.Sound {
		t.Fatalf("sound:\"yes\" should coerce true")
	}
	if got.Streak != model.MaxStreak {
		t.Fatalf("streak should clamp to %d; got %d", model.MaxStreak, got.Streak)
	}

	got = RepairSettings([]byte(`{"tripMode":"??","streak":-4}`))
	if got.TripMode != preset.Default {
		t.Fatalf("unknown mode should fall back; got %q", got.TripMode)
	}
	if got.Streak != 0 {
		t.Fatalf("negative streak should clamp to 0; got %d", got.Streak)
	}

	// Missing fields keep their defaults.
	got = RepairSettings([]byte(`{}`))
	if got != def {
		t.Fatalf("empty object: expected defaults; got %+v", got)
	}
}
