package store

import (
	"context"
	"encoding/json"
	"fmt"

	"packlist/internal/model"
	"packlist/internal/preset"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Record  string           `json:"record,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// Doctor inspects the raw persisted records without repairing them. Every
// error-level issue here is something the load path would silently resolve
// by regeneration; doctor exists so that resolution is visible on demand.
func (s Store) Doctor() DoctorReport {
	ctx := context.Background()
	var issues []DoctorIssue

	if raw, err := s.readRecord(ctx, recordSettings); err != nil {
		issues = append(issues, DoctorIssue{
			Level: DoctorIssueLevelError, Code: "storage_read_failed",
			Message: err.Error(), Record: recordSettings,
		})
	} else if len(raw) > 0 {
		issues = append(issues, doctorSettings(raw)...)
	}

	if raw, err := s.readRecord(ctx, recordChecklist); err != nil {
		issues = append(issues, DoctorIssue{
			Level: DoctorIssueLevelError, Code: "storage_read_failed",
			Message: err.Error(), Record: recordChecklist,
		})
	} else if len(raw) > 0 {
		issues = append(issues, doctorChecklist(raw)...)
	}

	return DoctorReport{Issues: issuesOrEmpty(issues)}
}

func doctorSettings(raw []byte) []DoctorIssue {
	var issues []DoctorIssue
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return []DoctorIssue{{
			Level: DoctorIssueLevelError, Code: "settings_invalid_json",
			Message: err.Error(), Record: recordSettings,
		}}
	}
	if v := coerceString(m["tripMode"]); !preset.Known(v) {
		issues = append(issues, DoctorIssue{
			Level: DoctorIssueLevelWarn, Code: "settings_unknown_mode",
			Message: fmt.Sprintf("tripMode %q is not a known preset; will fall back to %q", v, preset.Default),
			Record:  recordSettings,
		})
	}
	if n := coerceInt(m["streak"]); n < 0 || n > model.MaxStreak {
		issues = append(issues, DoctorIssue{
			Level: DoctorIssueLevelWarn, Code: "settings_streak_out_of_range",
			Message: fmt.Sprintf("streak %d outside [0, %d]; will be clamped", n, model.MaxStreak),
			Record:  recordSettings,
		})
	}
	return issues
}

func doctorChecklist(raw []byte) []DoctorIssue {
	var issues []DoctorIssue
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return []DoctorIssue{{
			Level: DoctorIssueLevelError, Code: "checklist_invalid_json",
			Message: err.Error(), Record: recordChecklist,
		}}
	}

	if v := coerceString(m["mode"]); !preset.Known(v) {
		issues = append(issues, DoctorIssue{
			Level: DoctorIssueLevelWarn, Code: "checklist_unknown_mode",
			Message: fmt.Sprintf("mode %q is not a known preset; will fall back to %q", v, preset.Default),
			Record:  recordChecklist,
		})
	}

	rawCats, catsOK := m["cats"].([]any)
	rawItems, itemsOK := m["items"].([]any)
	if !catsOK || !itemsOK {
		return append(issues, DoctorIssue{
			Level: DoctorIssueLevelError, Code: "checklist_structure_invalid",
			Message: "cats/items are not arrays; the document will be regenerated from its preset on next load",
			Record:  recordChecklist,
		})
	}

	cats := coerceCats(rawCats)
	if len(cats) == 0 {
		return append(issues, DoctorIssue{
			Level: DoctorIssueLevelError, Code: "checklist_no_categories",
			Message: "no usable categories; the document will be regenerated from its preset on next load",
			Record:  recordChecklist,
		})
	}

	known := make(map[string]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}
	seen := map[string]int{}
	for _, it := range coerceItems(rawItems) {
		if !known[it.Cat] {
			issues = append(issues, DoctorIssue{
				Level: DoctorIssueLevelWarn, Code: "item_dangling_category",
				Message: fmt.Sprintf("item %q references unknown category %q; will be re-pointed", it.ID, it.Cat),
				Record:  recordChecklist,
			})
		}
		seen[it.ID]++
	}
	for id, n := range seen {
		if id == "" {
			issues = append(issues, DoctorIssue{
				Level: DoctorIssueLevelWarn, Code: "item_missing_id",
				Message: fmt.Sprintf("%d item(s) without an id; fresh ids will be generated", n),
				Record:  recordChecklist,
			})
			continue
		}
		if n > 1 {
			issues = append(issues, DoctorIssue{
				Level: DoctorIssueLevelWarn, Code: "item_duplicate_id",
				Message: fmt.Sprintf("item id %q appears %d times; duplicates will be re-identified", id, n),
				Record:  recordChecklist,
			})
		}
	}
	return issues
}

func issuesOrEmpty(issues []DoctorIssue) []DoctorIssue {
	if issues == nil {
		return []DoctorIssue{}
	}
	return issues
}
