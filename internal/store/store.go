// Package store persists the checklist document and settings as two
// independently keyed JSON records in a local SQLite database, and owns the
// repair pass that guarantees every document it hands out is structurally
// valid. Persistence is advisory: reads that fail for any reason degrade to
// defaults instead of erroring, so the app keeps functioning in memory.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"packlist/internal/model"
	"packlist/internal/preset"
)

const (
	dbFileName     = "packlist.sqlite"
	legacyFileName = "packlist.json"

	recordSettings  = "settings"
	recordChecklist = "checklist"
)

type Store struct {
	Dir string
}

// DefaultDir resolves the per-user data directory.
// PACKLIST_CONFIG_DIR overrides it (keeps unit tests from touching ~/.packlist).
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("PACKLIST_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".packlist"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) legacyPath() string {
	return filepath.Join(s.Dir, legacyFileName)
}

// LoadSettings reads the settings record and sanitizes it over a full
// default-settings template. It never fails: absent, unreadable or malformed
// bytes all degrade to defaults.
func (s Store) LoadSettings() model.Settings {
	raw, err := s.readRecord(context.Background(), recordSettings)
	if err != nil {
		return model.DefaultSettings()
	}
	return RepairSettings(raw)
}

// SaveSettings writes the settings record. The value is sanitized first so a
// programming error upstream can never persist an invalid record.
func (s Store) SaveSettings(st model.Settings) error {
	b, err := json.Marshal(sanitizeSettings(st))
	if err != nil {
		return err
	}
	return s.writeRecord(context.Background(), recordSettings, b)
}

// LoadData reads the checklist record and repairs it before it is trusted.
// On absence, unreadable storage or a parse failure it materializes a fresh
// document from the preset catalog for mode. It never fails.
func (s Store) LoadData(mode string) *model.Document {
	raw, err := s.readRecord(context.Background(), recordChecklist)
	if err != nil {
		return Materialize(mode)
	}
	return RepairDocument(raw, mode)
}

// SaveData writes the checklist record, repairing the document first so a
// structurally invalid document is never persisted.
func (s Store) SaveData(d *model.Document) error {
	d = Normalize(d, preset.Default)
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.writeRecord(context.Background(), recordChecklist, b)
}

// Wipe removes both persisted records. Best-effort: failures are swallowed,
// since the store simply reinitializes to defaults on the next load.
func (s Store) Wipe() {
	ctx := context.Background()
	_ = s.deleteRecord(ctx, recordSettings)
	_ = s.deleteRecord(ctx, recordChecklist)
	_ = os.Remove(s.legacyPath())
}

// legacyFile is the pre-SQLite single-file layout: both records in one JSON
// object. Imported once when the SQLite db is still empty.
type legacyFile struct {
	Settings json.RawMessage `json:"settings"`
	Data     json.RawMessage `json:"data"`
}

// importLegacy loads packlist.json if present and writes its records into
// the (empty) SQLite db. The legacy bytes go through the same repair pass as
// any other untrusted input.
func (s Store) importLegacy(ctx context.Context) error {
	b, err := os.ReadFile(s.legacyPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var lf legacyFile
	if err := json.Unmarshal(b, &lf); err != nil {
		// Corrupt legacy file: nothing worth importing.
		return nil
	}
	if len(lf.Settings) > 0 {
		st := RepairSettings(lf.Settings)
		if err := s.SaveSettings(st); err != nil {
			return err
		}
		if len(lf.Data) > 0 {
			d := RepairDocument(lf.Data, st.TripMode)
			if err := s.SaveData(d); err != nil {
				return err
			}
		}
		return nil
	}
	if len(lf.Data) > 0 {
		return s.SaveData(RepairDocument(lf.Data, preset.Default))
	}
	return nil
}
