package store

import (
	"sync"
	"time"

	"packlist/internal/model"
)

// DebounceWindow is the quiescence period after the last mutation before a
// persistence write is issued. Rapid bursts of toggles coalesce into one
// write; the persisted copy may lag the in-memory copy by up to this long.
const DebounceWindow = 220 * time.Millisecond

// Writer debounces record writes. The in-memory state store is the source of
// truth for rendering; persistence exists only to survive process restarts,
// so a failed write is dropped rather than surfaced.
type Writer struct {
	st     Store
	window time.Duration

	mu              sync.Mutex
	pendingSettings *model.Settings
	pendingData     *model.Document
	settingsTimer   *time.Timer
	dataTimer       *time.Timer
}

// NewWriter wraps st. window <= 0 selects DebounceWindow.
func NewWriter(st Store, window time.Duration) *Writer {
	if window <= 0 {
		window = DebounceWindow
	}
	return &Writer{st: st, window: window}
}

// SaveSettings schedules a settings write, resetting the quiescence timer.
func (w *Writer) SaveSettings(s model.Settings) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingSettings = &s
	if w.settingsTimer != nil {
		w.settingsTimer.Stop()
	}
	w.settingsTimer = time.AfterFunc(w.window, w.writeSettings)
}

// SaveData schedules a checklist write, resetting the quiescence timer.
// The document snapshot must not be mutated after handoff; the action layer
// only ever commits fresh clones.
func (w *Writer) SaveData(d *model.Document) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingData = d
	if w.dataTimer != nil {
		w.dataTimer.Stop()
	}
	w.dataTimer = time.AfterFunc(w.window, w.writeData)
}

func (w *Writer) writeSettings() {
	w.mu.Lock()
	p := w.pendingSettings
	w.pendingSettings = nil
	w.settingsTimer = nil
	w.mu.Unlock()
	if p != nil {
		_ = w.st.SaveSettings(*p)
	}
}

func (w *Writer) writeData() {
	w.mu.Lock()
	p := w.pendingData
	w.pendingData = nil
	w.dataTimer = nil
	w.mu.Unlock()
	if p != nil {
		_ = w.st.SaveData(p)
	}
}

// Flush writes any pending records immediately. Call before process exit.
func (w *Writer) Flush() {
	w.mu.Lock()
	if w.settingsTimer != nil {
		w.settingsTimer.Stop()
		w.settingsTimer = nil
	}
	if w.dataTimer != nil {
		w.dataTimer.Stop()
		w.dataTimer = nil
	}
	w.mu.Unlock()
	w.writeSettings()
	w.writeData()
}
