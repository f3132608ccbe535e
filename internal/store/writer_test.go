package store

import (
	"testing"
	"time"

	"packlist/internal/model"
)

func TestWriterDebouncesBursts(t *testing.T) {
	st := testStore(t)
	w := NewWriter(st, 40*time.Millisecond)

	for i := 1; i <= 5; i++ {
		s := model.DefaultSettings()
		s.Streak = i
		w.SaveSettings(s)
	}

	// Still inside the quiescence window: nothing persisted yet.
	if got := st.LoadSettings(); got.Streak != 0 {
		t.Fatalf("write fired early: %+v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if got := st.LoadSettings(); got.Streak == 5 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("debounced write never landed; settings: %+v", st.LoadSettings())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWriterFlush(t *testing.T) {
	st := testStore(t)
	w := NewWriter(st, time.Hour)

	s := model.DefaultSettings()
	s.TripMode = "abroad"
	w.SaveSettings(s)
	d := Materialize("abroad")
	w.SaveData(d)

	w.Flush()

	if got := st.LoadSettings(); got.TripMode != "abroad" {
		t.Fatalf("settings not flushed: %+v", got)
	}
	if got := st.LoadData("abroad"); got.Mode != "abroad" || len(got.Items) == 0 {
		t.Fatalf("document not flushed: %+v", got)
	}
}

func TestWriterFlushIdempotent(t *testing.T) {
	st := testStore(t)
	w := NewWriter(st, time.Hour)
	w.Flush()
	w.Flush()
	if got := st.LoadSettings(); got != model.DefaultSettings() {
		t.Fatalf("flush with nothing pending wrote something: %+v", got)
	}
}
