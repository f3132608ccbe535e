package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"packlist/internal/model"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal output: %v\nstdout:\n%s", err, raw)
	}
	return v
}

func TestProgressFreshStore(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "progress"})
	if err != nil {
		t.Fatalf("progress: %v\nstderr:\n%s", err, errOut)
	}
	p := mustJSON[model.Progress](t, out)
	if p.Done != 0 || p.Total != 9 || p.Pct != 0 || p.Completed {
		t.Fatalf("fresh progress: %+v", p)
	}
}

func TestAddToggleListRoundtrip(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "add", "Sunscreen", "--cat", "toiletries", "--emoji", "🧴"})
	if err != nil {
		t.Fatalf("add: %v\nstderr:\n%s", err, errOut)
	}
	res := mustJSON[struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}](t, out)
	if !res.OK || res.ID == "" {
		t.Fatalf("add result: %+v\nstdout:\n%s", res, out)
	}

	if _, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "toggle", res.ID}); err != nil {
		t.Fatalf("toggle: %v\nstderr:\n%s", err, errOut)
	}

	out, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "list"})
	if err != nil {
		t.Fatalf("list: %v\nstderr:\n%s", err, errOut)
	}
	d := mustJSON[model.Document](t, out)
	it, ok := d.FindItem(res.ID)
	if !ok {
		t.Fatalf("added item not persisted:\n%s", out)
	}
	if !it.Done || it.Cat != "toiletries" || it.Name != "Sunscreen" {
		t.Fatalf("persisted item: %+v", it)
	}
	if len(d.Items) != 10 {
		t.Fatalf("item count: %d", len(d.Items))
	}
}

func TestAddEmptyNameFails(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, []string{"--dir", dir, "add", "   "}); err == nil {
		t.Fatalf("expected empty-name add to fail")
	}
}

func TestAllDoneIncrementsStreak(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "all", "done"})
	if err != nil {
		t.Fatalf("all done: %v\nstderr:\n%s", err, errOut)
	}
	p := mustJSON[model.Progress](t, out)
	if !p.Completed || p.Pct != 100 {
		t.Fatalf("progress: %+v", p)
	}

	// The streak write must survive the process boundary.
	out, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "list"})
	if err != nil {
		t.Fatalf("list: %v\nstderr:\n%s", err, errOut)
	}
	d := mustJSON[model.Document](t, out)
	if !d.CompletedOnce {
		t.Fatalf("completion latch not persisted")
	}

	if _, errOut, err = runCLI(t, []string{"--dir", dir, "reset"}); err != nil {
		t.Fatalf("reset: %v\nstderr:\n%s", err, errOut)
	}
	out, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "progress"})
	if err != nil {
		t.Fatalf("progress: %v\nstderr:\n%s", err, errOut)
	}
	if p := mustJSON[model.Progress](t, out); p.Done != 0 {
		t.Fatalf("reset progress: %+v", p)
	}
}

func TestModeSwitch(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "mode", "beach"})
	if err != nil {
		t.Fatalf("mode beach: %v\nstderr:\n%s", err, errOut)
	}
	d := mustJSON[model.Document](t, out)
	if d.Mode != "beach" {
		t.Fatalf("document mode: %q", d.Mode)
	}

	// Unknown keys warn on stderr and fall back to the default mode.
	out, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "mode", "lunar"})
	if err != nil {
		t.Fatalf("mode lunar: %v", err)
	}
	if len(errOut) == 0 {
		t.Fatalf("expected an unknown-mode warning on stderr")
	}
	if d := mustJSON[model.Document](t, out); d.Mode != "weekend" {
		t.Fatalf("fallback mode: %q", d.Mode)
	}
}

func TestDeleteItem(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "list"})
	if err != nil {
		t.Fatalf("list: %v\nstderr:\n%s", err, errOut)
	}
	d := mustJSON[model.Document](t, out)
	id := d.Items[0].ID

	out, errOut, err = runCLI(t, []string{"--dir", dir, "--format", "json", "delete", id})
	if err != nil {
		t.Fatalf("delete: %v\nstderr:\n%s", err, errOut)
	}
	if p := mustJSON[model.Progress](t, out); p.Total != 8 {
		t.Fatalf("total after delete: %+v", p)
	}
}

func TestDoctorCleanStore(t *testing.T) {
	dir := t.TempDir()

	// Materialize the records first.
	if _, errOut, err := runCLI(t, []string{"--dir", dir, "progress"}); err != nil {
		t.Fatalf("progress: %v\nstderr:\n%s", err, errOut)
	}

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "doctor"})
	if err != nil {
		t.Fatalf("doctor: %v\nstderr:\n%s", err, errOut)
	}
	rep := mustJSON[struct {
		Issues []any `json:"issues"`
	}](t, out)
	if len(rep.Issues) != 0 {
		t.Fatalf("doctor issues on fresh store: %+v", rep.Issues)
	}
}

func TestSharePrintsSummary(t *testing.T) {
	dir := t.TempDir()

	out, errOut, err := runCLI(t, []string{"--dir", dir, "share"})
	if err != nil {
		t.Fatalf("share: %v\nstderr:\n%s", err, errOut)
	}
	if !bytes.Contains(out, []byte("🧳 Weekend trip")) {
		t.Fatalf("summary header missing:\n%s", out)
	}
	if !bytes.Contains(out, []byte("[ ]")) {
		t.Fatalf("item markers missing:\n%s", out)
	}
}

func TestWipe(t *testing.T) {
	dir := t.TempDir()

	if _, errOut, err := runCLI(t, []string{"--dir", dir, "all", "done"}); err != nil {
		t.Fatalf("all done: %v\nstderr:\n%s", err, errOut)
	}
	if _, errOut, err := runCLI(t, []string{"--dir", dir, "wipe", "--no-backup"}); err != nil {
		t.Fatalf("wipe: %v\nstderr:\n%s", err, errOut)
	}

	out, errOut, err := runCLI(t, []string{"--dir", dir, "--format", "json", "progress"})
	if err != nil {
		t.Fatalf("progress: %v\nstderr:\n%s", err, errOut)
	}
	if p := mustJSON[model.Progress](t, out); p.Done != 0 || p.Total != 9 {
		t.Fatalf("progress after wipe: %+v", p)
	}
}
