package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuilderPaths(t *testing.T) {
	b := New("")
	if b.Base != "out" {
		t.Fatalf("expected default base, got %q", b.Base)
	}
	if got := b.Ideas("savings"); got != filepath.Join("out", "savings", "ideas.json") {
		t.Fatalf("unexpected ideas path: %q", got)
	}
	if got := b.Content("savings"); got != filepath.Join("out", "savings", "content.json") {
		t.Fatalf("unexpected content path: %q", got)
	}
	if got := b.Report("savings"); got != filepath.Join("out", "savings", "report.html") {
		t.Fatalf("unexpected report path: %q", got)
	}
	if got := b.Audio("savings", 7); got != filepath.Join("out", "savings", "audio", "script_007.mp3") {
		t.Fatalf("unexpected audio path: %q", got)
	}
}

func TestBuilderCustomBase(t *testing.T) {
	b := New("/tmp/artifacts")
	if got := b.ProjectDir("p"); got != filepath.Join("/tmp/artifacts", "p") {
		t.Fatalf("unexpected project dir: %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	b := New(t.TempDir())
	if err := b.EnsureAudioDir("p"); err != nil {
		t.Fatalf("ensure audio dir: %v", err)
	}
	info, err := os.Stat(b.AudioDir("p"))
	if err != nil || !info.IsDir() {
		t.Fatalf("audio dir missing: %v", err)
	}
	// Idempotent.
	if err := b.EnsureProjectDir("p"); err != nil {
		t.Fatalf("ensure project dir again: %v", err)
	}
}

func TestCheckOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "ideas.json")
	if err := os.WriteFile(existing, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "content.json")

	if err := CheckOverwrite([]string{missing}, false); err != nil {
		t.Fatalf("missing file should pass: %v", err)
	}
	if err := CheckOverwrite([]string{missing, existing}, false); err == nil {
		t.Fatalf("expected refusal for existing file")
	}
	if err := CheckOverwrite([]string{existing}, true); err != nil {
		t.Fatalf("overwrite=true should pass: %v", err)
	}
	if err := CheckOverwrite([]string{""}, false); err != nil {
		t.Fatalf("empty path should be skipped: %v", err)
	}
}
