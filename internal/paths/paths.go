package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultBaseDir         = "out"
	defaultIdeasFilename   = "ideas.json"
	defaultContentFilename = "content.json"
	defaultReportFilename  = "report.html"
	audioDirName           = "audio"
)

// Builder constructs per-project output paths rooted at Base (default
// "out").
type Builder struct {
	Base string
}

func New(base string) *Builder {
	if base == "" {
		base = defaultBaseDir
	}
	return &Builder{Base: base}
}

// ProjectDir returns the output directory for one project: Base/<project>.
func (b *Builder) ProjectDir(project string) string {
	return filepath.Join(b.Base, project)
}

func (b *Builder) Ideas(project string) string {
	return filepath.Join(b.ProjectDir(project), defaultIdeasFilename)
}

func (b *Builder) Content(project string) string {
	return filepath.Join(b.ProjectDir(project), defaultContentFilename)
}

func (b *Builder) Report(project string) string {
	return filepath.Join(b.ProjectDir(project), defaultReportFilename)
}

func (b *Builder) AudioDir(project string) string {
	return filepath.Join(b.ProjectDir(project), audioDirName)
}

// Audio returns the MP3 path for the n-th script (1-based).
func (b *Builder) Audio(project string, n int) string {
	return filepath.Join(b.AudioDir(project), fmt.Sprintf("script_%03d.mp3", n))
}

// EnsureProjectDir creates the project directory if it does not exist.
func (b *Builder) EnsureProjectDir(project string) error {
	return os.MkdirAll(b.ProjectDir(project), 0o755)
}

// EnsureAudioDir creates the audio directory if it does not exist.
func (b *Builder) EnsureAudioDir(project string) error {
	return os.MkdirAll(b.AudioDir(project), 0o755)
}

// CheckOverwrite enforces overwrite behavior. If any path exists and
// overwrite is false, returns an error.
func CheckOverwrite(paths []string, overwrite bool) error {
	if overwrite {
		return nil
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("refusing to overwrite existing file: %s (use --overwrite)", p)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking file: %s: %w", p, err)
		}
	}
	return nil
}
