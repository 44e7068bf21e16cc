package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// set up slog logger according to level; defaults to info.
func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// Common flags for project/config/log-level across subcommands
type commonFlags struct {
	project  string
	config   string
	logLevel string
}

func addCommonFlags(fs *flag.FlagSet, cf *commonFlags) {
	fs.StringVar(&cf.project, "project", "", "Project name; default from config")
	fs.StringVar(&cf.config, "config", "config.json", "Path to config file")
	fs.StringVar(&cf.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// Flag wrappers that remember whether they were set, so unset flags do not
// clobber config values during merge.
type stringFlag struct {
	v   string
	set bool
}

func (f *stringFlag) String() string { return f.v }
func (f *stringFlag) Set(s string) error {
	f.v = s
	f.set = true
	return nil
}

type boolFlag struct {
	v   bool
	set bool
}

func (f *boolFlag) String() string { return strconv.FormatBool(f.v) }
func (f *boolFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.v = v
	f.set = true
	return nil
}
func (f *boolFlag) IsBoolFlag() bool { return true }

type intFlag struct {
	v   int
	set bool
}

func (f *intFlag) String() string { return strconv.Itoa(f.v) }
func (f *intFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.v = v
	f.set = true
	return nil
}

// parsePick parses a script selection like "1,3,5" or "all" into 0-based
// indices over n items.
func parsePick(selection string, n int) ([]int, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" || strings.EqualFold(selection, "all") {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	var indices []int
	for _, part := range strings.Split(selection, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", part, err)
		}
		if idx < 1 || idx > n {
			return nil, fmt.Errorf("selection %d is out of range (1-%d)", idx, n)
		}
		indices = append(indices, idx-1)
	}
	return indices, nil
}
