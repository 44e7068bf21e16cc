package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"snsforge/internal/content"
	"snsforge/internal/paths"
)

// snsforge lint
func cmdLint(args []string) error {
	var cf commonFlags
	var file stringFlag

	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&file, "file", "Content JSON to lint (default: the project's content.json)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf, nil)
	if err != nil {
		return err
	}

	path := file.v
	if !file.set {
		path = paths.New("").Content(cfg.Project)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result, err := content.ParseBatchResult(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	totalErrors := 0
	for i, script := range result.Scripts {
		lint := content.CheckScript(script.FullText, script.Narration)
		totalErrors += lint.ErrorCount
		fmt.Printf("\n台本 %d/%d: %s\n%s\n", i+1, len(result.Scripts), script.IdeaTitle, lint.Format())
	}
	slog.Info("lint finished", "scripts", len(result.Scripts), "totalErrors", totalErrors)
	if totalErrors > 0 {
		return fmt.Errorf("%d quality errors found", totalErrors)
	}
	return nil
}
