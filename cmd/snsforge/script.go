package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	cfgpkg "snsforge/internal/config"
	"snsforge/internal/content"
	"snsforge/internal/paths"
)

// snsforge script
func cmdScript(args []string) error {
	var cf commonFlags
	var pick stringFlag
	var budget intFlag
	var overwrite boolFlag

	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&pick, "pick", "Idea numbers to script, e.g. \"1,3,5\" (default all)")
	fs.Var(&budget, "retry-budget", "Max generation attempts per script")
	fs.Var(&overwrite, "overwrite", "Allow overwriting existing outputs")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf, func(ov *cfgpkg.Overrides) {
		if budget.set {
			ov.RetryBudget = &budget.v
		}
		if overwrite.set {
			ov.Overwrite = &overwrite.v
		}
	})
	if err != nil {
		return err
	}
	if err := cfgpkg.ValidateForScript(cfg); err != nil {
		return err
	}

	strategy, err := loadStrategy(cfg.StrategyPath)
	if err != nil {
		return err
	}

	builder := paths.New("")
	ideasData, err := os.ReadFile(builder.Ideas(cfg.Project))
	if err != nil {
		return fmt.Errorf("read ideas (run \"snsforge ideas\" first): %w", err)
	}
	var ideas []content.Idea
	if err := json.Unmarshal(ideasData, &ideas); err != nil {
		return fmt.Errorf("parse ideas: %w", err)
	}

	indices, err := parsePick(pick.v, len(ideas))
	if err != nil {
		return err
	}
	selected := make([]content.Idea, 0, len(indices))
	for _, idx := range indices {
		selected = append(selected, ideas[idx])
	}
	slog.Info("scripting ideas", "selected", len(selected), "of", len(ideas), "retryBudget", cfg.RetryBudget)

	client, err := newTextClient(cfg.OpenAIAPIKey)
	if err != nil {
		return err
	}
	system, _ := content.BuildScriptPrompts(content.Idea{}, strategy.Persona, strategy.Pains)
	reviser := content.NewReviser(client, cfg.TextModel, system, cfg.RetryBudget)

	scripts, failed := reviser.ReviseAll(context.Background(), selected, func(idea content.Idea) string {
		_, prompt := content.BuildScriptPrompts(idea, strategy.Persona, strategy.Pains)
		return prompt
	})
	for _, f := range failed {
		slog.Error("script generation failed", "idea", f.IdeaTitle, "err", f.Err)
	}

	totalErrors, totalWarnings := 0, 0
	for _, script := range scripts {
		totalErrors += script.Quality.ErrorCount
		totalWarnings += script.Quality.WarningCount
		preview := content.PreviewFor(script)
		slog.Info(
			"script generated",
			"idea", script.IdeaTitle,
			"attempts", script.Quality.Attempts,
			"errors", script.Quality.ErrorCount,
			"warnings", script.Quality.WarningCount,
			"narrationChars", preview.NarrationLength,
			"estimatedSeconds", fmt.Sprintf("%.1f", preview.EstimatedDuration),
			"segments", preview.SegmentCount,
			"previewIssues", preview.HasIssues,
		)
		if preview.TimeWarning != "" {
			slog.Warn("script timing", "idea", script.IdeaTitle, "warning", preview.TimeWarning)
		}
		for _, w := range preview.SegmentWarnings {
			slog.Warn("segment length", "idea", script.IdeaTitle, "warning", w)
		}
	}

	if err := builder.EnsureProjectDir(cfg.Project); err != nil {
		return err
	}
	contentPath := builder.Content(cfg.Project)
	if err := paths.CheckOverwrite([]string{contentPath}, cfg.Overwrite); err != nil {
		return err
	}
	result := content.BatchResult{Ideas: ideas, Scripts: scripts}
	data, err := result.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(contentPath, data, 0o644); err != nil {
		return err
	}

	slog.Info(
		"scripts saved",
		"project", cfg.Project,
		"scripts", len(scripts),
		"failed", len(failed),
		"totalErrors", totalErrors,
		"totalWarnings", totalWarnings,
		"path", contentPath,
	)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d scripts failed to generate", len(failed), len(selected))
	}
	return nil
}
