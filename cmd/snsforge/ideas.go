package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"snsforge/internal/ai"
	cfgpkg "snsforge/internal/config"
	"snsforge/internal/content"
	"snsforge/internal/paths"
)

const ideasPerRound = 20

var newTextClient = func(apiKey string) (ai.TextClient, error) {
	return ai.New(apiKey, "")
}

// snsforge ideas
func cmdIdeas(args []string) error {
	var cf commonFlags
	var rounds intFlag
	var overwrite boolFlag

	fs := flag.NewFlagSet("ideas", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&rounds, "rounds", "Number of 20-idea generation rounds (default 1)")
	fs.Var(&overwrite, "overwrite", "Allow overwriting existing outputs")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf, func(ov *cfgpkg.Overrides) {
		if overwrite.set {
			ov.Overwrite = &overwrite.v
		}
	})
	if err != nil {
		return err
	}
	if err := cfgpkg.ValidateForIdeas(cfg); err != nil {
		return err
	}

	strategy, err := loadStrategy(cfg.StrategyPath)
	if err != nil {
		return err
	}
	client, err := newTextClient(cfg.OpenAIAPIKey)
	if err != nil {
		return err
	}
	ctx := context.Background()

	totalRounds := rounds.v
	if !rounds.set || totalRounds < 1 {
		totalRounds = 1
	}

	var allIdeas []content.Idea
	var usage ai.TokenUsage
	for round := 1; round <= totalRounds; round++ {
		startNo := (round-1)*ideasPerRound + 1
		system, prompt := content.BuildIdeaPrompts(strategy.Persona, strategy.Pains, startNo)
		slog.Info("generating ideas", "round", round, "startNo", startNo, "model", cfg.TextModel)
		text, callUsage, err := client.GenerateTextWithUsage(ctx, cfg.TextModel, system, prompt)
		if err != nil {
			return err
		}
		usage = usage.Add(callUsage)

		ideas := content.ParseIdeas(text)
		if len(ideas) == 0 {
			return fmt.Errorf("no ideas recovered from round %d response", round)
		}
		content.RenumberIdeas(ideas, startNo)
		allIdeas = append(allIdeas, ideas...)
		slog.Info("ideas parsed", "round", round, "count", len(ideas), "total", len(allIdeas))
	}

	dist := content.ClassifyBatch(allIdeas)
	for _, c := range dist.Counts {
		slog.Info("appeal distribution", "category", c.Category, "count", c.Count)
	}
	for _, w := range dist.Warnings {
		slog.Warn("idea balance", "warning", w)
	}
	if content.ShouldRegenerate(dist) {
		slog.Warn("idea batch is skewed; consider rerunning with fresh rounds")
	}

	builder := paths.New("")
	if err := builder.EnsureProjectDir(cfg.Project); err != nil {
		return err
	}
	ideasPath := builder.Ideas(cfg.Project)
	if err := paths.CheckOverwrite([]string{ideasPath}, cfg.Overwrite); err != nil {
		return err
	}
	data, err := json.MarshalIndent(allIdeas, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(ideasPath, data, 0o644); err != nil {
		return err
	}

	slog.Info(
		"ideas generated",
		"project", cfg.Project,
		"count", len(allIdeas),
		"balanced", dist.IsBalanced,
		"path", ideasPath,
		"inputTokens", usage.InputTokens,
		"outputTokens", usage.OutputTokens,
		"totalTokens", usage.TotalTokens,
	)
	return nil
}

func loadConfig(cf commonFlags, applyFlags func(*cfgpkg.Overrides)) (cfgpkg.Config, error) {
	fileCfg, err := cfgpkg.LoadFile(cf.config)
	if err != nil {
		return cfgpkg.Config{}, err
	}
	envOv, apiKey, elevenLabsKey := cfgpkg.FromEnv()
	var flagOv cfgpkg.Overrides
	if cf.project != "" {
		flagOv.Project = &cf.project
	}
	if applyFlags != nil {
		applyFlags(&flagOv)
	}
	return cfgpkg.Merge(fileCfg, envOv, flagOv, apiKey, elevenLabsKey), nil
}

func loadStrategy(path string) (content.Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Strategy{}, fmt.Errorf("read strategy file: %w", err)
	}
	strategy, err := content.ParseStrategy(data)
	if err != nil {
		return content.Strategy{}, fmt.Errorf("parse strategy file: %w", err)
	}
	return strategy, nil
}
