package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"snsforge/internal/ai"
	cfgpkg "snsforge/internal/config"
	"snsforge/internal/content"
	"snsforge/internal/paths"
)

var newTTSClient = func(cfg cfgpkg.Config) (ai.TTSClient, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.TTSProvider))
	if provider == "" {
		provider = "openai"
	}
	switch provider {
	case "openai":
		return ai.New(cfg.OpenAIAPIKey, "")
	case "elevenlabs":
		return ai.NewElevenLabs(cfg.ElevenLabsAPIKey)
	default:
		return nil, fmt.Errorf("unsupported tts provider: %s", cfg.TTSProvider)
	}
}

// snsforge audio
func cmdAudio(args []string) error {
	var cf commonFlags
	var voice stringFlag

	fs := flag.NewFlagSet("audio", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addCommonFlags(fs, &cf)
	fs.Var(&voice, "voice", "TTS voice")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogger(cf.logLevel)

	cfg, err := loadConfig(cf, func(ov *cfgpkg.Overrides) {
		if voice.set {
			ov.Voice = &voice.v
		}
	})
	if err != nil {
		return err
	}
	if err := cfgpkg.ValidateForAudio(cfg); err != nil {
		return err
	}

	builder := paths.New("")
	contentPath := builder.Content(cfg.Project)
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return fmt.Errorf("read content (run \"snsforge script\" first): %w", err)
	}
	result, err := content.ParseBatchResult(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", contentPath, err)
	}

	client, err := newTTSClient(cfg)
	if err != nil {
		return err
	}
	if err := builder.EnsureAudioDir(cfg.Project); err != nil {
		return err
	}

	ctx := context.Background()
	audioPaths := make([]string, len(result.Scripts))
	generated := 0
	for i, script := range result.Scripts {
		if strings.TrimSpace(script.Narration) == "" {
			slog.Warn("narration is empty, skipping audio", "idea", script.IdeaTitle)
			continue
		}
		mp3Path := builder.Audio(cfg.Project, i+1)
		if err := writeAudio(ctx, client, cfg, script.Narration, mp3Path); err != nil {
			slog.Error("audio generation failed", "idea", script.IdeaTitle, "err", err)
			continue
		}
		audioPaths[i] = mp3Path
		generated++
		slog.Info("audio generated", "idea", script.IdeaTitle, "path", mp3Path)
	}

	result.AudioPaths = audioPaths
	updated, err := result.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(contentPath, updated, 0o644); err != nil {
		return err
	}

	slog.Info(
		"audio finished",
		"project", cfg.Project,
		"generated", generated,
		"scripts", len(result.Scripts),
		"voice", cfg.Voice,
		"ttsModel", cfg.TTSModel,
		"ttsProvider", cfg.TTSProvider,
	)
	return nil
}

func writeAudio(ctx context.Context, client ai.TTSClient, cfg cfgpkg.Config, narration, mp3Path string) error {
	out, err := os.Create(mp3Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("failed to close mp3 output", "err", cerr)
		}
	}()
	return client.TTS(ctx, cfg.TTSModel, cfg.Voice, narration, out)
}
