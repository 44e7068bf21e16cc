package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds resolved configuration values after merging file, env, and
// flags.
type Config struct {
	Project      string `json:"project,omitempty"`
	StrategyPath string `json:"strategyPath,omitempty"`
	Voice        string `json:"voice,omitempty"`
	S3Bucket     string `json:"s3Bucket,omitempty"`
	S3Prefix     string `json:"s3Prefix,omitempty"`
	Region       string `json:"region,omitempty"`
	Overwrite    bool   `json:"overwrite,omitempty"`
	TextModel    string `json:"textModel,omitempty"`
	TTSModel     string `json:"ttsModel,omitempty"`
	TTSProvider  string `json:"ttsProvider,omitempty"`
	RetryBudget  int    `json:"retryBudget,omitempty"`

	// Not persisted to file; sourced from env only.
	OpenAIAPIKey     string `json:"-"`
	ElevenLabsAPIKey string `json:"-"`
}

// Overrides represents optional overrides from env or flags. Only non-nil
// pointers are applied during merge.
type Overrides struct {
	Project      *string
	StrategyPath *string
	Voice        *string
	S3Bucket     *string
	S3Prefix     *string
	Region       *string
	Overwrite    *bool
	TextModel    *string
	TTSModel     *string
	TTSProvider  *string
	RetryBudget  *int
}

func Default() Config {
	return Config{
		Project:      "default",
		StrategyPath: "strategy.json",
		Voice:        "alloy",
		S3Prefix:     "snsforge",
		TextModel:    "gpt-4o-mini",
		TTSModel:     "gpt-4o-mini-tts",
		TTSProvider:  "openai",
		RetryBudget:  3,
	}
}

// LoadFile reads a JSON config. If file not found, returns defaults and no
// error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// FromEnv reads env vars and returns overrides plus the API keys.
func FromEnv() (Overrides, string, string) {
	var ov Overrides

	if v, ok := os.LookupEnv("SNSFORGE_PROJECT"); ok {
		ov.Project = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_STRATEGY"); ok {
		ov.StrategyPath = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_VOICE"); ok {
		ov.Voice = &v
	}
	if v, ok := os.LookupEnv("AWS_S3_BUCKET"); ok {
		ov.S3Bucket = &v
	}
	if v, ok := os.LookupEnv("AWS_S3_PREFIX"); ok {
		ov.S3Prefix = &v
	}
	if v, ok := os.LookupEnv("AWS_REGION"); ok {
		ov.Region = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_OVERWRITE"); ok {
		if b, err := parseBool(v); err == nil {
			ov.Overwrite = &b
		}
	}
	if v, ok := os.LookupEnv("SNSFORGE_TEXT_MODEL"); ok {
		ov.TextModel = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_TTS_MODEL"); ok {
		ov.TTSModel = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_TTS_PROVIDER"); ok {
		ov.TTSProvider = &v
	}
	if v, ok := os.LookupEnv("SNSFORGE_RETRY_BUDGET"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			ov.RetryBudget = &n
		}
	}
	return ov, os.Getenv("OPENAI_API_KEY"), os.Getenv("ELEVENLABS_API_KEY")
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "":
		return false, fmt.Errorf("empty bool")
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// Merge applies overrides in order: file -> env -> flags.
func Merge(fileCfg Config, env Overrides, flags Overrides, apiKey, elevenLabsKey string) Config {
	cfg := fileCfg

	apply := func(ov Overrides) {
		if ov.Project != nil {
			cfg.Project = *ov.Project
		}
		if ov.StrategyPath != nil {
			cfg.StrategyPath = *ov.StrategyPath
		}
		if ov.Voice != nil {
			cfg.Voice = *ov.Voice
		}
		if ov.S3Bucket != nil {
			cfg.S3Bucket = *ov.S3Bucket
		}
		if ov.S3Prefix != nil {
			cfg.S3Prefix = *ov.S3Prefix
		}
		if ov.Region != nil {
			cfg.Region = *ov.Region
		}
		if ov.Overwrite != nil {
			cfg.Overwrite = *ov.Overwrite
		}
		if ov.TextModel != nil {
			cfg.TextModel = *ov.TextModel
		}
		if ov.TTSModel != nil {
			cfg.TTSModel = *ov.TTSModel
		}
		if ov.TTSProvider != nil {
			cfg.TTSProvider = *ov.TTSProvider
		}
		if ov.RetryBudget != nil {
			cfg.RetryBudget = *ov.RetryBudget
		}
	}

	apply(env)
	apply(flags)

	cfg.OpenAIAPIKey = apiKey
	cfg.ElevenLabsAPIKey = elevenLabsKey
	return cfg
}

// Validation helpers
func ValidateForIdeas(cfg Config) error {
	if cfg.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required for idea generation")
	}
	if cfg.TextModel == "" {
		return errors.New("text model is required")
	}
	if cfg.StrategyPath == "" {
		return errors.New("strategy file is required")
	}
	return nil
}

func ValidateForScript(cfg Config) error {
	if cfg.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required for script generation")
	}
	if cfg.TextModel == "" {
		return errors.New("text model is required")
	}
	if cfg.StrategyPath == "" {
		return errors.New("strategy file is required")
	}
	return nil
}

func ValidateForAudio(cfg Config) error {
	switch strings.ToLower(strings.TrimSpace(cfg.TTSProvider)) {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for audio generation")
		}
	case "elevenlabs":
		if cfg.ElevenLabsAPIKey == "" {
			return errors.New("ELEVENLABS_API_KEY is required for audio generation")
		}
	default:
		return fmt.Errorf("unsupported tts provider: %s", cfg.TTSProvider)
	}
	if cfg.TTSModel == "" {
		return errors.New("tts model is required")
	}
	if cfg.Voice == "" {
		return errors.New("voice is required")
	}
	return nil
}

func ValidateForPublish(cfg Config) error {
	if cfg.S3Bucket == "" {
		return errors.New("S3 bucket is required for publish")
	}
	if cfg.Region == "" {
		return errors.New("AWS region is required for publish")
	}
	return nil
}
