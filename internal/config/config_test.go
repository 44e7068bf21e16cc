package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "default" || cfg.TTSProvider != "openai" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"project": "savings", "voice": "nova", "retryBudget": 5}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "savings" || cfg.Voice != "nova" || cfg.RetryBudget != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.TextModel != "gpt-4o-mini" {
		t.Fatalf("expected default text model, got %q", cfg.TextModel)
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SNSFORGE_PROJECT", "envproj")
	t.Setenv("SNSFORGE_VOICE", "shimmer")
	t.Setenv("SNSFORGE_OVERWRITE", "yes")
	t.Setenv("SNSFORGE_RETRY_BUDGET", "4")
	t.Setenv("SNSFORGE_TTS_PROVIDER", "elevenlabs")
	t.Setenv("AWS_S3_BUCKET", "my-bucket")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ELEVENLABS_API_KEY", "el-test")

	ov, apiKey, elevenKey := FromEnv()
	if ov.Project == nil || *ov.Project != "envproj" {
		t.Fatalf("expected project override, got %+v", ov.Project)
	}
	if ov.Voice == nil || *ov.Voice != "shimmer" {
		t.Fatalf("expected voice override")
	}
	if ov.Overwrite == nil || !*ov.Overwrite {
		t.Fatalf("expected overwrite=true")
	}
	if ov.RetryBudget == nil || *ov.RetryBudget != 4 {
		t.Fatalf("expected retry budget 4")
	}
	if ov.TTSProvider == nil || *ov.TTSProvider != "elevenlabs" {
		t.Fatalf("expected tts provider override")
	}
	if ov.S3Bucket == nil || *ov.S3Bucket != "my-bucket" {
		t.Fatalf("expected s3 bucket override")
	}
	if ov.StrategyPath != nil {
		t.Fatalf("unset var must not produce an override")
	}
	if apiKey != "sk-test" || elevenKey != "el-test" {
		t.Fatalf("unexpected keys: %q %q", apiKey, elevenKey)
	}
}

func TestFromEnvBadValues(t *testing.T) {
	t.Setenv("SNSFORGE_OVERWRITE", "maybe")
	t.Setenv("SNSFORGE_RETRY_BUDGET", "lots")

	ov, _, _ := FromEnv()
	if ov.Overwrite != nil {
		t.Fatalf("unparseable bool must be ignored")
	}
	if ov.RetryBudget != nil {
		t.Fatalf("unparseable int must be ignored")
	}
}

func TestMergePrecedence(t *testing.T) {
	fileCfg := Default()
	fileCfg.Project = "fromfile"
	fileCfg.Voice = "fromfile"

	envProject := "fromenv"
	envVoice := "fromenv"
	env := Overrides{Project: &envProject, Voice: &envVoice}

	flagProject := "fromflag"
	flags := Overrides{Project: &flagProject}

	cfg := Merge(fileCfg, env, flags, "sk-key", "el-key")
	if cfg.Project != "fromflag" {
		t.Fatalf("flags must win over env, got %q", cfg.Project)
	}
	if cfg.Voice != "fromenv" {
		t.Fatalf("env must win over file, got %q", cfg.Voice)
	}
	if cfg.TextModel != "gpt-4o-mini" {
		t.Fatalf("untouched fields keep file values, got %q", cfg.TextModel)
	}
	if cfg.OpenAIAPIKey != "sk-key" || cfg.ElevenLabsAPIKey != "el-key" {
		t.Fatalf("expected keys to be carried through")
	}
}

func TestValidateForIdeas(t *testing.T) {
	cfg := Default()
	if err := ValidateForIdeas(cfg); err == nil {
		t.Fatalf("expected missing-key error")
	}
	cfg.OpenAIAPIKey = "sk-test"
	if err := ValidateForIdeas(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateForAudio(t *testing.T) {
	cfg := Default()
	cfg.OpenAIAPIKey = "sk-test"
	if err := ValidateForAudio(cfg); err != nil {
		t.Fatalf("openai provider with key: %v", err)
	}

	cfg.TTSProvider = "elevenlabs"
	if err := ValidateForAudio(cfg); err == nil {
		t.Fatalf("expected missing elevenlabs key error")
	}
	cfg.ElevenLabsAPIKey = "el-test"
	if err := ValidateForAudio(cfg); err != nil {
		t.Fatalf("elevenlabs provider with key: %v", err)
	}

	cfg.TTSProvider = "espeak"
	if err := ValidateForAudio(cfg); err == nil {
		t.Fatalf("expected unsupported provider error")
	}
}

func TestValidateForPublish(t *testing.T) {
	cfg := Default()
	if err := ValidateForPublish(cfg); err == nil {
		t.Fatalf("expected missing bucket error")
	}
	cfg.S3Bucket = "bucket"
	if err := ValidateForPublish(cfg); err == nil {
		t.Fatalf("expected missing region error")
	}
	cfg.Region = "us-west-2"
	if err := ValidateForPublish(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
