package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
server:
  port: 9001
transcript:
  default_language: en
  fallback_languages: ["pt", "es"]
`)

	var cfg Config
	if err := Load(&cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 9001 {
		t.Errorf("expected port 9001, got %d", cfg.Server.Port)
	}
	if cfg.Transcript.DefaultLanguage != "en" {
		t.Errorf("expected default language en, got %q", cfg.Transcript.DefaultLanguage)
	}
	if len(cfg.Transcript.FallbackLanguages) != 2 {
		t.Errorf("expected 2 fallback languages, got %v", cfg.Transcript.FallbackLanguages)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
server:
  port: 9001
`)

	t.Setenv("SERVER_PORT", "9002")

	var cfg Config
	if err := Load(&cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9002 {
		t.Errorf("expected env override 9002, got %d", cfg.Server.Port)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "TRANSCRIPT_DEFAULT_LANGUAGE=fr\n")
	// godotenv mutates the process environment; undo it for later tests.
	t.Cleanup(func() { os.Unsetenv("TRANSCRIPT_DEFAULT_LANGUAGE") })

	var cfg Config
	if err := Load(&cfg, WithEnvFile(envFile)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Transcript.DefaultLanguage != "fr" {
		t.Errorf("expected fr from .env file, got %q", cfg.Transcript.DefaultLanguage)
	}
}

func TestLoad_MissingFilesUsesDefaults(t *testing.T) {
	var cfg Config
	if err := Load(&cfg, WithConfigFile(filepath.Join(t.TempDir(), "nope.yml"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Service.Name != "youtube-transcript-api" {
		t.Errorf("expected default service name, got %q", cfg.Service.Name)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("TRANSCRIPT_FETCH_TIMEOUT")

	want := map[string]bool{
		"transcript.fetch.timeout": false,
		"transcript.fetch_timeout": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected variant %q in %v", k, variants)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}

	cfg.Server.Port = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid port to fail validation")
	}
}
