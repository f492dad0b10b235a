package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestNew_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.HTTP.Port != "8081" {
		t.Fatalf("port = %q", cfg.HTTP.Port)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DSN != "data/fleet.db" {
		t.Fatalf("store = %+v", cfg.Store)
	}
	r := cfg.Recommendation
	if r.Host != "api.openai.com" || r.BasePath != "/v1" || r.Model != "gpt-3.5-turbo" ||
		r.MaxTokens != 800 || r.Temperature != 0.7 || r.CacheTTL != 6*time.Hour {
		t.Fatalf("recommendation = %+v", r)
	}
	if r.APIKey != "" || cfg.Scheduler.AutoFlagSchedule != "" {
		t.Fatalf("expected no key and no schedule, got %q / %q", r.APIKey, cfg.Scheduler.AutoFlagSchedule)
	}
}

func TestNew_EnvFileAndOverrides(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("APP_ENV", "")
	env := "HTTP_PORT=9090\nSTORE_DRIVER=memory\nAUTO_FLAG_SCHEDULE=@daily\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("STORE_DRIVER")
		os.Unsetenv("AUTO_FLAG_SCHEDULE")
	})
	t.Setenv("RECOMMENDATION_CACHE_TTL", "30m")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.HTTP.Port != "9090" || cfg.Store.Driver != "memory" || cfg.Scheduler.AutoFlagSchedule != "@daily" {
		t.Fatalf("cfg = %+v %+v %+v", cfg.HTTP, cfg.Store, cfg.Scheduler)
	}
	if cfg.Recommendation.CacheTTL != 30*time.Minute {
		t.Fatalf("cache ttl = %v", cfg.Recommendation.CacheTTL)
	}
}

func TestNew_InvalidNumber(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OPENAI_MAX_TOKENS", "lots")
	if _, err := New(); err == nil {
		t.Fatalf("expected error for non-numeric OPENAI_MAX_TOKENS")
	}
}

func TestStaticConfigKeyWinsOverEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	static := "{\n  // local key\n  \"openaiApiKey\": \"sk-from-file\",\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(static), 0o600); err != nil {
		t.Fatalf("write config.json: %v", err)
	}

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Recommendation.APIKey != "sk-from-file" {
		t.Fatalf("api key = %q", cfg.Recommendation.APIKey)
	}
}

func TestLoadStatic(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadStatic(filepath.Join(dir, "missing.json"))
	if err != nil || cfg.OpenAIAPIKey != "" {
		t.Fatalf("missing file: cfg %+v err %v", cfg, err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{openaiApiKey:"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadStatic(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadStatic_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "# local overrides\nopenai_api_key = \"sk-toml\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("LoadStatic: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-toml" {
		t.Fatalf("api key = %q, want sk-toml", cfg.OpenAIAPIKey)
	}
}
