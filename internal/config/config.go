package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

type (
	Container struct {
		App            *App
		HTTP           *HTTP
		Store          *Store
		Redis          *Redis
		Recommendation *Recommendation
		Scheduler      *Scheduler
	}

	App struct {
		Name string
		Env  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	// Store selects the snapshot backend: sqlite, postgres, redis or memory.
	Store struct {
		Driver        string
		DSN           string
		MigrationsDir string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Recommendation struct {
		Host        string
		BasePath    string
		Scheme      string
		Model       string
		MaxTokens   int
		Temperature float64
		APIKey      string
		CacheTTL    time.Duration
		Timeout     time.Duration
	}

	Scheduler struct {
		// AutoFlagSchedule is a cron spec; empty disables automatic overdue flagging.
		AutoFlagSchedule string
	}
)

// StaticConfig is the optional config file read once at startup.
type StaticConfig struct {
	OpenAIAPIKey string `json:"openaiApiKey" toml:"openai_api_key"`
}

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "maintenance-tracker"),
		Env:  os.Getenv("APP_ENV"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8081"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	store := &Store{
		Driver:        getEnv("STORE_DRIVER", "sqlite"),
		DSN:           getEnv("STORE_DSN", "data/fleet.db"),
		MigrationsDir: getEnv("STORE_MIGRATIONS_DIR", "./internal/adapter/sqldb/migrations"),
	}

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	maxTokens, err := getInt("OPENAI_MAX_TOKENS", 800)
	if err != nil {
		return nil, err
	}
	temperature, err := getFloat("OPENAI_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("RECOMMENDATION_CACHE_TTL", 6*time.Hour)
	if err != nil {
		return nil, err
	}
	timeout, err := getDuration("OPENAI_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	static, err := LoadStatic(getEnv("STATIC_CONFIG_PATH", "config.json"))
	if err != nil {
		return nil, err
	}
	apiKey := static.OpenAIAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	recommendation := &Recommendation{
		Host:        getEnv("OPENAI_HOST", "api.openai.com"),
		BasePath:    getEnv("OPENAI_BASE_PATH", "/v1"),
		Scheme:      getEnv("OPENAI_SCHEME", "https"),
		Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
		APIKey:      apiKey,
		CacheTTL:    cacheTTL,
		Timeout:     timeout,
	}

	scheduler := &Scheduler{
		AutoFlagSchedule: os.Getenv("AUTO_FLAG_SCHEDULE"),
	}

	return &Container{
		App:            app,
		HTTP:           http,
		Store:          store,
		Redis:          redis,
		Recommendation: recommendation,
		Scheduler:      scheduler,
	}, nil
}

// LoadStatic reads the optional static config file. A missing file yields
// an empty config. Files ending in .toml are parsed as TOML, anything else
// as JSON5, which allows comments and trailing commas around double-quoted
// keys and strings.
func LoadStatic(path string) (*StaticConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &StaticConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read static config: %w", err)
	}
	var cfg StaticConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = json5.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse static config %s: %w", path, err)
	}
	return &cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
