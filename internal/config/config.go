package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string        `yaml:"port" validate:"required,numeric"`
	ItemsBaseURL string        `yaml:"items_base_url" validate:"required,url"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" validate:"gt=0"`
	DBDSN        string        `yaml:"db_dsn" validate:"required"`
	LogFile      string        `yaml:"log_file"`

	WhatsAppNumber string `yaml:"whatsapp_number" validate:"required,numeric,min=8,max=15"`
	BusinessName   string `yaml:"business_name" validate:"required"`

	AdminUser         string `yaml:"admin_user" validate:"required"`
	AdminPasswordHash string `yaml:"admin_password_hash"`

	TemplatesDir string `yaml:"templates_dir" validate:"required"`
	StaticDir    string `yaml:"static_dir" validate:"required"`
}

// Defaults is the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:           "8080",
		ItemsBaseURL:   "http://127.0.0.1:8000",
		FetchTimeout:   10 * time.Second,
		DBDSN:          "missingfit.db", // sqlite file in project root
		LogFile:        "./missingfit.log",
		WhatsAppNumber: "917225994009",
		BusinessName:   "The Missing Fit",
		AdminUser:      "admin",
		TemplatesDir:   "./web/templates",
		StaticDir:      "./web/static",
	}
}

// Load layers the optional YAML file over the defaults, then the
// environment over both, and validates the result.
func Load(file string) (Config, error) {
	cfg := Defaults()
	if file == "" {
		file = os.Getenv("CONFIG_FILE")
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", file, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.ItemsBaseURL = getEnv("ITEMS_BASE_URL", cfg.ItemsBaseURL)
	if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.WhatsAppNumber = getEnv("WHATSAPP_NUMBER", cfg.WhatsAppNumber)
	cfg.BusinessName = getEnv("BUSINESS_NAME", cfg.BusinessName)
	cfg.AdminUser = getEnv("ADMIN_USER", cfg.AdminUser)
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.AdminPasswordHash)
	cfg.TemplatesDir = getEnv("TEMPLATES_DIR", cfg.TemplatesDir)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	log.Printf("[config] PORT=%s ITEMS_BASE_URL=%s DB_DSN=%s LOG_FILE=%s ADMIN=%t",
		cfg.Port, cfg.ItemsBaseURL, cfg.DBDSN, cfg.LogFile, cfg.AdminEnabled())
	return cfg, nil
}

// AdminEnabled reports whether the admin area is reachable.
func (c Config) AdminEnabled() bool { return c.AdminPasswordHash != "" }

func (c Config) Addr() string { return ":" + c.Port }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
