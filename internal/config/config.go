// /internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. DISCORD_TOKEN is the only hard
// requirement; everything else has a workable default.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"data/exobot.json"`

	HealthAddr  string `env:"HEALTH_ADDR" envDefault:":3000"`
	RealtimeURL string `env:"REALTIME_URL"`

	ClassifierURL     string        `env:"CLASSIFIER_URL" envDefault:"https://text.pollinations.ai/openai"`
	ClassifierModel   string        `env:"CLASSIFIER_MODEL" envDefault:"openai"`
	ClassifierKey     string        `env:"CLASSIFIER_KEY"`
	ClassifierTimeout time.Duration `env:"CLASSIFIER_TIMEOUT" envDefault:"5s"`

	ForbiddenWords []string `env:"FORBIDDEN_WORDS" envSeparator:","`

	SpamWindow       time.Duration `env:"SPAM_WINDOW" envDefault:"60s"`
	SpamThreshold    int           `env:"SPAM_THRESHOLD" envDefault:"5"`
	CapsRatio        float64       `env:"CAPS_RATIO" envDefault:"0.70"`
	CapsMinLength    int           `env:"CAPS_MIN_LENGTH" envDefault:"10"`
	MentionLimit     int           `env:"MENTION_LIMIT" envDefault:"5"`
	WarningThreshold int           `env:"WARNING_THRESHOLD" envDefault:"3"`
	TimeoutDuration  time.Duration `env:"TIMEOUT_DURATION" envDefault:"60s"`
	CurrencyCooldown time.Duration `env:"CURRENCY_COOLDOWN" envDefault:"60s"`
	AuditRetention   time.Duration `env:"AUDIT_RETENTION" envDefault:"720h"` // 30 days

	// Whether an automatic timeout clears the in-memory warning counter.
	// Off by default: every violation past the threshold re-triggers the
	// sanction until a moderator clears the counter.
	ResetWarningsOnTimeout bool `env:"RESET_WARNINGS_ON_TIMEOUT" envDefault:"false"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// New loads .env (if present) and parses the environment. A missing required
// variable is returned as an error so main can fail fast before the session
// opens.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
