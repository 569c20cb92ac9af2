package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultInterval = 24 * time.Hour

	configPathEnv     = "CUSTOMER_OUTPUTS_CONFIG"
	inputPathEnv      = "RESULTS_INPUT_PATH"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Input         InputConfig        `yaml:"input"`
	Output        OutputConfig       `yaml:"output"`
	Database      DatabaseConfig     `yaml:"database"`
	Notifications NotificationConfig `yaml:"notifications"`
	Schedule      ScheduleConfig     `yaml:"schedule"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// InputConfig describes where internal results come from and in which format.
type InputConfig struct {
	Format  string            `yaml:"format"`
	Path    string            `yaml:"path"`
	Options map[string]string `yaml:"options"`
}

// OutputConfig describes the batch artifacts written per run.
type OutputConfig struct {
	CSVPath     string `yaml:"csvPath"`
	SummaryPath string `yaml:"summaryPath"`
}

// DatabaseConfig describes Postgres connection details; empty DSN disables
// persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// ScheduleConfig defines whether the batch recurs and how often.
type ScheduleConfig struct {
	Enabled bool   `yaml:"enabled"`
	Every   string `yaml:"every"`
}

// Interval resolves the schedule period string to a duration.
func (s ScheduleConfig) Interval() time.Duration {
	if s.Every == "" {
		return defaultInterval
	}
	interval, err := time.ParseDuration(s.Every)
	if err != nil || interval <= 0 {
		log.Printf("config: invalid schedule interval %q, reverting to %s", s.Every, defaultInterval)
		return defaultInterval
	}
	return interval
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputPathEnv); v != "" {
		c.Input.Path = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Input.Format != "" {
		base.Input.Format = override.Input.Format
	}
	if override.Input.Path != "" {
		base.Input.Path = override.Input.Path
	}
	if len(override.Input.Options) > 0 {
		base.Input.Options = override.Input.Options
	}

	if override.Output.CSVPath != "" {
		base.Output.CSVPath = override.Output.CSVPath
	}
	if override.Output.SummaryPath != "" {
		base.Output.SummaryPath = override.Output.SummaryPath
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Schedule.Enabled {
		base.Schedule.Enabled = true
	}
	if override.Schedule.Every != "" {
		base.Schedule.Every = override.Schedule.Every
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Input:   InputConfig{Format: "csv", Path: "test_results.csv"},
		Output: OutputConfig{
			CSVPath:     "customer_outputs.csv",
			SummaryPath: "customer_outputs_summary.txt",
		},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
		Schedule: ScheduleConfig{Enabled: false, Every: "24h"},
	}
}
