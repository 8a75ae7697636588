package config

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// APIConfig points the client at the analytics backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Timeout bounds every JSON request; MediaTimeout bounds media-file
	// downloads, which can be much larger.
	Timeout      time.Duration `mapstructure:"timeout"       validate:"min=1s,max=5m"`
	MediaTimeout time.Duration `mapstructure:"media_timeout" validate:"min=1s,max=10m"`

	// PageSize caps the bulk message fetch. Messages beyond the cap are
	// treated as absent, not as an error.
	PageSize int `mapstructure:"page_size" validate:"min=1,max=10000"`
}

// DatabaseConfig locates the local snapshot database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TelegramConfig configures the report bot. The token is optional; with an
// empty token the service runs fetch-and-export only.
type TelegramConfig struct {
	Token   string `mapstructure:"token"`
	AdminID int64  `mapstructure:"admin_id" validate:"required_with=Token"`

	// BotInfo is filled at startup from GetMe, not from the config file.
	BotInfo *models.User `mapstructure:"-"`
}

// GeminiConfig configures AI insight generation. Insights degrade to an
// unavailable notice when the key is empty.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	ModelName         string  `mapstructure:"model_name"`
	Temperature       float32 `mapstructure:"temperature"         validate:"min=0,max=2"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=0,max=300"`
}

// TaskConfig enables one scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// ExportConfig controls CSV export naming and the dashboard page size.
type ExportConfig struct {
	FilenameBase string `mapstructure:"filename_base" validate:"required"`
	PageSize     int    `mapstructure:"page_size"     validate:"min=1,max=500"`
}

// Config is the root configuration for all components.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Export    ExportConfig    `mapstructure:"export"`
}
