package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config application configuration loaded from config.toml
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Admin          AdminConfig          `toml:"admin"`
	Business       BusinessConfig       `toml:"business"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Notifications  NotificationsConfig  `toml:"notifications"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AdminConfig settings for the administrative API
type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// BusinessConfig business-level settings.
// Timezone fixes the day boundary for availability checks so the service
// behaves the same regardless of where it is deployed.
type BusinessConfig struct {
	Timezone string `toml:"timezone"`
}

// GoogleCalendarConfig external calendar integration settings
type GoogleCalendarConfig struct {
	Enabled    bool   `toml:"enabled"`
	CalendarID string `toml:"calendar_id"`
	Timeout    int    `toml:"timeout"`
}

// NotificationsConfig admin email notification settings
type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	SMTPHost   string `toml:"smtp_host"`
	SMTPPort   int    `toml:"smtp_port"`
	SMTPUser   string `toml:"smtp_user"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
}

// Load reads the TOML config file and applies environment overrides
// for secrets (DB_PASSWORD, ADMIN_API_KEY, SMTP_PASSWORD is read by the
// mailer directly).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if key := os.Getenv("ADMIN_API_KEY"); key != "" {
		cfg.Admin.APIKey = key
	}

	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "America/Mexico_City"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	return cfg, nil
}
