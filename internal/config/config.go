package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string `env:"BOT_TOKEN,required"`
	AdminID  int64  `env:"ADMIN_ID,required"`

	// RequiredChannels lists channel usernames users must be subscribed to
	RequiredChannels []string `env:"REQUIRED_CHANNELS" envSeparator:","`

	// VideosDir is where uploaded video files are stored
	VideosDir string `env:"VIDEOS_DIR" envDefault:"videos"`

	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"filmbot"`
	User     string `env:"DB_USER" envDefault:"filmbot"`
	Password string `env:"DB_PASSWORD,required"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
