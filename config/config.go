package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBHost     string `envconfig:"DB_HOST"     required:"true"`
	DBUser     string `envconfig:"DB_USER"     required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME"     required:"true"`
	Port       string `envconfig:"PORT"        default:"3000"`
	LogLevel   string `envconfig:"LOG_LEVEL"   default:"info"`
}

// Load reads an optional .env file, then resolves the configuration from
// the process environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("error loading .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}
