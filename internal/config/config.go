package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port           int
	Production     bool
	MongoURI       string
	DBName         string
	JWTSecret      string
	AllowedOrigins []string
	AuthDisabled   bool
}

// Origins the deployed front end and the two local dev servers run on.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://career-portal-ph.web.app",
}

func Get() *Config {
	config, err := load()
	if err != nil {
		log.Fatal(err)
	}
	return config
}

func load() (*Config, error) {

	viper.AutomaticEnv()

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("NODE_ENV", "development")
	viper.SetDefault("DB_NAME", "job-portal-db")
	viper.SetDefault("ALLOWED_ORIGINS", strings.Join(defaultOrigins, ","))
	viper.SetDefault("AUTH_DISABLED", false)

	config := &Config{
		Port:           viper.GetInt("PORT"),
		Production:     viper.GetString("NODE_ENV") == "production",
		MongoURI:       viper.GetString("MONGODB_URI"),
		DBName:         viper.GetString("DB_NAME"),
		JWTSecret:      viper.GetString("ADMIN_TOKEN"),
		AllowedOrigins: strings.Split(viper.GetString("ALLOWED_ORIGINS"), ","),
		AuthDisabled:   viper.GetBool("AUTH_DISABLED"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (config *Config) validate() error {
	var errs []error

	if config.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is not set"))
	}

	if config.JWTSecret == "" {
		errs = append(errs, errors.New("ADMIN_TOKEN is not set"))
	}

	if config.Port <= 0 || config.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", config.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	return nil
}
