package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	VerificationToken string `envconfig:"VERIFICATION_TOKEN" required:"true"`
	DataRoot          string `envconfig:"DATA_ROOT" default:"./data"`
	HTTPAddr          string `envconfig:"HTTP_ADDR" default:":8080"`
	SlashPath         string `envconfig:"SLASH_PATH" default:"/glt/request"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
