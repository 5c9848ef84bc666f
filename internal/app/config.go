package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/dawaclient/internal/dawa"
)

// Config holds everything one lookup needs.
type Config struct {
	StreetName  string
	HouseNumber string

	RegistryURL string `validate:"required,url"`
	LogFormat   string `validate:"oneof=text json"`
	LogLevel    string `validate:"oneof=debug info warn error"`
}

var configValidator = validator.New()

// DefaultConfig returns a Config pointing at the public registry with text
// logging at info level. Street name and house number are left empty.
func DefaultConfig() Config {
	return Config{
		RegistryURL: dawa.DefaultBaseURL,
		LogFormat:   "text",
		LogLevel:    "info",
	}
}

// NewConfig validates cfg and returns a copy. The street name and house
// number are taken as given; their content is never checked.
func NewConfig(cfg Config) (*Config, error) {
	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
