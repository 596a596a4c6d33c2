package priorityadapter

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the writer configuration block accepted by NewFromConfig. Sink is
// never decoded; the caller supplies it after parsing.
type Config struct {
	// Sink is required and must be accepted by AsSink.
	Sink any `yaml:"-" ignored:"true"`

	TranslationOverrides  map[Priority]Level `yaml:"translations" envconfig:"TRANSLATIONS"`
	IncludeEventAsContext bool               `yaml:"includeEventAsContext" envconfig:"INCLUDE_EVENT_AS_CONTEXT"`
	FallbackLevel         Level              `yaml:"fallbackLevel" envconfig:"FALLBACK_LEVEL"`
}

// ParseConfig decodes a YAML configuration block such as:
//
//	translations:
//	  7: emergency
//	  8: alert
//	includeEventAsContext: true
//	fallbackLevel: notice
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("priorityadapter: parse config: %w", err)
	}
	return cfg, nil
}

// ConfigFromEnv reads the configuration from environment variables named
// PREFIX_TRANSLATIONS ("7:emergency,8:alert"), PREFIX_INCLUDE_EVENT_AS_CONTEXT
// and PREFIX_FALLBACK_LEVEL.
func ConfigFromEnv(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("priorityadapter: read environment: %w", err)
	}
	return cfg, nil
}

// Options returns the construction options described by cfg.
func (cfg Config) Options() []Option {
	return []Option{
		WithTranslations(cfg.TranslationOverrides),
		WithEventContext(cfg.IncludeEventAsContext),
		WithFallbackLevel(cfg.FallbackLevel),
	}
}

// NewFromConfig is the writer factory: it builds a Translator from cfg.
func NewFromConfig(cfg Config) (*Translator, error) {
	return New(cfg.Sink, cfg.Options()...)
}
