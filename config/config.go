// Package config carries the externalized dialogue policy data: locale-keyed
// vocabularies and the confidence thresholds. Keeping these out of code means
// a new locale or a new destructive intent is a config change, not a rebuild.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Vocabulary is one locale's token sets.
type Vocabulary struct {
	// Interruptions are intent labels that unconditionally abort a turn.
	Interruptions []string `koanf:"interruptions"`

	// ConfirmationReplies maps reply tokens to the canonical intents
	// "confirm" and "reject".
	ConfirmationReplies map[string]string `koanf:"confirmation_replies"`

	// ReferenceMarkers are the anaphora tokens reference resolution scans
	// for.
	ReferenceMarkers []string `koanf:"reference_markers"`
}

// Config is the dialogue policy configuration.
type Config struct {
	Locale string `koanf:"locale"`

	Thresholds struct {
		// Confirmation is the confidence below which any action is gated
		// behind an explicit confirmation.
		Confirmation float64 `koanf:"confirmation"`

		// ConfidenceFloor is the confidence below which a parsing-stage
		// turn is held for a re-prompt instead of advancing. Zero disables
		// the floor.
		ConfidenceFloor float64 `koanf:"confidence_floor"`
	} `koanf:"thresholds"`

	// DestructiveIntents are always confirmation-gated, regardless of
	// confidence. Not locale-keyed: intent labels come from the
	// understanding collaborator, which emits them in English.
	DestructiveIntents []string `koanf:"destructive_intents"`

	Locales map[string]Vocabulary `koanf:"locales"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"locale":                      "en",
		"thresholds.confirmation":     0.9,
		"thresholds.confidence_floor": 0.7,
		"destructive_intents": []string{
			"delete_memo", "delete_todo", "cancel_event", "delete_all", "clear_data",
		},
		"locales.en.interruptions": []string{
			"cancel", "stop", "abort", "nevermind", "forget_it", "quit", "exit",
		},
		"locales.en.confirmation_replies": map[string]string{
			"yes": "confirm",
			"no":  "reject",
		},
		"locales.en.reference_markers": []string{
			"that", "it", "earlier", "this",
		},
		"locales.ko.interruptions": []string{
			"cancel", "stop", "abort", "취소", "중단", "그만", "나가기",
		},
		"locales.ko.confirmation_replies": map[string]string{
			"yes": "confirm", "no": "reject",
			"네": "confirm", "아니요": "reject",
			"맞아": "confirm", "틀려": "reject",
			"확인": "confirm", "취소": "reject",
		},
		"locales.ko.reference_markers": []string{
			"그것", "그거", "방금", "아까", "그", "이", "저",
		},
	}
}

// Default returns the built-in configuration (locales en and ko).
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults alone cannot fail to load; keep the signature simple for
		// the common case.
		panic(fmt.Sprintf("loading default config: %v", err))
	}
	return cfg
}

// Load reads configuration: built-in defaults, then an optional TOML file,
// then MERE_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	k.Load(confmap.Provider(defaults(), "."), nil)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file not readable: %w", err)
		}
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	k.Load(env.Provider("MERE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "MERE_")), "_", ".", -1)
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the invariants the dialogue core relies on.
func Validate(config *Config) error {
	if config.Locale == "" {
		return fmt.Errorf("locale is required")
	}
	if _, ok := config.Locales[config.Locale]; !ok {
		return fmt.Errorf("no vocabulary configured for locale %q", config.Locale)
	}
	if config.Thresholds.Confirmation < 0 || config.Thresholds.Confirmation > 1 {
		return fmt.Errorf("confirmation threshold %v outside [0,1]", config.Thresholds.Confirmation)
	}
	if config.Thresholds.ConfidenceFloor < 0 || config.Thresholds.ConfidenceFloor > 1 {
		return fmt.Errorf("confidence floor %v outside [0,1]", config.Thresholds.ConfidenceFloor)
	}
	for token, canonical := range config.Locales[config.Locale].ConfirmationReplies {
		if canonical != "confirm" && canonical != "reject" {
			return fmt.Errorf("confirmation reply %q maps to unknown canonical intent %q", token, canonical)
		}
	}
	return nil
}

// Vocabulary returns the token sets for the configured locale.
func (c *Config) Vocabulary() Vocabulary {
	return c.Locales[c.Locale]
}
