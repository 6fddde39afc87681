// Package config loads coursedash configuration from an optional YAML
// file with environment overrides.
//
// Precedence, lowest to highest: built-in defaults, YAML file, COURSEDASH_*
// environment variables. YAML decoding is strict: unknown fields are
// rejected so typos fail loudly instead of being silently ignored.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/campusworks/coursedash/internal/record"
)

// Environment variable names.
const (
	EnvBaseURL = "COURSEDASH_BASE_URL"
	EnvAPIKey  = "COURSEDASH_API_KEY"
)

// Config holds everything the CLI needs to reach the record store.
type Config struct {
	// BaseURL is the record store root, e.g.
	// "https://courseadmin-abcd.restdb.io". Required.
	BaseURL string `yaml:"base_url"`

	// APIKey authenticates every request. Required for the hosted store.
	APIKey string `yaml:"api_key"`

	// Collections are the five pre-registered collection tokens. They are
	// configuration, not user input; override only when the store was set
	// up with non-default names.
	Collections CollectionTokens `yaml:"collections"`
}

// CollectionTokens names the five collections at the store.
type CollectionTokens struct {
	Rooms         string `yaml:"rooms"`
	Instructors   string `yaml:"instructors"`
	Courses       string `yaml:"courses"`
	Participants  string `yaml:"participants"`
	Registrations string `yaml:"registrations"`
}

// Default returns the configuration defaults: standard collection tokens,
// no base URL, no key.
func Default() Config {
	return Config{
		Collections: CollectionTokens{
			Rooms:         string(record.Rooms),
			Instructors:   string(record.Instructors),
			Courses:       string(record.Courses),
			Participants:  string(record.Participants),
			Registrations: string(record.Registrations),
		},
	}
}

// Load builds the effective configuration. path may be empty, in which
// case only defaults and environment apply; a non-empty path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true) // Reject unknown fields (catches typos)
		if err := decoder.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		cfg.APIKey = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required values are present.
func (c Config) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "base_url ("+EnvBaseURL+")")
	}
	for name, token := range map[string]string{
		"collections.rooms":         c.Collections.Rooms,
		"collections.instructors":   c.Collections.Instructors,
		"collections.courses":       c.Collections.Courses,
		"collections.participants":  c.Collections.Participants,
		"collections.registrations": c.Collections.Registrations,
	} {
		if token == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing) // map iteration order is random
		return errors.New("missing configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

// RecordCollections converts the configured tokens to the typed form the
// store client takes.
func (c Config) RecordCollections() record.Collections {
	return record.Collections{
		Rooms:         record.Collection(c.Collections.Rooms),
		Instructors:   record.Collection(c.Collections.Instructors),
		Courses:       record.Collection(c.Collections.Courses),
		Participants:  record.Collection(c.Collections.Participants),
		Registrations: record.Collection(c.Collections.Registrations),
	}
}
