// Package config loads the settings file that points the report at a Quip
// document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file read when none is given.
const DefaultFile = "config_settings.json"

// Defaults applied to optional settings.
const (
	DefaultBaseURL   = "https://platform.quip.com"
	DefaultOutputDir = "output"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrMissingSetting = errors.New("missing setting")
)

type Settings struct {
	QuipAPIKey  string `json:"quip_api_key" yaml:"quip_api_key" toml:"quip_api_key"`
	QuipDocID   string `json:"quip_doc_id" yaml:"quip_doc_id" toml:"quip_doc_id"`
	QuipBaseURL string `json:"quip_base_url" yaml:"quip_base_url" toml:"quip_base_url"`
	OutputDir   string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	RosterFile  string `json:"roster_file" yaml:"roster_file" toml:"roster_file"`
}

// Overrides are values that replace the file's settings when non-empty.
type Overrides struct {
	QuipAPIKey string
	QuipDocID  string
	OutputDir  string
	RosterFile string
}

// Load reads the settings file at path, then applies QUIP_API_KEY and
// QUIP_DOC_ID from the environment and finally the non-empty overrides.
// The file format follows the extension: .yaml/.yml, .toml, anything else
// is JSON.
func Load(path string, o Overrides) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}
	s, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.apply(Overrides{
		QuipAPIKey: os.Getenv("QUIP_API_KEY"),
		QuipDocID:  os.Getenv("QUIP_DOC_ID"),
	})
	s.apply(o)
	return s, nil
}

// Parse decodes settings in the format named by ext and fills defaults.
func Parse(b []byte, ext string) (*Settings, error) {
	s := &Settings{}
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, s)
	case ".toml":
		err = toml.Unmarshal(b, s)
	default:
		err = json.Unmarshal(b, s)
	}
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if s.QuipBaseURL == "" {
		s.QuipBaseURL = DefaultBaseURL
	}
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	return s, nil
}

func (s *Settings) apply(o Overrides) {
	if o.QuipAPIKey != "" {
		s.QuipAPIKey = o.QuipAPIKey
	}
	if o.QuipDocID != "" {
		s.QuipDocID = o.QuipDocID
	}
	if o.OutputDir != "" {
		s.OutputDir = o.OutputDir
	}
	if o.RosterFile != "" {
		s.RosterFile = o.RosterFile
	}
}

// Validate checks that the Quip credentials and document are set.
func (s *Settings) Validate() error {
	var missing []string
	if s.QuipAPIKey == "" {
		missing = append(missing, "quip_api_key")
	}
	if s.QuipDocID == "" {
		missing = append(missing, "quip_doc_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}
	return nil
}

// MaskedKey returns the API key with all but its last four characters hidden.
func (s *Settings) MaskedKey() string {
	k := s.QuipAPIKey
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}
	return strings.Repeat("*", len(k)-4) + k[len(k)-4:]
}
