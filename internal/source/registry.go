package source

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// Registry holds the configuration for all tabular feeds.
type Registry struct {
	Sources []Config `yaml:"sources"`
}

// FetchConfig bounds the remote fetch. A hung feed is treated as unavailable
// once the timeout elapses, which routes refresh onto the fallback dataset.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"` // Default: 15
}

// Config declares a single spreadsheet-backed feed.
type Config struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	SpreadsheetID string `yaml:"spreadsheet_id"`
	ReadRange     string `yaml:"read_range"`
	APIKey        string `yaml:"api_key,omitempty"`
	// CredentialsFile enables write-back (row append) when set; reads only
	// need the API key.
	CredentialsFile string `yaml:"credentials_file,omitempty"`
	Active          bool   `yaml:"active"`

	Fetch FetchConfig `yaml:"fetch,omitempty"`
}

// LoadRegistry reads the source declarations. A file at path overrides the
// embedded sources.yaml, for local development; when path is empty or the
// file is missing the embedded copy is used.
func LoadRegistry(path string) (*Registry, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	}
	if path == "" || err != nil {
		data, err = sourcesYAML.ReadFile("config/sources.yaml")
		if err != nil {
			return nil, err
		}
	}

	// Expand environment variables within the YAML content (e.g. ${SHEET_ID})
	expanded := os.ExpandEnv(string(data))

	var reg Registry
	if err := yaml.Unmarshal([]byte(expanded), &reg); err != nil {
		return nil, err
	}

	return &reg, nil
}

// ActiveSource returns the first active feed declaration.
func (r *Registry) ActiveSource() (Config, error) {
	for _, src := range r.Sources {
		if src.Active {
			return src, nil
		}
	}
	return Config{}, fmt.Errorf("no active source in registry")
}
