package listing

import (
	"fmt"
	"os"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// Config holds the listing engine settings.
type Config struct {
	DefaultLimit    int      `yaml:"default_limit"`
	MaxLimit        int      `yaml:"max_limit"`
	SearchIndex     string   `yaml:"search_index"`
	SearchPaths     []string `yaml:"search_paths"`
	SortableFields  []string `yaml:"sortable_fields"`
	OwnerCollection string   `yaml:"owner_collection"`
}

// DefaultConfig returns the listing defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLimit:    10,
		MaxLimit:        100,
		SearchIndex:     "search-videos",
		SearchPaths:     []string{model.FieldTitle, model.FieldDescription},
		SortableFields:  []string{model.FieldViews, model.FieldCreatedAt, model.FieldDuration},
		OwnerCollection: "users",
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.DefaultLimit == 0 {
		c.DefaultLimit = defaults.DefaultLimit
	}
	if c.MaxLimit == 0 {
		c.MaxLimit = defaults.MaxLimit
	}
	if c.SearchIndex == "" {
		c.SearchIndex = defaults.SearchIndex
	}
	if len(c.SearchPaths) == 0 {
		c.SearchPaths = defaults.SearchPaths
	}
	if len(c.SortableFields) == 0 {
		c.SortableFields = defaults.SortableFields
	}
	if c.OwnerCollection == "" {
		c.OwnerCollection = defaults.OwnerCollection
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("LISTING_SEARCH_INDEX"); val != "" {
		c.SearchIndex = val
	}
}

// ResolvePaths resolves relative paths using the given directories.
// No paths to resolve in listing config.
func (c *Config) ResolvePaths(_, _ string) { _ = c }

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("listing.default_limit must be positive")
	}
	if c.MaxLimit < 1 {
		return fmt.Errorf("listing.max_limit must be positive")
	}
	if c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("listing.default_limit cannot exceed listing.max_limit")
	}
	if c.SearchIndex == "" {
		return fmt.Errorf("listing.search_index is required")
	}
	if c.OwnerCollection == "" {
		return fmt.Errorf("listing.owner_collection is required")
	}
	return nil
}

// PipelineOptions extracts the builder settings from the config.
func (c Config) PipelineOptions() PipelineOptions {
	return PipelineOptions{
		SearchIndex:     c.SearchIndex,
		SearchPaths:     c.SearchPaths,
		OwnerCollection: c.OwnerCollection,
	}
}
