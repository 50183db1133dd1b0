// Package config loads settings for the recipe command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/KimNorgaard/go-recipe"
	"github.com/KimNorgaard/go-recipe/export"
)

// Config represents the command configuration.
type Config struct {
	Format FormatConfig `mapstructure:"format"`
	Export ExportConfig `mapstructure:"export"`
	Node   NodeConfig   `mapstructure:"node"`
}

// FormatConfig controls the text layout of encoded recipes.
type FormatConfig struct {
	// Indent is the number of spaces per nesting level. Zero selects the
	// single-line layout.
	Indent int `mapstructure:"indent"`
}

// ExportConfig controls the export command.
type ExportConfig struct {
	Format string `mapstructure:"format"`
}

// NodeConfig names the node used when a recipe is written without one.
type NodeConfig struct {
	Name string `mapstructure:"name"`
}

// Load reads recipe.yaml from the working directory, or the file at path
// when path is not empty. A missing recipe.yaml falls back to defaults; a
// missing explicit file is an error. RECIPE_* environment variables
// override both, e.g. RECIPE_FORMAT_INDENT=2.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("format.indent", 4)
	v.SetDefault("export.format", string(export.YAML))
	v.SetDefault("node.name", "recipe")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("recipe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("recipe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options returns the encoding options selected by cfg.
func (c *Config) Options() []recipe.Option {
	return []recipe.Option{recipe.Indent(c.Format.Indent)}
}

func validateConfig(cfg *Config) error {
	if cfg.Format.Indent < 0 {
		return fmt.Errorf("format.indent must not be negative, got: %d", cfg.Format.Indent)
	}
	if _, err := export.ParseFormat(cfg.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if cfg.Node.Name == "" {
		return errors.New("node.name must not be empty")
	}
	return nil
}
