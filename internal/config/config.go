package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/simdoc/internal/constants"
)

// Config represents the simdoc configuration structure, loaded from
// .simdoc.toml or simdoc.toml.
type Config struct {
	// Input holds corpus selection configuration
	Input InputConfig `mapstructure:"input" toml:"input" yaml:"input"`

	// Sketch holds sketching and join configuration
	Sketch SketchConfig `mapstructure:"sketch" toml:"sketch" yaml:"sketch"`

	// Tokenizer holds feature extraction configuration
	Tokenizer TokenizerConfig `mapstructure:"tokenizer" toml:"tokenizer" yaml:"tokenizer"`

	// Weighting holds TF-IDF configuration for the cosine pipeline
	Weighting WeightingConfig `mapstructure:"weighting" toml:"weighting" yaml:"weighting"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
}

// InputConfig holds corpus selection configuration
type InputConfig struct {
	// IncludePatterns selects document files when the input is a directory
	IncludePatterns []string `mapstructure:"include_patterns" toml:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns filters out matching files
	ExcludePatterns []string `mapstructure:"exclude_patterns" toml:"exclude_patterns" yaml:"exclude_patterns"`
}

// SketchConfig holds sketching and join configuration
type SketchConfig struct {
	// Chunks is the sketch width in 64-bit words (dimensions = chunks*64)
	Chunks int `mapstructure:"chunks" toml:"chunks" yaml:"chunks"`

	// Radius is the normalized Hamming search radius in [0, 1]
	Radius float64 `mapstructure:"radius" toml:"radius" yaml:"radius"`

	// Seed drives all derived hash material; a negative value means a
	// random seed per run
	Seed int64 `mapstructure:"seed" toml:"seed" yaml:"seed"`
}

// TokenizerConfig holds feature extraction configuration
type TokenizerConfig struct {
	// WindowSize is the w-shingling window (>= 1)
	WindowSize int `mapstructure:"window_size" toml:"window_size" yaml:"window_size"`

	// Delimiter recognizes words as tokens; empty means character tokens
	Delimiter string `mapstructure:"delimiter" toml:"delimiter" yaml:"delimiter"`
}

// WeightingConfig holds TF-IDF configuration
type WeightingConfig struct {
	// TF is the term-frequency scheme: "", "standard", or "sublinear"
	TF string `mapstructure:"tf" toml:"tf" yaml:"tf"`

	// IDF is the inverse-document-frequency scheme: "", "standard", or "smooth"
	IDF string `mapstructure:"idf" toml:"idf" yaml:"idf"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format specifies the output format: csv, text, json, yaml
	Format string `mapstructure:"format" toml:"format" yaml:"format"`

	// SortBy orders result pairs: "pair" or "distance"
	SortBy string `mapstructure:"sort_by" toml:"sort_by" yaml:"sort_by"`

	// ShowProgress enables progress bars on interactive terminals
	ShowProgress bool `mapstructure:"show_progress" toml:"show_progress" yaml:"show_progress"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			IncludePatterns: append([]string(nil), constants.DefaultIncludePatterns...),
			ExcludePatterns: []string{},
		},
		Sketch: SketchConfig{
			Chunks: constants.DefaultNumChunks,
			Radius: constants.DefaultRadius,
			Seed:   -1,
		},
		Tokenizer: TokenizerConfig{
			WindowSize: constants.DefaultWindowSize,
		},
		Output: OutputConfig{
			Format:       "csv",
			SortBy:       "pair",
			ShowProgress: true,
		},
	}
}

// ConfigFileNames are the recognized configuration files, in priority order.
var ConfigFileNames = []string{".simdoc.toml", "simdoc.toml"}

// TomlConfigLoader discovers and loads TOML configuration.
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a config loader.
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// GetSupportedConfigFiles returns the recognized file names in priority order.
func (l *TomlConfigLoader) GetSupportedConfigFiles() []string {
	return append([]string(nil), ConfigFileNames...)
}

// LoadConfig loads configuration from the first recognized file under
// workDir, falling back to defaults when none exists.
func (l *TomlConfigLoader) LoadConfig(workDir string) (*Config, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err == nil {
			return l.LoadConfigFromFile(path)
		}
	}
	return DefaultConfig(), nil
}

// LoadConfigFromFile loads configuration from an explicit path. Values not
// present in the file keep their defaults.
func (l *TomlConfigLoader) LoadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// setDefaults registers the built-in defaults with viper so partial files
// merge cleanly.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("input.include_patterns", defaults.Input.IncludePatterns)
	v.SetDefault("input.exclude_patterns", defaults.Input.ExcludePatterns)
	v.SetDefault("sketch.chunks", defaults.Sketch.Chunks)
	v.SetDefault("sketch.radius", defaults.Sketch.Radius)
	v.SetDefault("sketch.seed", defaults.Sketch.Seed)
	v.SetDefault("tokenizer.window_size", defaults.Tokenizer.WindowSize)
	v.SetDefault("tokenizer.delimiter", defaults.Tokenizer.Delimiter)
	v.SetDefault("weighting.tf", defaults.Weighting.TF)
	v.SetDefault("weighting.idf", defaults.Weighting.IDF)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.sort_by", defaults.Output.SortBy)
	v.SetDefault("output.show_progress", defaults.Output.ShowProgress)
}
