// Package config loads and validates the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-simplex2docx/internal/assets"
	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// AppDirName is the directory searched under os.UserConfigDir().
const AppDirName = "go-simplex2docx"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// Limits on config content.
const (
	MaxFileSize      = 1 << 20 // 1MB
	MaxPathLength    = 4096    // PATH_MAX on Linux
	MaxPrefixLength  = 64      // "output_"
	MaxPhraseLength  = 200     // one marker phrase
	MaxPhrases       = 16      // phrases per marker group
	MaxHeaderLength  = 100     // excluded column header
	MaxHeadingLength = 200     // heading format
	MaxStyleLength   = 64      // style sheet name
)

var hexFill = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Config holds all configuration for a conversion run.
// Zero values mean "not set": the CLI falls back to built-in defaults.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Markers   MarkersConfig   `yaml:"markers"`
	Highlight HighlightConfig `yaml:"highlight"`
	Document  DocumentConfig  `yaml:"document"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// InputConfig defines where reports are read from.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where documents are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"` // prepended to the report base name
}

// MarkersConfig overrides the phrases that locate report sections.
type MarkersConfig struct {
	Objective   []string `yaml:"objective"`
	Constraints []string `yaml:"constraints"`
	Final       []string `yaml:"final"`
}

// HighlightConfig overrides pivot detection and shading.
type HighlightConfig struct {
	SourceFill    string `yaml:"sourceFill"`
	ExcludeHeader string `yaml:"excludeHeader"`
	OutputFill    string `yaml:"outputFill"`
}

// DocumentConfig defines headings and the style sheet.
type DocumentConfig struct {
	FileHeading  string `yaml:"fileHeading"`  // one %s verb
	TableHeading string `yaml:"tableHeading"` // one %d verb
	Style        string `yaml:"style"`        // name in internal/assets/styles/
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks lengths and formats of every set field.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	paths := []struct{ name, value string }{
		{"input.dir", c.Input.Dir},
		{"output.dir", c.Output.Dir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("output.prefix", c.Output.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Output.Prefix, "/\\\x00") {
		return fmt.Errorf("%w: output.prefix: %q contains a path separator", ErrInvalidField, c.Output.Prefix)
	}

	groups := []struct {
		name    string
		phrases []string
	}{
		{"markers.objective", c.Markers.Objective},
		{"markers.constraints", c.Markers.Constraints},
		{"markers.final", c.Markers.Final},
	}
	for _, g := range groups {
		if err := validatePhrases(g.name, g.phrases); err != nil {
			return err
		}
	}

	fills := []struct{ name, value string }{
		{"highlight.sourceFill", c.Highlight.SourceFill},
		{"highlight.outputFill", c.Highlight.OutputFill},
	}
	for _, f := range fills {
		if f.value != "" && !hexFill.MatchString(f.value) {
			return fmt.Errorf("%w: %s: %q is not a 6-digit hex color", ErrInvalidField, f.name, f.value)
		}
	}
	if err := validateFieldLength("highlight.excludeHeader", c.Highlight.ExcludeHeader, MaxHeaderLength); err != nil {
		return err
	}

	if err := validateHeading("document.fileHeading", c.Document.FileHeading, "%s"); err != nil {
		return err
	}
	if err := validateHeading("document.tableHeading", c.Document.TableHeading, "%d"); err != nil {
		return err
	}
	if c.Document.Style != "" {
		if err := validateFieldLength("document.style", c.Document.Style, MaxStyleLength); err != nil {
			return err
		}
		if err := assets.ValidateAssetName(c.Document.Style); err != nil {
			return fmt.Errorf("%w: document.style: %v", ErrInvalidField, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validatePhrases(fieldName string, phrases []string) error {
	if len(phrases) > MaxPhrases {
		return fmt.Errorf("%w: %s (%d phrases, max %d)", ErrFieldTooLong, fieldName, len(phrases), MaxPhrases)
	}
	for i, p := range phrases {
		name := fmt.Sprintf("%s[%d]", fieldName, i)
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: %s is blank", ErrInvalidField, name)
		}
		if err := validateFieldLength(name, p, MaxPhraseLength); err != nil {
			return err
		}
	}
	return nil
}

// validateHeading checks an optional heading format carries exactly one verb.
func validateHeading(fieldName, format, verb string) error {
	if format == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, format, MaxHeadingLength); err != nil {
		return err
	}
	rest := strings.ReplaceAll(format, "%%", "")
	if strings.Count(rest, "%") != 1 || !strings.Contains(rest, verb) {
		return fmt.Errorf("%w: %s: %q must contain exactly one %s", ErrInvalidField, fieldName, format, verb)
	}
	return nil
}

// DefaultConfig returns a configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parse decodes data strictly: unknown keys are errors.
func parse(data []byte) (*Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrConfigParse)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxFileSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w:\n%s", ErrConfigParse, yaml.FormatError(err, false, true))
	}
	return &cfg, nil
}

// SearchPaths returns the files tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under
// os.UserConfigDir()/go-simplex2docx/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
