// =============================================================================
// matic_sku Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the converter configuration. The tool
// runs with no configuration at all: every setting has a default that matches
// the fixed layout of the project (procvlojas.md in, matic_sku_import.csv out).
//
// CONFIGURATION SOURCES (later sources win):
//   1. Built-in defaults
//   2. YAML file (maticsku.yaml in the base directory, or --config)
//   3. Environment variables (MATIC_*), optionally loaded from a .env file
//   4. Command-line flags (applied by the cmd package)
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/maticsku/pkg/utils"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultConfigFile is looked up in the base directory when --config is
	// not given. Its absence is not an error.
	DefaultConfigFile = "maticsku.yaml"

	DefaultInputFile  = "procvlojas.md"
	DefaultOutputFile = "matic_sku_import.csv"
	DefaultEncoding   = "UTF-8"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Environment variable names.
const (
	EnvBaseDir    = "MATIC_BASE_DIR"
	EnvInput      = "MATIC_INPUT"
	EnvOutput     = "MATIC_OUTPUT"
	EnvXLSXOutput = "MATIC_XLSX_OUTPUT"
	EnvSheet      = "MATIC_SHEET"
	EnvEncoding   = "MATIC_ENCODING"
	EnvLogLevel   = "MATIC_LOG_LEVEL"
	EnvLogFormat  = "MATIC_LOG_FORMAT"
)

// ErrUnsupportedEncoding is returned for an encoding name the parser cannot decode.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// supportedEncodings lists the accepted spellings of each encoding.
var supportedEncodings = map[string]bool{
	"utf-8": true, "utf8": true,
	"iso-8859-1": true, "latin1": true, "latin-1": true,
	"windows-1252": true, "cp1252": true,
}

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the converter configuration.
type Config struct {
	// BaseDir is the directory relative paths are resolved against.
	// Default: the working directory, or its parent when that directory is
	// named "scripts".
	BaseDir string `yaml:"base_dir"`

	// InputFile is the tab-delimited export (or .xlsx workbook) to convert.
	// Default: "procvlojas.md"
	InputFile string `yaml:"input_file"`

	// OutputFile is the CSV written for the matic_sku import.
	// Default: "matic_sku_import.csv"
	OutputFile string `yaml:"output_file"`

	// XLSXOutput is an optional workbook written next to the CSV with the
	// same rows. Empty disables it.
	XLSXOutput string `yaml:"xlsx_output"`

	// Sheet selects the worksheet when InputFile is an .xlsx workbook.
	// Empty means the first sheet.
	Sheet string `yaml:"sheet"`

	// Encoding is the character encoding of a text input.
	// Valid values: "UTF-8", "ISO-8859-1", "Windows-1252" (and aliases)
	Encoding string `yaml:"encoding"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the configuration from defaults, the YAML file and the
// environment.
//
// PARAMETERS:
//   - configPath: explicit YAML path. Empty means "<base>/maticsku.yaml",
//     which may be missing. An explicit path must exist.
//   - baseDir: the resolved base directory used when neither the YAML file
//     nor the environment sets one.
func Load(configPath, baseDir string) (*Config, error) {
	cfg := &Config{BaseDir: baseDir}

	// .env is optional, exactly like a missing maticsku.yaml.
	if envPath := filepath.Join(baseDir, ".env"); utils.FileExists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	if base, ok := os.LookupEnv(EnvBaseDir); ok && base != "" {
		cfg.BaseDir = base
	}

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(cfg.BaseDir, DefaultConfigFile)
	}

	if err := cfg.loadFile(configPath, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFile merges the YAML file into cfg.
func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// applyEnv overrides settings with MATIC_* environment variables.
func (c *Config) applyEnv() {
	c.InputFile = getEnv(EnvInput, c.InputFile)
	c.OutputFile = getEnv(EnvOutput, c.OutputFile)
	c.XLSXOutput = getEnv(EnvXLSXOutput, c.XLSXOutput)
	c.Sheet = getEnv(EnvSheet, c.Sheet)
	c.Encoding = getEnv(EnvEncoding, c.Encoding)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.InputFile == "" {
		c.InputFile = DefaultInputFile
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate checks the settings that would otherwise fail halfway through a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputFile) == "" {
		return errors.New("input_file must not be empty")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return errors.New("output_file must not be empty")
	}
	if !supportedEncodings[strings.ToLower(c.Encoding)] {
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, c.Encoding)
	}
	return nil
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// InputPath returns the absolute-or-base-relative input path.
func (c *Config) InputPath() string {
	return c.resolve(c.InputFile)
}

// OutputPath returns the CSV output path.
func (c *Config) OutputPath() string {
	return c.resolve(c.OutputFile)
}

// XLSXOutputPath returns the workbook export path, or "" when disabled.
func (c *Config) XLSXOutputPath() string {
	if c.XLSXOutput == "" {
		return ""
	}
	return c.resolve(c.XLSXOutput)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
