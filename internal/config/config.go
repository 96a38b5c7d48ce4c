// Package config loads the command-line tool's settings from an optional
// YAML file, a .env file and SLIDELAYOUT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/slidelayout/layout"
	"github.com/tsawler/slidelayout/media"
)

// Environment variables read by Load.
const (
	EnvSlideClass = "SLIDELAYOUT_SLIDE_CLASS"
	EnvPrecision  = "SLIDELAYOUT_PRECISION"
	EnvLogLevel   = "SLIDELAYOUT_LOG_LEVEL"
	EnvLogFormat  = "SLIDELAYOUT_LOG_FORMAT"
	EnvOCR        = "SLIDELAYOUT_OCR"
)

// Config holds all settings of the tool.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Media  MediaConfig  `yaml:"media"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig mirrors layout.Config.
type EngineConfig struct {
	SlideClass         string          `yaml:"slide_class" validate:"required"`
	RowTolerance       float64         `yaml:"row_tolerance" validate:"gte=0"`
	Precision          int             `yaml:"precision" validate:"gte=-1,lte=10"`
	MinExtent          float64         `yaml:"min_extent" validate:"gt=0"`
	ClipToSlide        bool            `yaml:"clip_to_slide"`
	FooterClass        string          `yaml:"footer_class"`
	FlexGroupClasses   []string        `yaml:"flex_group_classes"`
	Clusters           []ClusterConfig `yaml:"clusters" validate:"dive"`
	MaxListDepth       int             `yaml:"max_list_depth" validate:"gte=1"`
	KeepEmptyFlexItems bool            `yaml:"keep_empty_flex_items"`
}

// ClusterConfig declares one composite cluster class.
type ClusterConfig struct {
	Class string `yaml:"class" validate:"required"`
	Mode  string `yaml:"mode" validate:"oneof=pair all"`
}

// MediaConfig controls image probing for HTML fixtures.
type MediaConfig struct {
	Probe    bool          `yaml:"probe"`
	OCR      bool          `yaml:"ocr"`
	CacheTTL time.Duration `yaml:"cache_ttl" validate:"gte=0"`
	MaxBytes int64         `yaml:"max_bytes"`
}

// OutputConfig controls the JSON encoding.
type OutputConfig struct {
	// Indent is the per-level indentation; empty produces compact JSON.
	Indent string `yaml:"indent"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// DefaultConfig returns the settings used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	engine := layout.DefaultConfig()
	m := media.DefaultConfig()

	clusters := make([]ClusterConfig, len(engine.Clusters))
	for i, c := range engine.Clusters {
		clusters[i] = ClusterConfig{Class: c.Class, Mode: c.Mode.String()}
	}

	return &Config{
		Engine: EngineConfig{
			SlideClass:         engine.SlideClass,
			RowTolerance:       engine.RowTolerance,
			Precision:          engine.Precision,
			MinExtent:          engine.MinExtent,
			ClipToSlide:        engine.ClipToSlide,
			FooterClass:        engine.FooterClass,
			FlexGroupClasses:   engine.FlexGroupClasses,
			Clusters:           clusters,
			MaxListDepth:       engine.MaxListDepth,
			KeepEmptyFlexItems: engine.KeepEmptyFlexItems,
		},
		Media: MediaConfig{
			CacheTTL: m.CacheTTL,
			MaxBytes: m.MaxBytes,
		},
		Output: OutputConfig{Indent: "  "},
		Log:    LogConfig{Level: "warn", Format: "console"},
	}
}

// Load reads configuration: defaults, then the YAML file at path (if not
// empty), then a .env file in the working directory, then environment
// variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// a missing .env is not an error
	_ = godotenv.Load()

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		msgs := make([]string, len(invalid))
		for i, fe := range invalid {
			msgs[i] = fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}

// LayoutConfig converts the engine section into an engine configuration.
func (c *Config) LayoutConfig() layout.Config {
	lc := layout.DefaultConfig()
	e := c.Engine

	lc.SlideClass = e.SlideClass
	lc.RowTolerance = e.RowTolerance
	lc.Precision = e.Precision
	lc.MinExtent = e.MinExtent
	lc.ClipToSlide = e.ClipToSlide
	lc.FooterClass = e.FooterClass
	lc.FlexGroupClasses = append([]string(nil), e.FlexGroupClasses...)
	lc.MaxListDepth = e.MaxListDepth
	lc.KeepEmptyFlexItems = e.KeepEmptyFlexItems

	lc.Clusters = make([]layout.ClusterRule, len(e.Clusters))
	for i, cl := range e.Clusters {
		mode := layout.ClusterPair
		if cl.Mode == "all" {
			mode = layout.ClusterAll
		}
		lc.Clusters[i] = layout.ClusterRule{Class: cl.Class, Mode: mode}
	}
	return lc
}

// ProberConfig converts the media section for images under baseDir.
func (c *Config) ProberConfig(baseDir string) media.Config {
	return media.Config{
		BaseDir:  baseDir,
		CacheTTL: c.Media.CacheTTL,
		MaxBytes: c.Media.MaxBytes,
	}
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvSlideClass); v != "" {
		cfg.Engine.SlideClass = v
	}

	if v := os.Getenv(EnvPrecision); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPrecision, v, err)
		}
		cfg.Engine.Precision = p
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}

	if v := os.Getenv(EnvOCR); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvOCR, v, err)
		}
		cfg.Media.OCR = on
	}
	return nil
}
