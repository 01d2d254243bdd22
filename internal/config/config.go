// Package config builds the immutable runtime configuration.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries every tunable of the detection pipeline and calculator.
// It is built once at startup and passed explicitly to each component;
// nothing mutates it afterwards.
type Config struct {
	// Box detection
	BoxThreshold  float64 `mapstructure:"box_threshold"`   // binary-inverse cutoff, 0-255
	PolyTolerance float64 `mapstructure:"poly_tolerance"`  // polygon approximation, fraction of perimeter
	MinBoxArea    float64 `mapstructure:"min_box_area"`    // fraction of source area, inclusive
	MaxBoxArea    float64 `mapstructure:"max_box_area"`    // fraction of source area, exclusive

	// Selection classification
	SelectedThreshold float64 `mapstructure:"selected_threshold"` // activation ratio cutoff
	SelectedChannel   int     `mapstructure:"selected_channel"`   // RGBA channel index of the highlight fill

	// Text recognition
	OCRInset     float64 `mapstructure:"ocr_inset"`     // fractional crop margin
	OCRThreshold float64 `mapstructure:"ocr_threshold"` // binary cutoff, 0-255
	MinTextLen   int     `mapstructure:"min_text_len"`  // shorter OCR output is discarded
	FuzzyCutoff  float64 `mapstructure:"fuzzy_cutoff"`  // minimum similarity ratio
	TessdataPath string  `mapstructure:"tessdata_path"` // empty = system default

	// Scanner
	CaptureIntervalMs int `mapstructure:"capture_interval_ms"`
	CaptureDisplay    int `mapstructure:"capture_display"`
	// Capture sub-region in screen coordinates; all zero captures the
	// whole display.
	CaptureX int `mapstructure:"capture_x"`
	CaptureY int `mapstructure:"capture_y"`
	CaptureW int `mapstructure:"capture_w"`
	CaptureH int `mapstructure:"capture_h"`

	// Catalog
	CatalogPath string `mapstructure:"catalog_path"`
	AvatarDir   string `mapstructure:"avatar_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("box_threshold", 140.0)
	v.SetDefault("poly_tolerance", 0.09)
	v.SetDefault("min_box_area", 0.005)
	v.SetDefault("max_box_area", 0.250)
	v.SetDefault("selected_threshold", 0.5)
	// The highlight fill is read from the blue channel. Frames arrive in
	// RGBA order, so this is index 2; flip to 0 for BGR capture paths.
	v.SetDefault("selected_channel", 2)
	v.SetDefault("ocr_inset", 0.05)
	v.SetDefault("ocr_threshold", 160.0)
	v.SetDefault("min_text_len", 3)
	v.SetDefault("fuzzy_cutoff", 0.5)
	v.SetDefault("tessdata_path", "")
	v.SetDefault("capture_interval_ms", 500)
	v.SetDefault("capture_display", 0)
	v.SetDefault("capture_x", 0)
	v.SetDefault("capture_y", 0)
	v.SetDefault("capture_w", 0)
	v.SetDefault("capture_h", 0)
	v.SetDefault("catalog_path", "data/pool.json")
	v.SetDefault("avatar_dir", "data/avatars")
}

// Default returns the built-in configuration without touching disk.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Load reads retag.yaml from the given directory (if present) plus RETAG_*
// environment overrides, on top of the defaults. A missing config file is
// not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("retag")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("retag")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
