package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration cannot describe a renderable scene
var ErrInvalidConfig = errors.New("invalid scene config")

// SphereConfig describes the single sphere in the scene
type SphereConfig struct {
	Center []float64 `mapstructure:"center"`
	Radius float64   `mapstructure:"radius"`
}

// Config holds every tunable of a render. Zero values are never used
// directly: LoadConfig layers file values over DefaultConfig.
type Config struct {
	Width                int          `mapstructure:"width"`
	Height               int          `mapstructure:"height"`
	FOV                  float64      `mapstructure:"fov"`
	Sphere               SphereConfig `mapstructure:"sphere"`
	HitColor             []float64    `mapstructure:"hit_color"`
	BackgroundColor      []float64    `mapstructure:"background_color"`
	ReportBackfacingHits bool         `mapstructure:"report_backfacing_hits"`
	Workers              int          `mapstructure:"workers"`  // <= 0 uses every CPU
	Output               string       `mapstructure:"output"`   // Output file path
	Format               string       `mapstructure:"format"`   // ppm, png or bmp; empty derives from Output
	Quantize             string       `mapstructure:"quantize"` // truncate or round
}

// DefaultConfig returns the configuration of the standard render
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		FOV:    90.0,
		Sphere: SphereConfig{
			Center: []float64{0, 0, -5},
			Radius: 1.0,
		},
		HitColor:             []float64{1, 0, 0},
		BackgroundColor:      []float64{0.2, 0.7, 1.0},
		ReportBackfacingHits: true,
		Output:               "output.ppm",
		Quantize:             "truncate",
	}
}

// Validate checks that the configuration describes a renderable scene
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("%w: fov %v must be in (0, 180) degrees", ErrInvalidConfig, c.FOV)
	}
	if !(c.Sphere.Radius > 0) || math.IsInf(c.Sphere.Radius, 0) {
		return fmt.Errorf("%w: sphere radius %v must be positive", ErrInvalidConfig, c.Sphere.Radius)
	}

	vectors := []struct {
		name  string
		value []float64
	}{
		{"sphere.center", c.Sphere.Center},
		{"hit_color", c.HitColor},
		{"background_color", c.BackgroundColor},
	}
	for _, v := range vectors {
		if len(v.value) != 3 {
			return fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidConfig, v.name, len(v.value))
		}
		if !vecFromSlice(v.value).IsFinite() {
			return fmt.Errorf("%w: %s has non-finite component", ErrInvalidConfig, v.name)
		}
	}
	return nil
}

// LoadConfig reads a YAML scene file and layers it over DefaultConfig.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data over DefaultConfig and validates the result
func ParseConfig(data []byte) (Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	cfg := DefaultConfig()
	// Lists present in the file replace the defaults instead of overlaying them
	if _, ok := raw["hit_color"]; ok {
		cfg.HitColor = nil
	}
	if _, ok := raw["background_color"]; ok {
		cfg.BackgroundColor = nil
	}
	if sphere, ok := raw["sphere"].(map[string]interface{}); ok {
		if _, ok := sphere["center"]; ok {
			cfg.Sphere.Center = nil
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
