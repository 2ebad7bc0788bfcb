package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"zero fov", func(c *Config) { c.FOV = 0 }, true},
		{"straight fov", func(c *Config) { c.FOV = 180 }, true},
		{"NaN fov", func(c *Config) { c.FOV = math.NaN() }, true},
		{"negative radius", func(c *Config) { c.Sphere.Radius = -1 }, true},
		{"short center", func(c *Config) { c.Sphere.Center = []float64{0, 0} }, true},
		{"infinite color", func(c *Config) { c.HitColor = []float64{math.Inf(1), 0, 0} }, true},
		{"out of range color is fine", func(c *Config) { c.BackgroundColor = []float64{-1, 2, 0.5} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.expectError && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	data := []byte(`
width: 320
height: "240"
fov: 60
sphere:
  center: [1, -0.5, -8]
hit_color: [0, 1, 0]
report_backfacing_hits: false
workers: 3
output: frame.png
quantize: round
`)

	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.Width != 320 || cfg.Height != 240 || cfg.FOV != 60 {
		t.Errorf("Unexpected camera values %dx%d fov %v", cfg.Width, cfg.Height, cfg.FOV)
	}
	if len(cfg.Sphere.Center) != 3 || cfg.Sphere.Center[0] != 1 || cfg.Sphere.Center[1] != -0.5 || cfg.Sphere.Center[2] != -8 {
		t.Errorf("Unexpected sphere center %v", cfg.Sphere.Center)
	}
	if cfg.Sphere.Radius != 1.0 {
		t.Errorf("Expected default radius to survive, got %v", cfg.Sphere.Radius)
	}
	if cfg.HitColor[1] != 1 || cfg.HitColor[0] != 0 {
		t.Errorf("Unexpected hit color %v", cfg.HitColor)
	}
	if cfg.BackgroundColor[0] != 0.2 || cfg.BackgroundColor[1] != 0.7 || cfg.BackgroundColor[2] != 1.0 {
		t.Errorf("Expected default background, got %v", cfg.BackgroundColor)
	}
	if cfg.ReportBackfacingHits {
		t.Error("Expected report_backfacing_hits to be false")
	}
	if cfg.Workers != 3 || cfg.Output != "frame.png" || cfg.Quantize != "round" {
		t.Errorf("Unexpected output settings %+v", cfg)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Output != "output.ppm" {
		t.Errorf("Expected defaults for empty config, got %+v", cfg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "widht: 100\n"},
		{"short center", "sphere:\n  center: [0, 0]\n"},
		{"bad radius", "sphere:\n  radius: -2\n"},
		{"bad fov", "fov: 200\n"},
		{"wrong type", "width: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := ParseConfig([]byte("width: [unterminated")); err == nil {
		t.Error("Expected YAML syntax error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("width: 16\nheight: 9\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 9 {
		t.Errorf("Expected 16x9, got %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
