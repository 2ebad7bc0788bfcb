package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, log.Default()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// parseArgs builds the render configuration from defaults, an optional YAML
// config file and command line flags, in increasing order of precedence
func parseArgs(args []string, out io.Writer) (scene.Config, error) {
	defaults := scene.DefaultConfig()

	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "YAML scene config file")
	output := fs.String("output", defaults.Output, "Output image path")
	format := fs.String("format", "", "Output format: ppm, png or bmp (default: from output extension)")
	width := fs.Int("width", defaults.Width, "Image width in pixels")
	height := fs.Int("height", defaults.Height, "Image height in pixels")
	fov := fs.Float64("fov", defaults.FOV, "Field of view in degrees")
	workers := fs.Int("workers", defaults.Workers, "Concurrent scanline workers (0 = all CPUs)")
	forwardOnly := fs.Bool("forward-hits-only", false, "Ignore sphere intersections behind the camera")
	round := fs.Bool("round", false, "Round color channels instead of truncating")
	fs.Usage = func() {
		fmt.Fprintln(out, "Sphere Raycaster")
		fmt.Fprintln(out, "Usage: raycaster [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "With no options the default scene is written to output.ppm")
	}

	if err := fs.Parse(args); err != nil {
		return scene.Config{}, err
	}
	if fs.NArg() > 0 {
		return scene.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := scene.LoadConfig(*configPath)
		if err != nil {
			return scene.Config{}, err
		}
		cfg = loaded
	}

	// Only flags given explicitly override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fov":
			cfg.FOV = *fov
		case "workers":
			cfg.Workers = *workers
		case "forward-hits-only":
			cfg.ReportBackfacingHits = !*forwardOnly
		case "round":
			if *round {
				cfg.Quantize = imageio.Round.String()
			} else {
				cfg.Quantize = imageio.Truncate.String()
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		return scene.Config{}, err
	}
	return cfg, nil
}

// run renders the configured scene and writes it to cfg.Output
func run(ctx context.Context, cfg scene.Config, logger core.Logger) error {
	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}
	quantizer, err := imageio.ParseQuantizer(cfg.Quantize)
	if err != nil {
		return err
	}

	selectedScene, err := scene.NewScene(cfg)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{Workers: cfg.Workers}, logger)
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Sphere coverage: %.1f%% of %d pixels\n", stats.HitRatio()*100, stats.TotalPixels)

	if err := imageio.SaveFile(cfg.Output, fb, format, quantizer); err != nil {
		return err
	}
	logger.Printf("Render saved as %s (%s)\n", cfg.Output, format)
	return nil
}

// outputFormat returns the explicit format or derives it from the output path
func outputFormat(cfg scene.Config) (imageio.Format, error) {
	if cfg.Format != "" {
		return imageio.ParseFormat(cfg.Format)
	}
	return imageio.FormatFromPath(cfg.Output)
}
