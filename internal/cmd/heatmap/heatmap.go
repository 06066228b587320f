// Package heatmap parses heatmap command flags and renders pointer
// recordings into PNG overlays.
package heatmap

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	renderer "github.com/louisbranch/dwelling.space/internal/heatmap"
	entrypoint "github.com/louisbranch/dwelling.space/internal/platform/cmd"
)

// Config holds heatmap command configuration.
type Config struct {
	RecordingPath  string  `env:"DWELLING_SPACE_HEATMAP_CSV"        envDefault:"mouse_movements.csv"`
	ScreenshotPath string  `env:"DWELLING_SPACE_HEATMAP_SCREENSHOT"`
	OutputPath     string  `env:"DWELLING_SPACE_HEATMAP_OUT"        envDefault:"heatmap.png"`
	Width          int     `env:"DWELLING_SPACE_HEATMAP_WIDTH"      envDefault:"1920"`
	Height         int     `env:"DWELLING_SPACE_HEATMAP_HEIGHT"     envDefault:"1080"`
	OffsetX        int     `env:"DWELLING_SPACE_HEATMAP_OFFSET_X"   envDefault:"-90"`
	OffsetY        int     `env:"DWELLING_SPACE_HEATMAP_OFFSET_Y"   envDefault:"-150"`
	Sigma          float64 `env:"DWELLING_SPACE_HEATMAP_SIGMA"      envDefault:"15"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.RecordingPath, "csv", cfg.RecordingPath, "Pointer recording CSV")
	fs.StringVar(&cfg.ScreenshotPath, "screenshot", cfg.ScreenshotPath, "Page screenshot (PNG or JPEG); blank renders on white")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Output PNG path")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Canvas height in pixels")
	fs.IntVar(&cfg.OffsetX, "offset-x", cfg.OffsetX, "Horizontal shift applied to every sample")
	fs.IntVar(&cfg.OffsetY, "offset-y", cfg.OffsetY, "Vertical shift applied to every sample")
	fs.Float64Var(&cfg.Sigma, "sigma", cfg.Sigma, "Gaussian blur radius")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run renders the heatmap described by cfg.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceHeatmap, func(context.Context) error {
		report, err := render(cfg)
		if err != nil {
			return err
		}
		log.Printf("heatmap written path=%s moves=%d clicks=%d dropped_moves=%d dropped_clicks=%d",
			cfg.OutputPath, report.Moves, report.Clicks, report.DroppedMoves, report.DroppedClicks)
		if report.EmptyMoves {
			log.Printf("no movement samples inside the canvas")
		}
		if report.EmptyClicks {
			log.Printf("no click samples inside the canvas")
		}
		return nil
	})
}

func render(cfg Config) (renderer.Report, error) {
	if strings.TrimSpace(cfg.RecordingPath) == "" {
		return renderer.Report{}, errors.New("recording path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return renderer.Report{}, errors.New("output path is required")
	}

	rec, err := readRecording(cfg.RecordingPath)
	if err != nil {
		return renderer.Report{}, err
	}
	base, err := readScreenshot(cfg.ScreenshotPath)
	if err != nil {
		return renderer.Report{}, err
	}

	img, report := renderer.Render(rec, base, renderer.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Offset: renderer.Offset{X: cfg.OffsetX, Y: cfg.OffsetY},
		Sigma:  cfg.Sigma,
	})
	if err := writePNG(cfg.OutputPath, img); err != nil {
		return renderer.Report{}, err
	}
	return report, nil
}

func readRecording(path string) (renderer.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return renderer.Recording{}, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()
	rec, err := renderer.ParseRecording(f)
	if err != nil {
		return renderer.Recording{}, fmt.Errorf("parse recording %s: %w", path, err)
	}
	return rec, nil
}

func readScreenshot(path string) (image.Image, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open screenshot: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode screenshot %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
