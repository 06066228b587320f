package heatmap

import (
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	renderer "github.com/louisbranch/dwelling.space/internal/heatmap"
)

const recording = `Width,Height
64,48
Mouse Movements
x,y,time
20,30,1700000000000
21,31,1700000000010
Mouse Clicks
x,y,time
25,35,1700000000020
`

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Fatalf("canvas = %dx%d, want 1920x1080", cfg.Width, cfg.Height)
	}
	if cfg.OffsetX != -90 || cfg.OffsetY != -150 {
		t.Fatalf("offset = %d,%d, want -90,-150", cfg.OffsetX, cfg.OffsetY)
	}
	if cfg.Sigma != 15 {
		t.Fatalf("sigma = %v, want 15", cfg.Sigma)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("DWELLING_SPACE_HEATMAP_OUT", "env.png")

	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-csv", "session.csv", "-width", "800", "-sigma", "4.5"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.OutputPath != "env.png" {
		t.Fatalf("output = %q, want env.png", cfg.OutputPath)
	}
	if cfg.RecordingPath != "session.csv" || cfg.Width != 800 || cfg.Sigma != 4.5 {
		t.Fatalf("unexpected flag overrides: %+v", cfg)
	}
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "session.csv")
	writeFile(t, csvPath, recording)
	shotPath := filepath.Join(dir, "page.png")
	writeScreenshot(t, shotPath, 64, 48)
	outPath := filepath.Join(dir, "out", "heatmap.png")

	err := Run(context.Background(), Config{
		RecordingPath:  csvPath,
		ScreenshotPath: shotPath,
		OutputPath:     outPath,
		Width:          64,
		Height:         48,
		Sigma:          2,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 64, Y: 48}) {
		t.Fatalf("output size = %v, want 64x48", got)
	}
}

func TestRunWithoutScreenshot(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "session.csv")
	writeFile(t, csvPath, recording)
	outPath := filepath.Join(dir, "heatmap.png")

	report, err := render(Config{RecordingPath: csvPath, OutputPath: outPath, Width: 64, Height: 48, Sigma: 2})
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if report.Moves != 2 || report.Clicks != 1 {
		t.Fatalf("report = %+v", report)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("stat output: %v", err)
	}
}

func TestRunRejectsMalformedRecording(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "bad.csv")
	writeFile(t, csvPath, "not,a\nrecording\n")

	_, err := render(Config{RecordingPath: csvPath, OutputPath: filepath.Join(dir, "out.png")})
	if !errors.Is(err, renderer.ErrMalformedRecording) {
		t.Fatalf("render() error = %v, want ErrMalformedRecording", err)
	}
}

func TestRunRequiresPaths(t *testing.T) {
	if _, err := render(Config{OutputPath: "out.png"}); err == nil {
		t.Fatal("expected missing recording error")
	}
	if _, err := render(Config{RecordingPath: "in.csv"}); err == nil {
		t.Fatal("expected missing output error")
	}
	if _, err := render(Config{RecordingPath: filepath.Join(t.TempDir(), "missing.csv"), OutputPath: "out.png"}); err == nil {
		t.Fatal("expected open error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeScreenshot(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create screenshot: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode screenshot: %v", err)
	}
}
