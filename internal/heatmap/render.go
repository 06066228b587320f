package heatmap

import "image"

// Options control Render.
type Options struct {
	Width  int
	Height int
	Offset Offset
	Sigma  float64
}

// DefaultOptions matches the 1920x1080 capture setup.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY},
		Sigma:  DefaultSigma,
	}
}

// Report summarizes a render.
type Report struct {
	Moves         int
	Clicks        int
	DroppedMoves  int
	DroppedClicks int
	EmptyMoves    bool
	EmptyClicks   bool
}

// Render builds both layers from rec and draws them over base.
func Render(rec Recording, base image.Image, opts Options) (*image.NRGBA, Report) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	report := Report{Moves: len(rec.Moves), Clicks: len(rec.Clicks)}
	moves, dropped := Accumulate(rec.Moves, opts.Width, opts.Height, opts.Offset)
	report.DroppedMoves = dropped
	clicks, dropped := Accumulate(rec.Clicks, opts.Width, opts.Height, opts.Offset)
	report.DroppedClicks = dropped

	moves = Blur(moves, opts.Sigma)
	clicks = Blur(clicks, opts.Sigma)
	report.EmptyMoves = !Normalize(moves)
	report.EmptyClicks = !Normalize(clicks)

	return Overlay(base, moves, clicks), report
}
