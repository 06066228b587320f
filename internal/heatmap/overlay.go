package heatmap

import (
	"image"
	"image/color"
	"image/draw"
)

// Layer colours.
var (
	MovesColor  = color.NRGBA{R: 220, G: 30, B: 30, A: 255}
	ClicksColor = color.NRGBA{R: 30, G: 80, B: 220, A: 255}
)

// MaxAlpha is the opacity of a layer at full intensity.
const MaxAlpha = 0.5

// Overlay draws the normalized grids over base, stretched to base's bounds.
// Moves are painted first, clicks on top. A nil base yields a white canvas
// of the grid size.
func Overlay(base image.Image, moves, clicks *Grid) *image.NRGBA {
	var bounds image.Rectangle
	switch {
	case base != nil:
		bounds = base.Bounds()
	case moves != nil:
		bounds = image.Rect(0, 0, moves.Width, moves.Height)
	case clicks != nil:
		bounds = image.Rect(0, 0, clicks.Width, clicks.Height)
	}

	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if base != nil {
		draw.Draw(out, out.Bounds(), base, bounds.Min, draw.Src)
	} else {
		draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	}
	paint(out, moves, MovesColor)
	paint(out, clicks, ClicksColor)
	return out
}

func paint(dst *image.NRGBA, g *Grid, c color.NRGBA) {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		gy := y * g.Height / h
		for x := 0; x < w; x++ {
			gx := x * g.Width / w
			alpha := g.At(gx, gy) * MaxAlpha
			if alpha <= 0 {
				continue
			}
			if alpha > 1 {
				alpha = 1
			}
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			px[0] = blend(px[0], c.R, alpha)
			px[1] = blend(px[1], c.G, alpha)
			px[2] = blend(px[2], c.B, alpha)
		}
	}
}

func blend(under, over uint8, alpha float64) uint8 {
	return uint8(float64(under)*(1-alpha) + float64(over)*alpha + 0.5)
}
