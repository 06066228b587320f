package heatmap

import "math"

// Default canvas geometry of the screenshots the overlays are drawn on.
const (
	DefaultWidth   = 1920
	DefaultHeight  = 1080
	DefaultOffsetX = -90
	DefaultOffsetY = -150
	DefaultSigma   = 15.0
)

// Offset shifts viewport samples into screenshot space. A sample at x is
// placed at x - X.
type Offset struct {
	X int
	Y int
}

// Grid is a row-major intensity grid.
type Grid struct {
	Width  int
	Height int
	Cells  []float64
}

// NewGrid returns a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Cells: make([]float64, width*height)}
}

// At returns the intensity at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.Width+x]
}

// Max returns the largest intensity.
func (g *Grid) Max() float64 {
	max := 0.0
	for _, v := range g.Cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Accumulate counts samples per cell after shifting them by offset. Samples
// that land outside the grid are dropped and counted in the second result.
func Accumulate(points []Point, width, height int, offset Offset) (*Grid, int) {
	g := NewGrid(width, height)
	dropped := 0
	for _, p := range points {
		x := p.X - offset.X
		y := p.Y - offset.Y
		if x < 0 || x >= width || y < 0 || y >= height {
			dropped++
			continue
		}
		g.Cells[y*width+x]++
	}
	return g, dropped
}

// Blur applies a Gaussian blur with standard deviation sigma, truncated at
// four sigma, reflecting at the edges.
func Blur(g *Grid, sigma float64) *Grid {
	if sigma <= 0 || g.Width == 0 || g.Height == 0 {
		out := NewGrid(g.Width, g.Height)
		copy(out.Cells, g.Cells)
		return out
	}
	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	tmp := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := 0; x < g.Width; x++ {
			sum := 0.0
			for k, w := range kernel {
				sum += w * row[reflect(x+k-radius, g.Width)]
			}
			tmp.Cells[y*g.Width+x] = sum
		}
	}

	out := NewGrid(g.Width, g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			sum := 0.0
			for k, w := range kernel {
				sum += w * tmp.Cells[reflect(y+k-radius, g.Height)*g.Width+x]
			}
			out.Cells[y*g.Width+x] = sum
		}
	}
	return out
}

// Normalize scales g in place so its maximum is 1. It reports false and
// leaves g untouched when the grid is empty.
func Normalize(g *Grid) bool {
	max := g.Max()
	if max <= 0 {
		return false
	}
	for i := range g.Cells {
		g.Cells[i] /= max
	}
	return true
}

func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflect mirrors i into [0, n) including the edge sample.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
