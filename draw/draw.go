// Package draw renders a triangulation to a raster image: every edge once,
// the convex hull highlighted, and a dot per node. Useful when debugging
// point sets or documenting a mesh.
package draw

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/trimesh/mesh"
)

// Sentinel errors returned by PNG.
var (
	// ErrNilTriangulation indicates a nil or unbuilt triangulation.
	ErrNilTriangulation = errors.New("draw: triangulation is nil")

	// ErrBadSize indicates non-positive image dimensions or padding that
	// leaves no drawable area.
	ErrBadSize = errors.New("draw: invalid image dimensions")
)

// Options controls the rendering.
type Options struct {
	Width      int     // image width in pixels
	Height     int     // image height in pixels
	Pad        float64 // blank margin around the mesh, pixels
	NodeRadius float64 // dot radius; 0 hides the nodes
}

// DefaultOptions returns a 1024×1024 canvas with a 24-pixel margin and
// 3-pixel node dots.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 1024, Pad: 24, NodeRadius: 3}
}

// PNG renders the triangulation and writes it to path.
func PNG(t *mesh.Triangulation, path string, opts Options) error {
	if t == nil || t.Len() < 3 {
		return ErrNilTriangulation
	}
	if opts.Width < 1 || opts.Height < 1 ||
		float64(opts.Width) <= 2*opts.Pad || float64(opts.Height) <= 2*opts.Pad {
		return fmt.Errorf("%w: %dx%d pad %g", ErrBadSize, opts.Width, opts.Height, opts.Pad)
	}

	pts := t.Points()
	toPixel := fitTransform(pts, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Interior and hull edges, each drawn once from its lower endpoint.
	dc.SetRGB(0.45, 0.45, 0.45)
	dc.SetLineWidth(1)
	for k := range pts {
		ring, err := t.Neighbors(k)
		if err != nil {
			return fmt.Errorf("draw: node %d: %w", k, err)
		}
		for _, nb := range ring {
			if nb < k {
				continue
			}
			x0, y0 := toPixel(pts[k])
			x1, y1 := toPixel(pts[nb])
			dc.DrawLine(x0, y0, x1, y1)
		}
	}
	dc.Stroke()

	hull, err := t.Hull()
	if err != nil {
		return fmt.Errorf("draw: hull: %w", err)
	}
	dc.SetRGB(0.8, 0.2, 0.2)
	dc.SetLineWidth(2)
	for i := range hull {
		a := pts[hull[i]]
		b := pts[hull[(i+1)%len(hull)]]
		x0, y0 := toPixel(a)
		x1, y1 := toPixel(b)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	if opts.NodeRadius > 0 {
		dc.SetRGB(0.1, 0.1, 0.6)
		for k := range pts {
			x, y := toPixel(pts[k])
			dc.DrawCircle(x, y, opts.NodeRadius)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("draw: save %s: %w", path, err)
	}

	return nil
}

// fitTransform maps mesh coordinates into the padded canvas, preserving
// aspect ratio and flipping y so the mesh reads the usual way up.
func fitTransform(pts []mesh.Point, opts Options) func(mesh.Point) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := math.Min(
		(float64(opts.Width)-2*opts.Pad)/spanX,
		(float64(opts.Height)-2*opts.Pad)/spanY,
	)

	// Center the mesh inside the canvas.
	offX := (float64(opts.Width) - scale*spanX) / 2
	offY := (float64(opts.Height) - scale*spanY) / 2

	return func(p mesh.Point) (float64, float64) {
		return offX + (p.X-minX)*scale, float64(opts.Height) - offY - (p.Y-minY)*scale
	}
}
