package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/lvline/linestep"
)

// Line returns the 8-connected digital line from (x0,y0) to (x1,y1),
// endpoints inclusive. The result has max(|Δx|,|Δy|)+1 points and is
// monotone along the dominant axis.
func Line(x0, y0, x1, y1 int) [][2]int {
	// Two well-formed 2D points cannot fail validation.
	s, _ := linestep.New(
		linestep.Point{int64(x0), int64(y0)},
		linestep.Point{int64(x1), int64(y1)},
		linestep.DefaultOptions(),
	)

	pts := s.Points()
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = [2]int{int(p[0]), int(p[1])}
	}

	return out
}

// DrawLine marks the digital line from p0 to p1 on dst with color c.
// Pixels falling outside dst's bounds are dropped by the image's Set.
func DrawLine(dst draw.Image, p0, p1 image.Point, c color.Color) {
	for _, q := range Line(p0.X, p0.Y, p1.X, p1.Y) {
		dst.Set(q[0], q[1], c)
	}
}

// DrawLineFixed draws a line between subpixel endpoints given in 26.6
// fixed point, rounding each endpoint to the nearest lattice point first.
func DrawLineFixed(dst draw.Image, p0, p1 fixed.Point26_6, c color.Color) {
	DrawLine(dst,
		image.Pt(p0.X.Round(), p0.Y.Round()),
		image.Pt(p1.X.Round(), p1.Y.Round()),
		c)
}

// Polyline draws consecutive line segments through pts. Shared vertices
// are written once per adjoining segment, which is harmless for opaque
// colors.
func Polyline(dst draw.Image, pts []image.Point, c color.Color) {
	for i := 1; i < len(pts); i++ {
		DrawLine(dst, pts[i-1], pts[i], c)
	}
}
