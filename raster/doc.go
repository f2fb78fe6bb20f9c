// Package raster is the 2D pixel consumer of the lattice line stepper:
// digital lines as coordinate lists or drawn directly onto images.
//
// What:
//
//   - Line returns the 8-connected lattice points between two pixels,
//     endpoints inclusive — the classic Bresenham output.
//   - DrawLine / Polyline mark those pixels on any draw.Image; pixels
//     outside the image bounds are ignored by the image itself.
//   - DrawLineFixed accepts subpixel endpoints in 26.6 fixed point
//     (golang.org/x/image/math/fixed), rounded to the nearest lattice
//     point before stepping.
//
// Why:
//
//   - Wireframes, grid overlays, debug visualizations: any place a crisp
//     one-pixel line beats an anti-aliased one.
//   - Glyph and path pipelines already speak 26.6 fixed point; the Fixed
//     variant slots in without float conversions at the call site.
//
// Complexity:
//
//   - Line/DrawLine: O(max(|Δx|,|Δy|)) steps, one pixel per step.
//
// The package holds no state; all functions are safe for concurrent use
// as long as the destination images are independent.
package raster
