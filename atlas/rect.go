package atlas

import "image"

// Rect is an axis-aligned rectangle in atlas pixel coordinates.
// The origin is the top-left corner of the atlas.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bounds returns r as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.Bounds().Overlaps(o.Bounds())
}

// Inset returns r shrunk by n pixels on every side.
// A negative n grows the rectangle.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// UVRect is a rectangle in normalized texture coordinates, each component
// a fraction of the atlas width or height in [0, 1].
type UVRect struct {
	X, Y          float32
	Width, Height float32
}

// U1 returns the right edge of the rectangle.
func (u UVRect) U1() float32 { return u.X + u.Width }

// V1 returns the bottom edge of the rectangle.
func (u UVRect) V1() float32 { return u.Y + u.Height }

// Project converts a pixel rectangle of an atlas with dimensions w×h into
// texture coordinates. The dimensions must be positive; the cache
// guarantees this at construction.
func Project(r Rect, w, h int) UVRect {
	fw := float32(w)
	fh := float32(h)
	return UVRect{
		X:      float32(r.X) / fw,
		Y:      float32(r.Y) / fh,
		Width:  float32(r.Width) / fw,
		Height: float32(r.Height) / fh,
	}
}
