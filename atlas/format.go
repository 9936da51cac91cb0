package atlas

import "github.com/gogpu/gputypes"

// Format is the pixel layout of an atlas buffer.
// It is fixed at construction and decides the buffer size, the copy stride
// and which rasterization path the provider takes.
type Format int

const (
	// Grayscale stores one coverage byte per pixel.
	Grayscale Format = iota

	// Subpixel stores three coverage bytes per pixel, one per color
	// channel (R, G, B), for LCD subpixel text.
	Subpixel
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Grayscale:
		return "Grayscale"
	case Subpixel:
		return "Subpixel"
	default:
		return "Unknown"
	}
}

// BytesPerPixel returns how many bytes one pixel occupies in this format.
// Unknown formats report 0.
func (f Format) BytesPerPixel() int {
	switch f {
	case Grayscale:
		return 1
	case Subpixel:
		return 3
	default:
		return 0
	}
}

// TextureFormat returns the texture format a renderer should create to
// hold an upload of this atlas (see Cache.Upload).
//
// There is no three-byte texture format, so subpixel atlases are widened
// to RGBA8 on upload.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case Grayscale:
		return gputypes.TextureFormatR8Unorm
	case Subpixel:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
