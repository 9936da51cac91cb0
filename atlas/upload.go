package atlas

import "github.com/gogpu/gputypes"

// TextureUpload describes how to copy the atlas into a GPU texture.
// It carries no device state; a renderer feeds it to its queue's
// texture write call.
type TextureUpload struct {
	Format gputypes.TextureFormat
	Size   gputypes.Extent3D
	Layout gputypes.TextureDataLayout
	Data   []byte
}

// Upload returns the atlas contents in a layout a texture can take.
//
// Grayscale atlases map to R8Unorm and share memory with the cache.
// Subpixel atlases are widened to RGBA8Unorm into a new buffer; the alpha
// channel holds the largest of the three coverage values.
func (c *Cache) Upload() TextureUpload {
	tf := c.format.TextureFormat()
	data := c.pix
	bpp := 1
	if c.format == Subpixel {
		bpp = 4
		data = widenRGB(c.pix)
	}

	return TextureUpload{
		Format: tf,
		Size: gputypes.Extent3D{
			Width:              uint32(c.width),  //nolint:gosec // validated positive in New
			Height:             uint32(c.height), //nolint:gosec // validated positive in New
			DepthOrArrayLayers: 1,
		},
		Layout: gputypes.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(c.width * bpp), //nolint:gosec // validated positive in New
			RowsPerImage: uint32(c.height),      //nolint:gosec // validated positive in New
		},
		Data: data,
	}
}

// widenRGB expands packed RGB coverage to RGBA.
func widenRGB(rgb []byte) []byte {
	out := make([]byte, len(rgb)/3*4)
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		r, g, b := rgb[i], rgb[i+1], rgb[i+2]
		out[j] = r
		out[j+1] = g
		out[j+2] = b
		out[j+3] = max(r, g, b)
	}
	return out
}
