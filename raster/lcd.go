package raster

// lcdWeights is the FreeType default five-tap LCD filter. The weights
// sum to 256.
var lcdWeights = [5]uint32{0x08, 0x4D, 0x56, 0x4D, 0x08}

// lcdFilter smooths a horizontally oversampled coverage mask of w×h
// samples (w a multiple of 3) so each sample blends with its neighbours,
// which removes the color fringes of naive subpixel rendering. Samples
// outside the row count as zero coverage. The result is w×h bytes, read
// as packed RGB pixels.
func lcdFilter(src []byte, w, h int) []byte {
	dst := make([]byte, w*h)
	for y := range h {
		row := src[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		for x := range w {
			var sum uint32
			for k, wt := range lcdWeights {
				sx := x + k - 2
				if sx < 0 || sx >= w {
					continue
				}
				sum += wt * uint32(row[sx])
			}
			out[x] = byte(min(sum>>8, 0xff))
		}
	}
	return dst
}
