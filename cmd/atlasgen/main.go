// Command atlasgen lays out text, packs its glyphs into an atlas and
// writes the atlas as a PNG, printing each glyph's UV rectangle.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/atlas"
	"github.com/gogpu/glyphatlas/layout"
	"github.com/gogpu/glyphatlas/raster"
)

func main() {
	var (
		width    = flag.Int("width", 512, "atlas width")
		height   = flag.Int("height", 512, "atlas height")
		format   = flag.String("format", "gray", "pixel format: gray or subpixel")
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default Go Regular)")
		size     = flag.Float64("size", 24, "font size in pixels")
		text     = flag.String("text", "The quick brown fox\njumps over the lazy dog", "text to lay out")
		output   = flag.String("output", "atlas.png", "output file")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	data := goregular.TTF
	if *fontPath != "" {
		b, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		data = b
	}

	f, err := parseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	fonts, err := raster.NewFonts(data)
	if err != nil {
		log.Fatal(err)
	}
	shaper, err := layout.NewShaper(data)
	if err != nil {
		log.Fatal(err)
	}

	opts := layout.DefaultOptions()
	opts.Size = float32(*size)
	reqs, err := shaper.Layout(*text, opts, fonts)
	if err != nil {
		log.Fatal(err)
	}

	cache, err := atlas.New(*width, *height, f)
	if err != nil {
		log.Fatal(err)
	}
	res, err := cache.Ingest(fonts, reqs)
	if err != nil {
		log.Printf("Some glyphs failed: %v", err)
	}
	for _, key := range res.Dropped {
		log.Printf("Atlas full, dropped %q (glyph %d)", key.Rune, key.GlyphID)
	}

	printUVs(cache, reqs)

	if err := savePNG(cache, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d %v, %d glyphs)\n",
		*output, *width, *height, f, cache.Len())
}

func parseFormat(s string) (atlas.Format, error) {
	switch s {
	case "gray", "grayscale":
		return atlas.Grayscale, nil
	case "subpixel", "lcd":
		return atlas.Subpixel, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want gray or subpixel)", s)
	}
}

// printUVs prints one line per distinct glyph in layout order.
func printUVs(cache *atlas.Cache, reqs []atlas.Request) {
	seen := make(map[atlas.GlyphKey]bool)
	for _, r := range reqs {
		if seen[r.Key] {
			continue
		}
		seen[r.Key] = true
		uv, ok := cache.Lookup(r.Key)
		if !ok {
			continue
		}
		fmt.Printf("%q gid=%-4d sub=%d  uv=(%.5f, %.5f) size=(%.5f, %.5f)\n",
			r.Key.Rune, r.Key.GlyphID, r.Key.SubX, uv.X, uv.Y, uv.Width, uv.Height)
	}
}

func savePNG(cache *atlas.Cache, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, cache.Image()); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
