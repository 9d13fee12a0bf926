// Package icons renders the document-style multi-resolution .ico files
// shipped for each registered file extension: a page silhouette with a
// folded corner, the app logo glyph, and an extension label band.
package icons

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/fogleman/gg"
	ico "github.com/sergeymakinen/go-ico"
)

// Sizes lists the frame side lengths bundled into every icon file.
var Sizes = []int{16, 32, 48, 64, 256}

// minDetailSize is the fidelity cutoff: below it the shadow, accent bar
// and logo are omitted so the page and label stay readable.
const minDetailSize = 32

// Frame is one rendered canvas for one (file-type, size) pair. Frames
// are never mutated after their draw sequence completes.
type Frame struct {
	Size  int
	Image image.Image
}

// RenderFrame draws one complete icon frame: page, then accent bar and
// logo for sizes at or above the fidelity cutoff, then the label band.
// The canvas outside the page shape stays fully transparent.
func RenderFrame(ext string, scheme ColorScheme, size int) Frame {
	dc := gg.NewContext(size, size)
	g := DrawPage(dc, size)

	if size >= minDetailSize {
		DrawAccentBar(dc, g, size, scheme)
	}

	areaTop := g.Top + g.Fold + scaled(0.04, size, 1)
	areaBottom := g.Bottom - scaled(0.20, size, 4)
	if size >= minDetailSize {
		cx := float64(g.Left+g.Right) / 2
		cy := float64(areaTop+areaBottom) / 2
		logoSize := math.Min(
			float64(g.Width())*0.55,
			float64(areaBottom-areaTop)*0.85,
		)
		DrawLogo(dc, cx, cy, logoSize)
	}

	DrawLabel(dc, labelText(ext, size), g, size, scheme)

	return Frame{Size: size, Image: dc.Image()}
}

// BuildFrames renders every supported size for one file type and
// returns the frames sorted largest first, the order the ICO container
// expects.
func BuildFrames(ext string, scheme ColorScheme) []Frame {
	frames := make([]Frame, 0, len(Sizes))
	for _, size := range Sizes {
		frames = append(frames, RenderFrame(ext, scheme, size))
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Size > frames[j].Size })
	return frames
}

// WriteIcon renders all frames for one file type and writes them as a
// single multi-resolution <key>-document.ico under dir, creating dir if
// absent. Returns the written path.
func WriteIcon(dir, key string, scheme ColorScheme) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	frames := BuildFrames(key, scheme)
	images := make([]image.Image, len(frames))
	for i, fr := range frames {
		images[i] = fr.Image
	}

	path := filepath.Join(dir, key+"-document.ico")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
