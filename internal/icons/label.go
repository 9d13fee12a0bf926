package icons

import (
	"image"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// labelText is the band content for one canvas size: ".EXT" normally,
// bare "EXT" at 16px where the dot stops being legible.
func labelText(ext string, size int) string {
	u := strings.ToUpper(ext)
	if size <= 16 {
		return u
	}
	return "." + u
}

// DrawLabel renders the extension band across the bottom of the page:
// a filled bar in the scheme's label background with the text centered
// both ways. Vertical centering is done on the measured ink box so the
// face's internal ascent offset cancels out.
func DrawLabel(dc *gg.Context, text string, g PageGeometry, size int, scheme ColorScheme) {
	labelH := scaled(0.18, size, 4)
	labelTop := g.Bottom - labelH
	labelM := scaled(0.02, size, 0)

	dc.SetColor(scheme.LabelBg)
	dc.DrawRectangle(
		float64(g.Left+labelM), float64(labelTop),
		float64(g.Right-labelM-(g.Left+labelM)), float64(g.Bottom-labelM-labelTop),
	)
	dc.Fill()

	face := resolveFace(scaled(0.8, labelH, 6))
	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()

	tx := (g.Left+g.Right)/2 - tw/2
	inkTop := labelTop + (labelH-labelM-th)/2
	baseline := inkTop - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  dc.Image().(draw.Image),
		Src:  image.NewUniform(scheme.LabelText),
		Face: face,
		Dot:  fixed.P(tx, baseline),
	}
	d.DrawString(text)
}
