package icons

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// defaultFoldRatio sizes the folded corner relative to the canvas side.
const defaultFoldRatio = 0.22

// Page palette. Shared by every file type; only accents vary.
var (
	pageFill   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	pageBorder = color.RGBA{0xC8, 0xC8, 0xC8, 0xFF}
	foldFill   = color.RGBA{0xE6, 0xE6, 0xEB, 0xFF}
	shadowGray = color.RGBA{0xB4, 0xB4, 0xB4, 0xFF}
)

// PageGeometry describes the document-page rectangle and fold length
// derived for one canvas size. Recomputed per render, never stored.
type PageGeometry struct {
	Left   int
	Top    int
	Right  int
	Bottom int
	Fold   int
}

// Width returns the horizontal page extent in pixels.
func (g PageGeometry) Width() int { return g.Right - g.Left }

// pageGeometry derives the page rectangle for a canvas of side size.
// Every dimension is rounded then floored at its minimum so the shape
// never degenerates, even at 16px.
func pageGeometry(size int, foldRatio float64) PageGeometry {
	margin := scaled(0.08, size, 1)
	return PageGeometry{
		Left:   margin,
		Top:    margin,
		Right:  size - margin - 1,
		Bottom: size - margin - 1,
		Fold:   scaled(foldRatio, size, 2),
	}
}

// DrawPage renders the document-page silhouette: drop shadow (32px and
// up), white body with one corner cut at 45°, and the folded-corner
// triangle. Returns the derived geometry for the later render passes.
func DrawPage(dc *gg.Context, size int) PageGeometry {
	g := pageGeometry(size, defaultFoldRatio)
	l, t := float64(g.Left), float64(g.Top)
	r, b := float64(g.Right), float64(g.Bottom)
	fold := float64(g.Fold)

	if size >= minDetailSize {
		off := float64(scaled(0.02, size, 1))
		fillPolygon(dc, shadowGray, nil,
			gg.Point{X: l + off, Y: t + fold + off},
			gg.Point{X: r - fold + off, Y: t + off},
			gg.Point{X: r + off, Y: t + fold + off},
			gg.Point{X: r + off, Y: b + off},
			gg.Point{X: l + off, Y: b + off},
		)
	}

	fillPolygon(dc, pageFill, pageBorder,
		gg.Point{X: l, Y: t},
		gg.Point{X: r - fold, Y: t},
		gg.Point{X: r, Y: t + fold},
		gg.Point{X: r, Y: b},
		gg.Point{X: l, Y: b},
	)

	fillPolygon(dc, foldFill, pageBorder,
		gg.Point{X: r - fold, Y: t},
		gg.Point{X: r, Y: t + fold},
		gg.Point{X: r - fold, Y: t + fold},
	)

	return g
}

// DrawAccentBar renders the thin colored bar just inside the page's
// top-left corner, spanning to 55% of the canvas width. Callers skip it
// below the 32px fidelity cutoff.
func DrawAccentBar(dc *gg.Context, g PageGeometry, size int, scheme ColorScheme) {
	barH := scaled(0.04, size, 1)
	barM := scaled(0.02, size, 0)
	x := float64(g.Left + barM)
	y := float64(g.Top + barM)
	w := float64(g.Left) + float64(size)*0.55 - x
	dc.SetColor(scheme.Accent)
	dc.DrawRectangle(x, y, w, float64(barH))
	dc.Fill()
}

// fillPolygon fills a closed polygon, optionally stroking a 1px outline
// on the same path.
func fillPolygon(dc *gg.Context, fill, outline color.Color, pts ...gg.Point) {
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(fill)
	if outline == nil {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	// Clip the stroke to the shape: a centered 1px stroke spills half a
	// pixel past the path and would anti-alias onto the transparent
	// background around the page.
	dc.ClipPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.Stroke()
	dc.ResetClip()
}

// scaled returns round(ratio·size) floored at min, keeping every derived
// dimension a usable pixel count at the smallest canvas.
func scaled(ratio float64, size, min int) int {
	return scaledF(ratio*float64(size), min)
}

func scaledF(v float64, min int) int {
	r := int(math.Round(v))
	if r < min {
		return min
	}
	return r
}
