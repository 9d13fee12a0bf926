package icons

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Logo glyph palette, lifted from the application icon. The glyph is
// identical across file types.
var (
	logoBg     = color.RGBA{0x19, 0x1C, 0x32, 0xFF} // dark navy
	logoSquare = color.RGBA{0xE6, 0x39, 0x50, 0xFF} // pink-red
	logoCircle = color.RGBA{0x00, 0xE6, 0x76, 0xFF} // green
	logoLine   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	logoDot    = color.RGBA{0xE6, 0x39, 0x64, 0xFF} // pink
)

// DrawLogo renders the stylized app glyph centered at (cx, cy) with the
// given diameter: rounded backdrop tile, outlined square toward the
// upper left, outlined circle toward the lower right, and a diagonal
// line capped with dots. All sub-shapes are fixed relative to r.
func DrawLogo(dc *gg.Context, cx, cy, logoSize float64) {
	r := logoSize / 2

	bgMargin := r * 0.1
	dc.SetColor(logoBg)
	dc.DrawRoundedRectangle(
		cx-r-bgMargin, cy-r-bgMargin,
		(r+bgMargin)*2, (r+bgMargin)*2,
		float64(scaledF(r*0.25, 1)),
	)
	dc.Fill()

	lineW := float64(scaledF(r*0.12, 1))
	sqSize := r * 0.55
	sqX := cx - r*0.45
	sqY := cy - r*0.45
	dc.SetColor(logoSquare)
	dc.SetLineWidth(lineW)
	dc.DrawRectangle(sqX-sqSize/2, sqY-sqSize/2, sqSize, sqSize)
	dc.Stroke()

	circR := r * 0.35
	dc.SetColor(logoCircle)
	dc.SetLineWidth(lineW)
	dc.DrawCircle(cx+r*0.35, cy+r*0.35, circR)
	dc.Stroke()

	x1, y1 := cx-r*0.65, cy+r*0.55
	x2, y2 := cx+r*0.6, cy-r*0.6
	dc.SetColor(logoLine)
	dc.SetLineWidth(float64(scaledF(r*0.1, 1)))
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()

	dotR := float64(scaledF(r*0.1, 1))
	dc.SetColor(logoDot)
	dc.DrawCircle(x1, y1, dotR)
	dc.Fill()
	dc.DrawCircle(x2, y2, dotR)
	dc.Fill()
}
