package icons

import (
	"image"
	"image/color"
	"testing"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func containsColor(img image.Image, want color.RGBA) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if rgbaAt(img, x, y) == want {
				return true
			}
		}
	}
	return false
}

func TestPageGeometryNeverDegenerates(t *testing.T) {
	sizes := append([]int{}, Sizes...)
	sizes = append(sizes, 17, 20, 100, 512)
	for _, s := range sizes {
		g := pageGeometry(s, defaultFoldRatio)
		if g.Left < 1 || g.Top < 1 {
			t.Fatalf("size %d: margin below 1: %+v", s, g)
		}
		if g.Fold < 2 {
			t.Fatalf("size %d: fold below 2: %+v", s, g)
		}
		if g.Right <= g.Left || g.Bottom <= g.Top {
			t.Fatalf("size %d: degenerate page rect: %+v", s, g)
		}
	}
}

func TestPageGeometryScalesWithCanvas(t *testing.T) {
	small := pageGeometry(16, defaultFoldRatio)
	large := pageGeometry(256, defaultFoldRatio)
	if large.Fold <= small.Fold {
		t.Fatalf("fold should grow with the canvas: %d vs %d", small.Fold, large.Fold)
	}
	if large.Width() <= small.Width() {
		t.Fatalf("page width should grow with the canvas")
	}
}

func TestCanvasTransparentOutsidePage(t *testing.T) {
	scheme, _ := SchemeFor("o2d")
	for _, s := range Sizes {
		fr := RenderFrame("o2d", scheme, s)
		b := fr.Image.Bounds()
		if b.Dx() != s || b.Dy() != s {
			t.Fatalf("size %d: canvas is %dx%d", s, b.Dx(), b.Dy())
		}
		// Sweep the full one-pixel perimeter: with a 1px margin at 16px,
		// any border stroke bleeding past the page reaches this ring.
		for i := 0; i < s; i++ {
			ring := [][2]int{{i, 0}, {i, s - 1}, {0, i}, {s - 1, i}}
			for _, c := range ring {
				if px := rgbaAt(fr.Image, c[0], c[1]); px.A != 0 {
					t.Fatalf("size %d: perimeter (%d,%d) not transparent: %+v", s, c[0], c[1], px)
				}
			}
		}
	}
}

func TestShadowDrawnAtLargeSizes(t *testing.T) {
	scheme, _ := SchemeFor("o2d")
	fr := RenderFrame("o2d", scheme, 256)
	g := pageGeometry(256, defaultFoldRatio)
	// Shadow offset at 256 is 5px, so two pixels right of the page edge
	// sits inside the pure shadow strip.
	midY := (g.Top + g.Bottom) / 2
	if px := rgbaAt(fr.Image, g.Right+2, midY); px != shadowGray {
		t.Fatalf("expected shadow strip at (%d,%d), got %+v", g.Right+2, midY, px)
	}
}

func TestShadowSkippedBelowCutoff(t *testing.T) {
	scheme, _ := SchemeFor("o2d")
	fr := RenderFrame("o2d", scheme, 16)
	g := pageGeometry(16, defaultFoldRatio)
	midY := (g.Top + g.Bottom) / 2
	if px := rgbaAt(fr.Image, g.Right+1, midY); px.A != 0 {
		t.Fatalf("expected transparent pixel right of the page at 16px, got %+v", px)
	}
}

func TestFoldedCornerFilled(t *testing.T) {
	scheme, _ := SchemeFor("o2d")
	fr := RenderFrame("o2d", scheme, 256)
	g := pageGeometry(256, defaultFoldRatio)
	// A point deep inside the fold triangle, clear of its edges.
	x := g.Right - g.Fold + 3
	y := g.Top + g.Fold - 3
	if px := rgbaAt(fr.Image, x, y); px != foldFill {
		t.Fatalf("expected fold fill at (%d,%d), got %+v", x, y, px)
	}
}

func TestAccentBarFidelityCutoff(t *testing.T) {
	scheme, _ := SchemeFor("o2d")

	fr := RenderFrame("o2d", scheme, 48)
	// Bar at 48px covers rows 5-6 from x=5 to x≈30.
	if px := rgbaAt(fr.Image, 10, 6); px != scheme.Accent {
		t.Fatalf("expected accent bar pixel at 48px, got %+v", px)
	}

	fr = RenderFrame("o2d", scheme, 16)
	// Where the bar would sit at 16px there is only page white.
	if px := rgbaAt(fr.Image, 3, 2); px != pageFill {
		t.Fatalf("expected plain page pixel at 16px, got %+v", px)
	}
}

func TestLogoFidelityCutoff(t *testing.T) {
	scheme, _ := SchemeFor("o2d")
	for _, s := range Sizes {
		fr := RenderFrame("o2d", scheme, s)
		got := containsColor(fr.Image, logoBg)
		want := s >= minDetailSize
		if got != want {
			t.Fatalf("size %d: logo backdrop present=%v, want %v", s, got, want)
		}
	}
}
