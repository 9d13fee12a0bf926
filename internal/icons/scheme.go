package icons

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ColorScheme holds the per-file-type colors. The logo glyph palette is
// fixed; only the page accent and label band vary between file types.
type ColorScheme struct {
	Accent     color.RGBA
	AccentDark color.RGBA
	LabelBg    color.RGBA
	LabelText  color.RGBA
}

// schemes maps each supported file-type key to its color scheme.
// Read-only after initialization.
var schemes = map[string]ColorScheme{
	"o2d": {
		Accent:     color.RGBA{0x3B, 0x82, 0xF6, 0xFF}, // blue-500
		AccentDark: color.RGBA{0x25, 0x63, 0xEB, 0xFF}, // blue-600
		LabelBg:    color.RGBA{0x3B, 0x82, 0xF6, 0xFF},
		LabelText:  color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	},
	"dxf": {
		Accent:     color.RGBA{0x22, 0xC5, 0x5E, 0xFF}, // green-500
		AccentDark: color.RGBA{0x16, 0xA3, 0x4A, 0xFF}, // green-600
		LabelBg:    color.RGBA{0x22, 0xC5, 0x5E, 0xFF},
		LabelText:  color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	},
}

// Keys returns the supported file-type keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(schemes))
	for k := range schemes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SchemeFor resolves a file-type key to its color scheme. Unknown keys
// report the closest configured key when a near miss exists.
func SchemeFor(key string) (ColorScheme, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if scheme, ok := schemes[k]; ok {
		return scheme, nil
	}
	if near := nearestKey(k); near != "" {
		return ColorScheme{}, fmt.Errorf("unknown file type %q (did you mean %q?)", key, near)
	}
	return ColorScheme{}, fmt.Errorf("unknown file type %q", key)
}

func nearestKey(key string) string {
	if key == "" {
		return ""
	}
	best := ""
	bestDist := 0
	for _, cand := range Keys() {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > 2 {
			continue
		}
		if best == "" || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}
