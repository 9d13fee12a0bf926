package icons

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// boldFontPaths are system bold faces tried in order before the embedded
// Go Bold fallback. Missing or unparseable files are skipped silently.
var boldFontPaths = []string{
	`C:\Windows\Fonts\arialbd.ttf`,
	"/Library/Fonts/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// resolveFace returns a bold label face at the given pixel size. The
// chain never fails: system fonts first, then the embedded Go Bold, and
// as a last resort the fixed 7x13 basic face.
func resolveFace(px int) font.Face {
	for _, path := range boldFontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := faceFromBytes(data, px); face != nil {
			return face
		}
	}
	if face := faceFromBytes(gobold.TTF, px); face != nil {
		return face
	}
	return basicfont.Face7x13
}

func faceFromBytes(data []byte, px int) font.Face {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}
