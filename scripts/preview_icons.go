//go:build ignore

// preview_icons.go – run with:
//
//	go run scripts/preview_icons.go
//
// Renders every (file-type, size) frame to preview/*.png so the icon
// artwork can be eyeballed without an ICO viewer. The shipped .ico
// containers come from cmd/fileicons.
package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/open2d-studio/fileicons/internal/icons"
)

func main() {
	outDir := "preview"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, key := range icons.Keys() {
		scheme, err := icons.SchemeFor(key)
		if err != nil {
			log.Fatal(err)
		}
		for _, fr := range icons.BuildFrames(key, scheme) {
			path := filepath.Join(outDir, fmt.Sprintf("%s-%d.png", key, fr.Size))
			f, err := os.Create(path)
			if err != nil {
				log.Fatalf("create %s: %v", path, err)
			}
			if err := png.Encode(f, fr.Image); err != nil {
				f.Close()
				log.Fatalf("encode %s: %v", path, err)
			}
			if err := f.Close(); err != nil {
				log.Fatalf("close %s: %v", path, err)
			}
			log.Printf("  wrote %s", path)
		}
	}
	log.Println("Preview frames written to preview/")
}
