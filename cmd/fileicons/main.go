// fileicons regenerates the document icons for the registered file
// extensions. Run from the repository root:
//
//	go run ./cmd/fileicons
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/open2d-studio/fileicons/internal/icons"
)

func main() {
	var outDir string
	var typesRaw string

	flag.StringVar(&outDir, "out", "icons", "output directory for generated .ico files")
	flag.StringVar(&typesRaw, "types", "", "comma-separated file-type keys (default: all registered)")
	flag.Parse()

	keys := icons.Keys()
	if strings.TrimSpace(typesRaw) != "" {
		keys = nil
		for _, k := range strings.Split(typesRaw, ",") {
			k = strings.TrimSpace(k)
			if k != "" {
				keys = append(keys, k)
			}
		}
	}
	if len(keys) == 0 {
		die("no file types requested")
	}

	for _, key := range keys {
		scheme, err := icons.SchemeFor(key)
		if err != nil {
			die(err.Error())
		}
		path, err := icons.WriteIcon(outDir, key, scheme)
		if err != nil {
			die(fmt.Sprintf("generate %s: %v", key, err))
		}
		fmt.Printf("wrote %s\n", path)
	}
	fmt.Printf("generated %d icon file(s) in %s\n", len(keys), outDir)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
