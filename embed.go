package site

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains the files shipped with the host: boot.js,
// site.css and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// publicAssets lists the embedded files served under /public/.
func publicAssets() []string {
	entries, _ := fs.ReadDir(EmbeddedAssets, "embedded")
	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == "favicon.svg" {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}
