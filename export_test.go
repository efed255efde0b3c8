package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	a := newTestApp(t, Config{})
	out := filepath.Join(t.TempDir(), "dist")

	written, err := a.Export(out)
	require.NoError(t, err)

	for _, rel := range []string{
		"index.html", "404.html", "robots.txt", "sitemap.xml", "favicon.svg",
		"public/boot.js", "public/site.css", "public/site.wasm", "public/wasm_exec.js",
	} {
		path := filepath.Join(out, filepath.FromSlash(rel))
		assert.FileExists(t, path)
		assert.Contains(t, written, path)
	}
	assert.NoFileExists(t, filepath.Join(out, "public", "favicon.svg"))

	f, err := os.Open(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 1, doc.Find(`#app [data-view="landing"]`).Length())

	robots, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(robots), testURL+"/sitemap.xml\n"))
}

func TestExportRefusesExistingDir(t *testing.T) {
	a := newTestApp(t, Config{})
	_, err := a.Export(t.TempDir())
	assert.ErrorContains(t, err, "already exists")
}

func TestExportWithoutStaticDir(t *testing.T) {
	a := New(Config{URL: testURL, StaticDir: filepath.Join(t.TempDir(), "none")}, ViewFuncs{})
	out := filepath.Join(t.TempDir(), "dist")

	_, err := a.Export(out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "public", "boot.js"))
	assert.NoFileExists(t, filepath.Join(out, "public", "site.wasm"))
}
