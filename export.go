package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/soulcreations/site/content"
)

// Export writes the site as static files for hosting without this server:
// index.html and 404.html, robots.txt, sitemap.xml, favicon.svg, and the
// embedded and static-dir assets under public/. The shell is prerendered for
// English. dir must not exist yet. Export returns the files it wrote.
func (a *App) Export(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("site: export: directory %q already exists", dir)
	}
	if err := os.MkdirAll(filepath.Join(dir, "public"), 0o755); err != nil {
		return nil, fmt.Errorf("site: export: %w", err)
	}

	var written []string
	write := func(rel string, data []byte) error {
		out := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		written = append(written, out)
		return nil
	}

	shell, err := a.renderShell(content.English)
	if err != nil {
		return nil, err
	}
	sitemap, err := sitemapXML(a.Config.URL)
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{"index.html", shell},
		{"404.html", shell},
		{"robots.txt", robotsTxt(a.Config.URL)},
		{"sitemap.xml", sitemap},
	} {
		if err := write(f.name, f.data); err != nil {
			return written, fmt.Errorf("site: export: %w", err)
		}
	}

	// Static dir first so embedded assets take precedence, as they do when
	// served.
	if info, err := os.Stat(a.staticDir); err == nil && info.IsDir() {
		if err := copyTree(os.DirFS(a.staticDir), ".", "public", write); err != nil {
			return written, fmt.Errorf("site: export static: %w", err)
		}
	} else {
		a.log.Warn("static dir missing; export has no client", zap.String("dir", a.staticDir))
	}

	embedded, _ := fs.Sub(EmbeddedAssets, "embedded")
	err = fs.WalkDir(embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(embedded, path)
		if err != nil {
			return err
		}
		if path == "favicon.svg" {
			return write(path, data)
		}
		return write("public/"+path, data)
	})
	if err != nil {
		return written, fmt.Errorf("site: export embedded: %w", err)
	}
	return written, nil
}

func copyTree(fsys fs.FS, root, prefix string, write func(string, []byte) error) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return write(prefix+"/"+path, data)
	})
}
