package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"path"
	"strings"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// sitemapXML lists the single crawlable document. Pages behind the fragment
// are not separate URLs.
func sitemapXML(base string) ([]byte, error) {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: BuildURL(base)}},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, fmt.Errorf("site: sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

func robotsTxt(base string) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(BuildURL(base), "/") + "/sitemap.xml\n")
}
