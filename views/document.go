package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soulcreations/site/content"
)

// Document wraps page in the full HTML shell the host serves. The client
// replaces the contents of #app once it has started.
func Document(cfg SiteConfig, t *content.Table, page Page) g.Node {
	b := t.MustBundle(page.Lang)
	meta := PageMeta{
		Title:       page.Title,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	if meta.Description == "" {
		meta.Description = b.Tagline
	}
	return h.Doctype(
		h.HTML(h.Lang(string(page.Lang)),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				h.Link(h.Rel("canonical"), h.Href(meta.URL)),
				h.Meta(g.Attr("property", "og:title"), h.Content(meta.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(meta.Description)),
				h.Meta(g.Attr("property", "og:type"), h.Content(meta.OGType)),
				h.Meta(g.Attr("property", "og:url"), h.Content(meta.URL)),
				h.Link(h.Rel("icon"), h.Href("/favicon.svg"), h.Type("image/svg+xml")),
				h.Link(h.Rel("stylesheet"), h.Href("/public/site.css")),
				h.Script(h.Type("application/ld+json"), g.Raw(BusinessJsonLD(cfg, t, page.Lang))),
				h.Script(h.Src("/public/wasm_exec.js"), g.Attr("defer")),
				h.Script(h.Src("/public/boot.js"), g.Attr("defer")),
			),
			h.Body(
				h.Div(h.ID("app"), page.Body),
			),
		),
	)
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
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

// BusinessJsonLD produces a Schema.org ProfessionalService block listing the
// offerings of locale l. Offer URLs use the fragment routes.
func BusinessJsonLD(cfg SiteConfig, t *content.Table, l content.Locale) string {
	b := t.MustBundle(l)
	site := buildURL(cfg.URL)
	offers := make([]map[string]interface{}, 0, len(b.Offerings))
	for _, o := range b.Offerings {
		offers = append(offers, map[string]interface{}{
			"@type": "Offer",
			"url":   site + "#/" + string(l) + "/offerings/" + o.Slug,
			"itemOffered": map[string]string{
				"@type":       "Service",
				"name":        o.Title,
				"description": o.Short,
			},
			"description": o.Price + " · " + o.Duration,
		})
	}
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "ProfessionalService",
		"name":        b.Brand,
		"slogan":      b.Tagline,
		"url":         site,
		"email":       t.Email,
		"inLanguage":  string(l),
		"makesOffer":  offers,
		"description": b.Intro.Body,
	}
	out, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(out)
}
