package views

import (
	g "maragu.dev/gomponents"

	"github.com/soulcreations/site/content"
)

// SiteConfig holds host settings the document head needs.
type SiteConfig struct {
	URL         string // canonical base URL (default "http://localhost:3000")
	Description string // meta description, defaults to the bundle tagline
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
}

// Kind names the four view variants.
type Kind string

const (
	KindLanding  Kind = "landing"
	KindOnePage  Kind = "one-page"
	KindOffering Kind = "offering"
	KindNotFound Kind = "not-found"
)

// Page is a selected view ready to be mounted.
type Page struct {
	Kind  Kind
	Title string
	Lang  content.Locale
	Body  g.Node
}

// Options are the inputs a view needs besides the route and the table.
type Options struct {
	// Preferred is highlighted on the landing language picker.
	Preferred content.Locale
	// Year is shown in the footer.
	Year int
}
