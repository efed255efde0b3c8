// Package route turns location fragments into routes and back.
//
// Fragment syntax is "#/{locale}" or "#/{locale}/offerings/{slug}". Anything
// else, including the empty fragment, resolves to the landing page.
package route

import (
	"strings"

	"github.com/soulcreations/site/content"
)

// Marker prefixes every location fragment.
const Marker = "#"

const offeringsSegment = "offerings"

// Route is one of Home, LocalePage, OfferingPage or Unknown.
type Route interface {
	// Path is the canonical fragment path without the marker. Unknown
	// routes report the landing path.
	Path() string
	isRoute()
}

// Home is the language picker.
type Home struct{}

// LocalePage is the one-page scroll for a locale.
type LocalePage struct {
	Locale content.Locale
}

// OfferingPage is the detail view of one offering. The slug is not checked
// against the content table here.
type OfferingPage struct {
	Locale content.Locale
	Slug   string
}

// Unknown is a fragment that matched no pattern. It renders like Home.
type Unknown struct {
	Fragment string
}

func (Home) isRoute()         {}
func (LocalePage) isRoute()   {}
func (OfferingPage) isRoute() {}
func (Unknown) isRoute()      {}

func (Home) Path() string           { return "/" }
func (r LocalePage) Path() string   { return LocalePath(r.Locale) }
func (r OfferingPage) Path() string { return OfferingPath(r.Locale, r.Slug) }
func (Unknown) Path() string        { return "/" }

// LocalePath is the fragment path of a locale's one-page view.
func LocalePath(l content.Locale) string {
	return "/" + string(l)
}

// OfferingPath is the fragment path of an offering detail view.
func OfferingPath(l content.Locale, slug string) string {
	return "/" + string(l) + "/" + offeringsSegment + "/" + slug
}

// Segments strips the marker and an optional leading slash, then splits on
// "/" and drops empty segments.
func Segments(fragment string) []string {
	s := strings.TrimPrefix(fragment, Marker)
	s = strings.TrimPrefix(s, "/")
	parts := strings.Split(s, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse classifies a location fragment. It depends on nothing but its
// argument.
func Parse(fragment string) Route {
	parts := Segments(fragment)
	switch len(parts) {
	case 0:
		return Home{}
	case 1:
		if l, ok := content.ParseLocale(parts[0]); ok {
			return LocalePage{Locale: l}
		}
	case 3:
		l, ok := content.ParseLocale(parts[0])
		if ok && parts[1] == offeringsSegment && parts[2] != "" {
			return OfferingPage{Locale: l, Slug: parts[2]}
		}
	}
	return Unknown{Fragment: fragment}
}

// Fragment prefixes path with the marker unless it already has one.
func Fragment(path string) string {
	if strings.HasPrefix(path, Marker) {
		return path
	}
	return Marker + path
}
