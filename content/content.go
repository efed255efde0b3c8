// Package content holds the bilingual copy and offerings shown by the site.
//
// The table is described by an embedded YAML document, parsed once and
// validated before use. Nothing mutates it afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("content: invalid table")

// Offering is a bookable service as listed on the one-page and detail views.
type Offering struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Short    string `yaml:"short"`
	Detail   string `yaml:"detail"` // markdown
	Price    string `yaml:"price"`
	Duration string `yaml:"duration"`
}

// Section is a titled block of copy.
type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Labels are the short UI strings that differ per locale.
type Labels struct {
	NavAbout     string `yaml:"nav_about"`
	NavOfferings string `yaml:"nav_offerings"`
	NavContact   string `yaml:"nav_contact"`
	Explore      string `yaml:"explore"`
	ContactCTA   string `yaml:"contact_cta"`
	ReadAndBook  string `yaml:"read_and_book"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Message      string `yaml:"message"`
	Send         string `yaml:"send"`
	Price        string `yaml:"price"`
	Duration     string `yaml:"duration"`
	Format       string `yaml:"format"`
	FormatValue  string `yaml:"format_value"`
	NotFound     string `yaml:"not_found"`
	Rights       string `yaml:"rights"`
	Privacy      string `yaml:"privacy"`
	Terms        string `yaml:"terms"`
	DetailAside  string `yaml:"detail_aside"`
}

// Bundle is everything one locale displays.
type Bundle struct {
	Locale         Locale     `yaml:"-"`
	Brand          string     `yaml:"brand"`
	Tagline        string     `yaml:"tagline"`
	Intro          Section    `yaml:"intro"`
	About          Section    `yaml:"about"`
	OfferingsTitle string     `yaml:"offerings_title"`
	Offerings      []Offering `yaml:"offerings"`
	Contact        Section    `yaml:"contact"`
	BookCTA        string     `yaml:"book_cta"`
	Back           string     `yaml:"back"`
	Labels         Labels     `yaml:"labels"`
}

// Offering looks slug up in this bundle only. Slugs are not shared
// identifiers across locales.
func (b *Bundle) Offering(slug string) (Offering, bool) {
	for _, o := range b.Offerings {
		if o.Slug == slug {
			return o, true
		}
	}
	return Offering{}, false
}

// Landing is the locale-independent language picker copy.
type Landing struct {
	Title     string            `yaml:"title"`
	Highlight string            `yaml:"highlight"`
	Subtitle  string            `yaml:"subtitle"`
	Prompt    string            `yaml:"prompt"`
	Hint      string            `yaml:"hint"`
	Aside     string            `yaml:"aside"`
	Languages map[Locale]string `yaml:"languages"`
}

// Table maps each supported locale to its bundle.
type Table struct {
	Brand   string             `yaml:"brand"`
	Email   string             `yaml:"email"`
	Landing Landing            `yaml:"landing"`
	Bundles map[Locale]*Bundle `yaml:"bundles"`
}

// Bundle returns the bundle for l.
func (t *Table) Bundle(l Locale) (*Bundle, bool) {
	b, ok := t.Bundles[l]
	return b, ok
}

// MustBundle returns the bundle for l and panics when it is missing. Only
// call it with a Locale obtained from ParseLocale or the Locales list.
func (t *Table) MustBundle(l Locale) *Bundle {
	b, ok := t.Bundles[l]
	if !ok {
		panic(fmt.Sprintf("content: no bundle for locale %q", l))
	}
	return b
}

// Load parses and validates a YAML content document.
func Load(doc []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(doc, &t); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	for l, b := range t.Bundles {
		if b != nil {
			b.Locale = l
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded document. The embedded
// document is part of the binary, so a validation failure is a build defect
// and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Load(defaultDocument)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Validate checks the structural invariants every view relies on.
func (t *Table) Validate() error {
	if t.Brand == "" {
		return fmt.Errorf("%w: brand is empty", ErrInvalid)
	}
	if t.Email == "" {
		return fmt.Errorf("%w: contact email is empty", ErrInvalid)
	}
	offerings := -1
	for _, l := range Locales {
		b, ok := t.Bundles[l]
		if !ok || b == nil {
			return fmt.Errorf("%w: missing bundle for %q", ErrInvalid, l)
		}
		if t.Landing.Languages[l] == "" {
			return fmt.Errorf("%w: landing has no language name for %q", ErrInvalid, l)
		}
		if err := b.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, l, err)
		}
		if offerings >= 0 && len(b.Offerings) != offerings {
			return fmt.Errorf("%w: %s has %d offerings, expected %d", ErrInvalid, l, len(b.Offerings), offerings)
		}
		offerings = len(b.Offerings)
	}
	for l := range t.Bundles {
		if !l.Valid() {
			return fmt.Errorf("%w: unsupported locale %q", ErrInvalid, l)
		}
	}
	return nil
}

func (b *Bundle) validate() error {
	if b.Brand == "" {
		return errors.New("brand is empty")
	}
	for name, s := range map[string]Section{"intro": b.Intro, "about": b.About, "contact": b.Contact} {
		if s.Title == "" || s.Body == "" {
			return fmt.Errorf("section %s is incomplete", name)
		}
	}
	if len(b.Offerings) == 0 {
		return errors.New("no offerings")
	}
	seen := make(map[string]struct{}, len(b.Offerings))
	for i, o := range b.Offerings {
		if o.Slug == "" {
			return fmt.Errorf("offering %d has no slug", i)
		}
		if _, dup := seen[o.Slug]; dup {
			return fmt.Errorf("duplicate offering slug %q", o.Slug)
		}
		seen[o.Slug] = struct{}{}
		if o.Title == "" || o.Short == "" || o.Detail == "" || o.Price == "" || o.Duration == "" {
			return fmt.Errorf("offering %q is incomplete", o.Slug)
		}
	}
	return nil
}
