package views

import (
	"time"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

// Select picks the view for r. Home and Unknown both render the landing
// page; an offering slug missing from its locale renders NotFound.
func Select(r route.Route, t *content.Table, opts Options) Page {
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	switch r := r.(type) {
	case route.LocalePage:
		return OnePage(t.MustBundle(r.Locale), opts)
	case route.OfferingPage:
		b := t.MustBundle(r.Locale)
		if o, ok := b.Offering(r.Slug); ok {
			return OfferingDetail(t, b, o, opts)
		}
		return NotFound(b, opts)
	default:
		return Landing(t, opts)
	}
}
