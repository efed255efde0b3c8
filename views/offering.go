package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

// OfferingDetail shows one offering with its booking link.
func OfferingDetail(t *content.Table, b *content.Bundle, o content.Offering, opts Options) Page {
	lb := b.Labels
	back := route.LocalePath(b.Locale)

	body := shell(KindOffering,
		header(b,
			h.Div(h.Class("flex items-center gap-3"),
				navButton(back, outline, g.Text(b.Back)),
			),
		),
		h.Main(
			section("",
				h.Div(h.Class("grid gap-8 md:grid-cols-2"),
					h.Div(
						h.H1(h.Class("text-3xl font-extrabold tracking-tight md:text-4xl"), g.Text(o.Title)),
						h.Div(h.Class("mt-4 text-gray-700"), prose(o.Detail)),
						h.Ul(h.Class("mt-6 space-y-2 text-sm text-gray-700"),
							fact("price", lb.Price, o.Price),
							fact("duration", lb.Duration, o.Duration),
							fact("format", lb.Format, lb.FormatValue),
						),
						h.Div(h.Class("mt-8 flex flex-wrap gap-3"),
							h.A(h.Data("book", o.Slug), h.Href(MailtoURL(t.Email, b.Brand, o.Title)), h.Class(buttonClass(solid)), g.Text(b.BookCTA)),
							navButton(back, outline, g.Text(b.Back)),
						),
					),
					h.Div(h.Class("rounded-3xl border border-amber-200 p-8 shadow-sm"),
						placeholderImage(),
						h.P(h.Class("mt-3 text-sm text-gray-600"), g.Text(lb.DetailAside)),
					),
				),
			),
		),
		footer(b.Brand, lb, opts.Year),
	)
	return Page{Kind: KindOffering, Title: o.Title + " | " + b.Brand, Lang: b.Locale, Body: body}
}

func fact(key, label, value string) g.Node {
	return h.Li(h.Data("fact", key),
		g.Text("• "),
		h.Strong(g.Text(label+":")),
		g.Text(" "),
		h.Span(h.Data("value", ""), g.Text(value)),
	)
}

// NotFound is shown for a slug the locale does not list. Its only action
// leads back to the locale page.
func NotFound(b *content.Bundle, opts Options) Page {
	body := shell(KindNotFound,
		container(
			h.Div(h.Class("py-20 text-center"),
				h.P(h.Class("text-gray-600"), g.Text(b.Labels.NotFound)),
				h.Div(h.Class("mt-6"), navButton(route.LocalePath(b.Locale), solid, g.Text(b.Back))),
			),
		),
	)
	return Page{Kind: KindNotFound, Title: b.Labels.NotFound + " | " + b.Brand, Lang: b.Locale, Body: body}
}
