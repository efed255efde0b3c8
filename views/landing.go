package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

// Landing is the language picker. It reads no bundle copy except the footer
// labels of the preferred locale.
func Landing(t *content.Table, opts Options) Page {
	preferred := opts.Preferred
	if !preferred.Valid() {
		preferred = content.English
	}
	l := t.Landing

	buttons := make([]g.Node, 0, len(content.Locales))
	for _, loc := range content.Locales {
		v := outline
		if loc == preferred {
			v = solid
		}
		buttons = append(buttons, h.Div(h.Data("locale", string(loc)),
			navButton(route.LocalePath(loc), v, g.Text(l.Languages[loc])),
		))
	}

	body := shell(KindLanding,
		h.Header(h.Class("sticky top-0 z-40 w-full border-b bg-white/70 backdrop-blur"),
			container(
				h.Div(h.Class("flex items-center justify-between py-4"),
					h.Div(h.Class("flex items-baseline gap-2"),
						h.Span(h.Class("text-xl font-extrabold tracking-tight"), g.Text(t.Brand)),
						g.If(l.Subtitle != "", h.Span(h.Class("text-sm text-amber-600"), g.Text("— "+l.Subtitle))),
					),
				),
			),
		),
		h.Main(
			section("",
				h.Div(h.Class("grid items-center gap-8 md:grid-cols-2"),
					h.Div(
						h.H1(h.Class("text-4xl font-extrabold tracking-tight md:text-6xl"),
							g.Text(l.Title+" "),
							h.Span(h.Class("text-amber-600"), g.Text(l.Highlight)),
						),
						h.P(h.Class("mt-4 text-lg text-gray-600"), g.Text(l.Prompt)),
						h.Div(h.Class("mt-8 flex flex-wrap gap-3"), g.Group(buttons)),
						h.P(h.Class("mt-6 text-sm text-gray-500"), g.Text(l.Hint)),
					),
					h.Div(h.Class("rounded-3xl border bg-gradient-to-br from-white to-amber-50 p-8 shadow-sm"),
						placeholderImage(),
						h.P(h.Class("mt-4 text-sm text-gray-600"), g.Text(l.Aside)),
					),
				),
			),
		),
		footer(t.Brand, t.MustBundle(preferred).Labels, opts.Year),
	)
	return Page{Kind: KindLanding, Title: t.Brand, Lang: preferred, Body: body}
}
