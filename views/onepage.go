package views

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

// header is the sticky bar of the locale pages. The brand appears here once.
func header(b *content.Bundle, actions ...g.Node) g.Node {
	return h.Header(h.Class("sticky top-0 z-40 w-full border-b bg-white/80 backdrop-blur"),
		container(
			h.Div(h.Class("flex items-center justify-between py-3"),
				navLink(route.LocalePath(b.Locale), "text-xl font-extrabold",
					h.Span(h.Class("tracking-tight"), g.Text(b.Brand)),
				),
				g.Group(actions),
			),
		),
	)
}

// OnePage is the marketing scroll for one locale.
func OnePage(b *content.Bundle, opts Options) Page {
	lb := b.Labels
	other := b.Locale.Other()

	body := shell(KindOnePage,
		header(b,
			h.Nav(h.Class("hidden gap-6 md:flex"),
				scrollLink(b.Locale, "about", "hover:text-amber-700", g.Text(lb.NavAbout)),
				scrollLink(b.Locale, "offerings", "hover:text-amber-700", g.Text(lb.NavOfferings)),
				scrollLink(b.Locale, "contact", "hover:text-amber-700", g.Text(lb.NavContact)),
			),
			h.Div(h.Class("flex items-center gap-3"),
				navButton(route.LocalePath(other), outline, g.Text(strings.ToUpper(string(other)))),
			),
		),
		h.Main(
			section("home",
				h.Div(h.Class("grid items-center gap-8 md:grid-cols-2"),
					h.Div(
						h.H1(h.Class("text-4xl font-extrabold tracking-tight md:text-6xl"), g.Text(b.Intro.Title)),
						h.P(h.Class("mt-4 text-lg text-gray-600"), g.Text(b.Intro.Body)),
						h.Div(h.Class("mt-8 flex gap-3"),
							scrollLink(b.Locale, "offerings", buttonClass(solid), g.Text(lb.Explore)),
							scrollLink(b.Locale, "contact", buttonClass(outline), g.Text(lb.ContactCTA)),
						),
					),
					h.Div(h.Class("rounded-3xl border border-amber-200 p-8 shadow-sm"),
						placeholderImage(),
						h.Div(h.Class("mt-4 grid grid-cols-3 gap-3 text-center text-sm"),
							tile("Light", "White space"),
							tile("Gold", "Accents"),
							tile("Calm", "Typography"),
						),
					),
				),
			),
			section("about",
				sectionTitle(b.About.Title),
				h.Div(h.Class("mt-4 max-w-3xl text-gray-700"), prose(b.About.Body)),
			),
			section("offerings",
				sectionTitle(b.OfferingsTitle),
				h.Div(h.Class("mt-8 grid gap-6 md:grid-cols-3"),
					g.Map(b.Offerings, func(o content.Offering) g.Node {
						return offeringCard(b, o)
					}),
				),
			),
			section("contact",
				sectionTitle(b.Contact.Title),
				h.P(h.Class("mt-3 max-w-2xl text-gray-700"), g.Text(b.Contact.Body)),
				contactForm(lb),
			),
		),
		footer(b.Brand, lb, opts.Year),
	)
	return Page{Kind: KindOnePage, Title: b.Brand + " — " + b.Tagline, Lang: b.Locale, Body: body}
}

func tile(head, text string) g.Node {
	return h.Div(h.Class("rounded-xl border p-3"),
		h.Div(h.Class("font-semibold text-amber-700"), g.Text(head)),
		h.Div(g.Text(text)),
	)
}

func offeringCard(b *content.Bundle, o content.Offering) g.Node {
	return h.Div(h.Data("slug", o.Slug), h.Class("rounded-3xl border p-6 shadow-sm"),
		h.H3(h.Class("text-lg font-semibold"), g.Text(o.Title)),
		h.P(h.Class("mt-2 text-sm text-gray-600"), g.Text(o.Short)),
		h.Div(h.Class("mt-4 flex items-center justify-between text-sm"),
			h.Span(h.Class("font-semibold text-amber-700"), g.Text(o.Price)),
			h.Span(h.Class("text-gray-500"), g.Text(o.Duration)),
		),
		h.Div(h.Class("mt-6"),
			navButton(route.OfferingPath(b.Locale, o.Slug), solid, g.Text(b.Labels.ReadAndBook)),
		),
	)
}

// contactForm is display only: the client suppresses its submission.
func contactForm(lb content.Labels) g.Node {
	field := "rounded-2xl border px-4 py-3"
	return h.Form(h.Data("inert", ""), h.Class("mt-8 grid gap-4 md:grid-cols-2"),
		h.Input(h.Class(field), h.Name("name"), h.Placeholder(lb.Name)),
		h.Input(h.Class(field), h.Name("email"), h.Type("email"), h.Placeholder(lb.Email)),
		h.Textarea(h.Class("md:col-span-2 "+field), h.Name("message"), g.Attr("rows", "5"), h.Placeholder(lb.Message)),
		h.Button(h.Type("submit"), h.Class(buttonClass(solid)), g.Text(lb.Send)),
	)
}
