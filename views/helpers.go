package views

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/markdown"
	"github.com/soulcreations/site/route"
)

// Component adapts a node to templ so handlers can render it.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// String renders n, for mounting into the DOM.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// uriComponent undoes the escapes url.QueryEscape adds beyond those of
// encodeURIComponent.
var uriComponent = strings.NewReplacer("+", "%20", "%27", "'", "%28", "(", "%29", ")", "%21", "!", "%2A", "*")

// MailtoURL builds the booking link. The subject is percent-encoded the way
// encodeURIComponent does it, with spaces as %20.
func MailtoURL(email, brand, title string) string {
	return "mailto:" + email + "?subject=" + uriComponent.Replace(url.QueryEscape(brand+" — "+title))
}

type variant int

const (
	solid variant = iota
	outline
)

// buttonClass returns the CSS classes for a button of the given variant.
func buttonClass(v variant) string {
	base := "inline-flex items-center justify-center rounded-2xl px-5 py-3 text-sm font-medium transition"
	if v == outline {
		return base + " border border-amber-500 text-amber-700 hover:bg-amber-50"
	}
	return base + " bg-amber-500 text-white hover:bg-amber-600"
}

// navLink navigates to path. The href keeps the link working before the
// client has attached its handlers.
func navLink(path, class string, children ...g.Node) g.Node {
	return h.A(h.Href(route.Fragment(path)), h.Data("navigate", path), h.Class(class), g.Group(children))
}

func navButton(path string, v variant, children ...g.Node) g.Node {
	return navLink(path, buttonClass(v), children...)
}

// scrollLink scrolls to a section of the current page without touching the
// fragment. Its href points at the page it is on, so following it without
// the client changes nothing.
func scrollLink(l content.Locale, id, class string, children ...g.Node) g.Node {
	return h.A(h.Href(route.Fragment(route.LocalePath(l))), h.Data("scroll", id), h.Class(class), g.Group(children))
}

func container(children ...g.Node) g.Node {
	return h.Div(h.Class("mx-auto w-full max-w-5xl px-4"), g.Group(children))
}

func section(id string, children ...g.Node) g.Node {
	return h.Section(
		g.If(id != "", h.ID(id)),
		h.Class("border-t bg-white"),
		container(h.Div(h.Class("py-12 md:py-16"), g.Group(children))),
	)
}

func sectionTitle(text string) g.Node {
	return h.H2(h.Class("text-2xl font-bold md:text-3xl"),
		h.Span(h.Class("border-b-4 border-amber-500 pb-1"), g.Text(text)),
	)
}

func prose(md string) g.Node {
	return h.Div(h.Class("prose"), g.Raw(markdown.HTML(md)))
}

func placeholderImage() g.Node {
	return h.Div(h.Class("aspect-[4/3] w-full rounded-2xl border bg-white shadow-inner"))
}

func footer(brand string, labels content.Labels, year int) g.Node {
	return h.Footer(h.Class("border-t"),
		container(
			h.Div(h.Class("flex flex-col items-center justify-between gap-3 py-8 text-sm text-gray-600 md:flex-row"),
				h.P(g.Text("© "+strconv.Itoa(year)+" "+brand+". "+labels.Rights)),
				h.Div(h.Class("flex items-center gap-4"),
					navLink("/", "hover:text-amber-700", g.Text(labels.Privacy)),
					navLink("/", "hover:text-amber-700", g.Text(labels.Terms)),
				),
			),
		),
	)
}

// shell is the outer frame every view shares.
func shell(kind Kind, children ...g.Node) g.Node {
	return h.Div(h.Data("view", string(kind)), h.Class("min-h-screen bg-white text-gray-900"), g.Group(children))
}
