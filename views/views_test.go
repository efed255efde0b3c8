package views

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

func parseHTML(t testing.TB, n g.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err, "parse html")
	return doc
}

func selectDoc(t testing.TB, fragment string, opts Options) (Page, *goquery.Document) {
	t.Helper()
	page := Select(route.Parse(fragment), content.Default(), opts)
	return page, parseHTML(t, page.Body)
}

func TestLocalePageRendersOnePage(t *testing.T) {
	table := content.Default()
	for _, l := range content.Locales {
		t.Run(string(l), func(t *testing.T) {
			b := table.MustBundle(l)
			page, doc := selectDoc(t, "#/"+string(l), Options{Year: 2026})

			require.Equal(t, KindOnePage, page.Kind)
			require.Equal(t, l, page.Lang)
			require.Equal(t, 1, doc.Find(`[data-view="one-page"]`).Length())
			require.Equal(t, 1, strings.Count(doc.Find("header").Text(), b.Brand), "brand must appear exactly once in the header")
			require.Equal(t, b.Intro.Title, doc.Find("h1").First().Text())

			for _, id := range []string{"home", "about", "offerings", "contact"} {
				require.Equal(t, 1, doc.Find("section#"+id).Length(), "section %s", id)
			}

			cards := doc.Find("[data-slug]")
			require.Equal(t, len(b.Offerings), cards.Length())
			cards.Each(func(i int, s *goquery.Selection) {
				o := b.Offerings[i]
				require.Equal(t, o.Title, s.Find("h3").Text())
				nav, ok := s.Find("a[data-navigate]").Attr("data-navigate")
				require.True(t, ok)
				require.Equal(t, route.OfferingPath(l, o.Slug), nav)
			})

			sw, _ := doc.Find("header a[data-navigate]").Last().Attr("data-navigate")
			require.Equal(t, "/"+string(l.Other()), sw, "language switch points at the other locale")
			require.Contains(t, doc.Find("footer").Text(), "© 2026 "+b.Brand)
		})
	}
}

func TestSectionLinksDoNotNavigate(t *testing.T) {
	_, doc := selectDoc(t, "#/en", Options{})
	links := doc.Find("a[data-scroll]")
	require.Greater(t, links.Length(), 0)
	links.Each(func(_ int, s *goquery.Selection) {
		_, nav := s.Attr("data-navigate")
		require.False(t, nav)
		href, _ := s.Attr("href")
		require.Equal(t, "#/en", href)
	})
}

func TestContactFormIsInert(t *testing.T) {
	_, doc := selectDoc(t, "#/nl", Options{})
	form := doc.Find("section#contact form")
	require.Equal(t, 1, form.Length())
	_, inert := form.Attr("data-inert")
	require.True(t, inert)
	_, hasAction := form.Attr("action")
	require.False(t, hasAction)
	require.Equal(t, "Je bericht", form.Find("textarea").AttrOr("placeholder", ""))
	require.Equal(t, "Verstuur", form.Find("button[type=submit]").Text())
}

func TestOfferingDetailShowsOfferingVerbatim(t *testing.T) {
	table := content.Default()
	for _, l := range content.Locales {
		b := table.MustBundle(l)
		for _, o := range b.Offerings {
			t.Run(string(l)+"/"+o.Slug, func(t *testing.T) {
				page, doc := selectDoc(t, "#"+route.OfferingPath(l, o.Slug), Options{})
				require.Equal(t, KindOffering, page.Kind)
				require.Equal(t, o.Title, doc.Find("h1").Text())
				require.Equal(t, o.Price, doc.Find(`[data-fact="price"] [data-value]`).Text())
				require.Equal(t, o.Duration, doc.Find(`[data-fact="duration"] [data-value]`).Text())
				require.Equal(t, 1, strings.Count(doc.Find("header").Text(), b.Brand))
			})
		}
	}
}

func TestDutchEnergyAlignmentScenario(t *testing.T) {
	page, doc := selectDoc(t, "#/nl/offerings/energie-afstemming", Options{})
	require.Equal(t, KindOffering, page.Kind)
	require.Equal(t, content.Dutch, page.Lang)
	require.Equal(t, "Energie Afstemming", doc.Find("h1").Text())
	require.Equal(t, "€111", doc.Find(`[data-fact="price"] [data-value]`).Text())
	require.Equal(t, "75 min", doc.Find(`[data-fact="duration"] [data-value]`).Text())
	require.Contains(t, doc.Find(`[data-fact="duration"]`).Text(), "Duur:")

	book := doc.Find("a[data-book]")
	require.Equal(t, "Afspraak plannen", book.Text())
	require.Equal(t,
		"mailto:hello@example.com?subject=Soul%20Creations%20%E2%80%94%20Energie%20Afstemming",
		book.AttrOr("href", ""))

	back := doc.Find("main a[data-navigate]")
	require.Equal(t, 1, back.Length())
	require.Equal(t, "/nl", back.AttrOr("data-navigate", ""))
	require.Equal(t, "Terug", back.Text())
}

func TestUnknownSlugRendersNotFound(t *testing.T) {
	tests := []struct {
		fragment string
		back     string
		message  string
	}{
		{"#/nl/offerings/energy-alignment", "/nl", "Niet gevonden."},
		{"#/en/offerings/helderheid-sessie", "/en", "Not found."},
		{"#/en/offerings/nope", "/en", "Not found."},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			page, doc := selectDoc(t, tt.fragment, Options{})
			require.Equal(t, KindNotFound, page.Kind)
			require.Contains(t, doc.Text(), tt.message)

			actions := doc.Find("[data-navigate]")
			require.Equal(t, 1, actions.Length(), "not found offers a single action")
			require.Equal(t, tt.back, actions.AttrOr("data-navigate", ""))
			require.Equal(t, "#"+tt.back, actions.AttrOr("href", ""))
		})
	}
}

func TestUnrecognisedFragmentsRenderLanding(t *testing.T) {
	for _, fragment := range []string{"", "#", "#/", "#/fr", "#/en/offerings", "#/EN", "#about", "#/nl/x/y"} {
		t.Run(fragment, func(t *testing.T) {
			page, doc := selectDoc(t, fragment, Options{})
			require.Equal(t, KindLanding, page.Kind)
			require.Equal(t, 1, doc.Find(`[data-view="landing"]`).Length())
		})
	}
}

func TestLandingLanguageButtons(t *testing.T) {
	tests := []struct {
		preferred content.Locale
		solid     string
	}{
		{content.English, "en"},
		{content.Dutch, "nl"},
		{"", "en"},
		{"fr", "en"},
	}
	for _, tt := range tests {
		t.Run(string(tt.preferred), func(t *testing.T) {
			page, doc := selectDoc(t, "", Options{Preferred: tt.preferred})
			require.Equal(t, tt.solid, string(page.Lang))

			en := doc.Find(`[data-locale="en"] a`)
			nl := doc.Find(`[data-locale="nl"] a`)
			require.Equal(t, "English", en.Text())
			require.Equal(t, "Nederlands", nl.Text())
			require.Equal(t, "/en", en.AttrOr("data-navigate", ""))
			require.Equal(t, "/nl", nl.AttrOr("data-navigate", ""))
			require.Equal(t, "#/en", en.AttrOr("href", ""))

			solid := doc.Find(`[data-locale="` + tt.solid + `"] a`)
			require.Contains(t, solid.AttrOr("class", ""), "bg-amber-500")
		})
	}
}

func TestMailtoURL(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Energy Alignment", "mailto:hello@example.com?subject=Soul%20Creations%20%E2%80%94%20Energy%20Alignment"},
		{"Q&A", "mailto:hello@example.com?subject=Soul%20Creations%20%E2%80%94%20Q%26A"},
		{"Mind's Eye (Intro)!*", "mailto:hello@example.com?subject=Soul%20Creations%20%E2%80%94%20Mind's%20Eye%20(Intro)!*"},
		{"1+1", "mailto:hello@example.com?subject=Soul%20Creations%20%E2%80%94%201%2B1"},
	}
	for _, tt := range tests {
		if got := MailtoURL("hello@example.com", "Soul Creations", tt.title); got != tt.want {
			t.Errorf("MailtoURL(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDocumentWrapsPage(t *testing.T) {
	table := content.Default()
	page := Select(route.Parse("#/nl"), table, Options{})
	doc := parseHTML(t, Document(SiteConfig{URL: "https://soulcreations.example"}, table, page))

	require.Equal(t, "nl", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, page.Title, doc.Find("title").Text())
	require.Equal(t, "https://soulcreations.example/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, 1, doc.Find(`#app [data-view="one-page"]`).Length())
	require.Equal(t, "Afstemmen • Heling • Creëren", doc.Find(`meta[name="description"]`).AttrOr("content", ""))

	var ld map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc.Find(`script[type="application/ld+json"]`).Text()), &ld))
	require.Equal(t, "ProfessionalService", ld["@type"])
	offers, ok := ld["makesOffer"].([]interface{})
	require.True(t, ok)
	require.Len(t, offers, 3)
	first := offers[0].(map[string]interface{})
	require.Equal(t, "https://soulcreations.example/#/nl/offerings/helderheid-sessie", first["url"])
}

func TestComponentAdapter(t *testing.T) {
	page := Select(route.Home{}, content.Default(), Options{})
	var buf bytes.Buffer
	require.NoError(t, Component(page.Body).Render(t.Context(), &buf))
	s, err := String(page.Body)
	require.NoError(t, err)
	require.Equal(t, s, buf.String())
}
