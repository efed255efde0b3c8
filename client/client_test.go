package client

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/route"
)

type fakeMount struct {
	html      string
	title     string
	lang      content.Locale
	replaces  int
	scrolled  []string
	scrollTop int
	fail      error
}

func (m *fakeMount) Replace(html, title string, lang content.Locale) error {
	if m.fail != nil {
		return m.fail
	}
	m.html, m.title, m.lang = html, title, lang
	m.replaces++
	return nil
}

func (m *fakeMount) ScrollTo(id string) { m.scrolled = append(m.scrolled, id) }
func (m *fakeMount) ScrollTop()         { m.scrollTop++ }

func (m *fakeMount) doc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(m.html))
	require.NoError(t, err)
	return doc
}

func (m *fakeMount) view(t *testing.T) string {
	t.Helper()
	return m.doc(t).Find("[data-view]").First().AttrOr("data-view", "")
}

func newTestApp(fragment string, opts ...Option) (*App, *route.MemoryPort, *fakeMount) {
	port := route.NewMemoryPort(fragment)
	mount := &fakeMount{}
	opts = append([]Option{WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	})}, opts...)
	app := New(content.Default(), route.NewResolver(port), mount, opts...)
	return app, port, mount
}

func TestStartRendersLanding(t *testing.T) {
	app, _, mount := newTestApp("")
	app.Start()
	defer app.Stop()

	assert.Equal(t, "landing", mount.view(t))
	assert.Equal(t, content.English, mount.lang)
	assert.Equal(t, "Soul Creations", mount.title)
	assert.Equal(t, 1, mount.scrollTop)
	assert.Equal(t, route.Home{}, app.Current())
}

func TestStartTwiceSubscribesOnce(t *testing.T) {
	app, port, mount := newTestApp("")
	app.Start()
	app.Start()
	defer app.Stop()

	port.Write("#/en")
	assert.Equal(t, 2, mount.replaces, "a second Start neither renders nor subscribes again")
}

func TestLanguageChoiceNavigates(t *testing.T) {
	app, port, mount := newTestApp("", WithPreferred(content.Dutch))
	app.Start()
	defer app.Stop()

	doc := mount.doc(t)
	nl := doc.Find(`[data-locale="nl"] a`)
	require.Contains(t, nl.AttrOr("class", ""), "bg-amber-500")

	en := doc.Find(`[data-locale="en"] a`)
	act := ActionFromAttrs(en.AttrOr("data-navigate", ""), en.AttrOr("data-scroll", ""), false)
	require.True(t, app.Dispatch(act))

	assert.Equal(t, "#/en", port.Read())
	assert.Equal(t, "one-page", mount.view(t))
	assert.Equal(t, content.English, mount.lang)
	assert.Equal(t, route.LocalePage{Locale: content.English}, app.Current())
	assert.Contains(t, mount.doc(t).Find("footer").Text(), "© 2026")
}

func TestOfferingCardOpensDetail(t *testing.T) {
	app, port, mount := newTestApp("#/nl")
	app.Start()
	defer app.Stop()
	before := mount.scrollTop

	card := mount.doc(t).Find(`[data-slug="energie-afstemming"] a[data-navigate]`)
	require.Equal(t, 1, card.Length())
	require.True(t, app.Dispatch(ActionFromAttrs(card.AttrOr("data-navigate", ""), "", false)))

	assert.Equal(t, "#/nl/offerings/energie-afstemming", port.Read())
	assert.Equal(t, "offering", mount.view(t))
	assert.Equal(t, content.Dutch, mount.lang)
	assert.Equal(t, before+1, mount.scrollTop, "a new route starts at the top")

	back := mount.doc(t).Find(`main a[data-navigate]`)
	require.True(t, app.Dispatch(ActionFromAttrs(back.AttrOr("data-navigate", ""), "", false)))
	assert.Equal(t, "#/nl", port.Read())
	assert.Equal(t, "one-page", mount.view(t))
}

func TestSectionLinkScrollsWithoutNavigating(t *testing.T) {
	app, port, mount := newTestApp("#/en")
	app.Start()
	defer app.Stop()
	replaces := mount.replaces

	link := mount.doc(t).Find(`a[data-scroll="offerings"]`).First()
	require.Equal(t, 1, link.Length())
	act := ActionFromAttrs(link.AttrOr("data-navigate", ""), link.AttrOr("data-scroll", ""), false)
	require.Equal(t, ActionScroll, act.Kind)
	require.True(t, app.Dispatch(act))

	assert.Equal(t, []string{"offerings"}, mount.scrolled)
	assert.Equal(t, "#/en", port.Read())
	assert.Equal(t, replaces, mount.replaces)
}

func TestContactSubmitIsSuppressed(t *testing.T) {
	app, port, mount := newTestApp("#/en")
	app.Start()
	defer app.Stop()
	replaces := mount.replaces

	assert.True(t, app.Dispatch(ActionFromAttrs("", "", true)))
	assert.Equal(t, "#/en", port.Read())
	assert.Equal(t, replaces, mount.replaces)
}

func TestPlainClicksAreLeftAlone(t *testing.T) {
	app, _, _ := newTestApp("")
	assert.False(t, app.Dispatch(ActionFromAttrs("", "", false)))
}

func TestUnknownSlugShowsNotFound(t *testing.T) {
	app, _, mount := newTestApp("#/en/offerings/energie-afstemming")
	app.Start()
	defer app.Stop()

	assert.Equal(t, "not-found", mount.view(t))
	assert.Contains(t, mount.doc(t).Text(), "Not found.")
}

func TestStopHaltsRendering(t *testing.T) {
	app, port, mount := newTestApp("")
	app.Start()
	app.Stop()
	app.Stop()

	port.Write("#/nl")
	assert.Equal(t, 1, mount.replaces)
	assert.Equal(t, "landing", mount.view(t))
}

func TestReplaceFailureKeepsPreviousRoute(t *testing.T) {
	app, port, mount := newTestApp("#/en")
	app.Start()
	defer app.Stop()

	mount.fail = errors.New("detached")
	port.Write("#/nl")
	assert.Equal(t, route.LocalePage{Locale: content.English}, app.Current())

	mount.fail = nil
	app.Render()
	assert.Equal(t, route.LocalePage{Locale: content.Dutch}, app.Current())
	assert.Equal(t, content.Dutch, mount.lang)
}

func TestActionFromAttrs(t *testing.T) {
	tests := []struct {
		name     string
		navigate string
		scroll   string
		inert    bool
		want     Action
	}{
		{"navigate", "/en", "", false, Action{Kind: ActionNavigate, Target: "/en"}},
		{"navigate wins", "/en", "about", true, Action{Kind: ActionNavigate, Target: "/en"}},
		{"scroll", "", "about", false, Action{Kind: ActionScroll, Target: "about"}},
		{"submit", "", "", true, Action{Kind: ActionSubmit}},
		{"none", "", "", false, Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFromAttrs(tt.navigate, tt.scroll, tt.inert))
		})
	}
}
