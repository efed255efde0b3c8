package content

import "golang.org/x/text/language"

// Locale is a supported display language code.
type Locale string

const (
	English Locale = "en"
	Dutch   Locale = "nl"
)

// Locales lists the supported locales in display order. English is the
// fallback when no preference matches.
var Locales = []Locale{English, Dutch}

// ParseLocale matches s exactly against the supported codes. Route segments
// are case-sensitive, so "EN" is not a locale.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	_, ok := ParseLocale(string(l))
	return ok
}

// Other returns the locale the language switch points to.
func (l Locale) Other() Locale {
	if l == Dutch {
		return English
	}
	return Dutch
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Dutch})

// MatchLocale picks the best supported locale for a list of BCP 47
// preferences, such as navigator.languages.
func MatchLocale(prefs ...string) Locale {
	tags := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	return fromMatch(tags)
}

// MatchAcceptLanguage picks the best supported locale for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) Locale {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return English
	}
	return fromMatch(tags)
}

func fromMatch(tags []language.Tag) Locale {
	if len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Locales[idx]
}
