// Package i18n holds the message catalog for the Polish and English interface.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// LangParam is the query parameter used to switch language.
	LangParam = "lang"
	// LangCookieName stores the language preference.
	LangCookieName = "lang"
)

var (
	supported = []language.Tag{language.Polish, language.English}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Polish))
	for _, e := range entries {
		_ = b.SetString(language.English, e.key, e.key)
		_ = b.SetString(language.Polish, e.key, e.pl)
	}
	return b
}

// Supported returns the languages with a full catalog.
func Supported() []language.Tag {
	return supported
}

// Parse matches s against the supported languages.
func Parse(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return base(matched), true
}

// Printer returns a printer translating catalog keys into tag's language.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// Resolve picks the request language from the lang query parameter, the lang cookie,
// Accept-Language, then fallback. The bool reports whether the choice came from the
// query parameter and should be persisted.
func Resolve(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return base(matched), false
			}
		}
	}
	return fallback, false
}

// base strips the -u- extensions the matcher adds to the returned tag.
func base(tag language.Tag) language.Tag {
	b, _ := tag.Base()
	t, err := language.Compose(b)
	if err != nil {
		return tag
	}
	return t
}
