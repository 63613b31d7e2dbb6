package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPrinterTranslates(t *testing.T) {
	pl := Printer(language.Polish)
	en := Printer(language.English)

	assert.Equal(t, "Twoje konto zostało stworzone", pl.Sprintf("Your account has been created"))
	assert.Equal(t, "Your account has been created", en.Sprintf("Your account has been created"))
	assert.Equal(t, "Witaj Ala", pl.Sprintf("Hello %s", "Ala"))
}

func TestEntriesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.key], "duplicate key %q", e.key)
		seen[e.key] = true
		assert.NotEmpty(t, e.pl, e.key)
	}
}

func TestResolve(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lang=en", nil)
	tag, persist := Resolve(r, language.Polish)
	assert.Equal(t, "en", tag.String())
	assert.True(t, persist)

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	tag, persist = Resolve(r, language.Polish)
	assert.Equal(t, "en", tag.String())
	assert.False(t, persist)

	r = httptest.NewRequest("GET", "/?lang=xx-invalid!", nil)
	tag, _ = Resolve(r, language.Polish)
	assert.Equal(t, "pl", tag.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, ok := Parse("")
	assert.False(t, ok)
	_, ok = Parse("not a tag")
	assert.False(t, ok)

	tag, ok := Parse("pl-PL")
	assert.True(t, ok)
	assert.Equal(t, "pl", tag.String())
}
