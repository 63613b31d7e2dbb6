package templates

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/oddam/donations/internal/i18n"
)

func TestParseDefinesEveryView(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)
	for _, name := range []string{
		"index.html", "form.html", "api_institutions.html", "form-confirmation.html",
		"login.html", "register.html", "user_profile.html", "error.html",
		"header", "footer", "institution_options",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

var literalKey = regexp.MustCompile(`\.T "([^"]+)"`)

// Keys whose Polish text is the same as the English one.
var samePolish = map[string]bool{"Start": true, "Status": true, "Email": true}

func TestViewStringsAreTranslated(t *testing.T) {
	pl := i18n.Printer(language.Polish)
	views, err := fs.Glob(files, "*.html")
	require.NoError(t, err)

	for _, name := range views {
		raw, err := fs.ReadFile(files, name)
		require.NoError(t, err)
		for _, m := range literalKey.FindAllStringSubmatch(string(raw), -1) {
			key := m[1]
			if samePolish[key] {
				continue
			}
			assert.NotEqual(t, key, pl.Sprintf(key), "%s: %q has no Polish translation", name, key)
		}
	}
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "x")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
