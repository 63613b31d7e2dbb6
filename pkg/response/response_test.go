package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/oddam/donations/internal/forms"
	"github.com/oddam/donations/internal/i18n"
	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewPageConsumesFlashes(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	s := session.New()
	s.AddFlash("Your account has been created")
	c.Set(session.ContextKey, s)
	user := &models.UserPublic{ID: uuid.New(), Username: "ala"}
	c.Set(ContextUser, user)
	c.Set(ContextLanguage, language.Polish)

	p := NewPage(c, HeaderMainPage, nil)

	assert.Equal(t, []string{"Your account has been created"}, p.Messages)
	assert.Same(t, user, p.User)
	assert.Equal(t, "pl", p.Lang)
	assert.Equal(t, "Twoje konto zostało stworzone", p.T(p.Messages[0]))
	assert.Empty(t, s.Flashes)
}

func TestLanguageDefaultsToPolish(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "pl", Language(c).String())
	assert.Nil(t, CurrentUser(c))
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Redirect(c, "/login")

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageErrorTranslatesArgs(t *testing.T) {
	p := Page{printer: i18n.Printer(language.Polish)}
	errs := forms.Errors{}
	errs.Add("pick_up_comment", "Ensure this value has at most %d characters.", 500)

	assert.Equal(t, "Upewnij się, że ta wartość ma co najwyżej 500 znaków.", p.Error(errs, "pick_up_comment"))
	assert.Empty(t, p.Error(errs, "city"))
	assert.Empty(t, p.Error(nil, "city"))
}
