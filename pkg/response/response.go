package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oddam/donations/internal/forms"
	"github.com/oddam/donations/internal/i18n"
	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/session"
)

const (
	// ContextUser is the key for the logged-in *models.UserPublic in gin context.
	ContextUser = "user"
	// ContextLanguage is the key for the request language.Tag in gin context.
	ContextLanguage = "language"
)

// CSS classes selecting the header variant.
const (
	HeaderMainPage = "header--main-page"
	HeaderFormPage = "header--form-page"
)

// Page is the envelope every full-page template receives.
type Page struct {
	CSSClass string
	User     *models.UserPublic
	Messages []string
	Lang     string
	Data     any

	printer *message.Printer
}

// T translates a catalog key into the request language.
func (p Page) T(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}

// Error returns the translated error for field, or "" when it has none.
func (p Page) Error(errs forms.Errors, field string) string {
	m, ok := errs[field]
	if !ok {
		return ""
	}
	return p.printer.Sprintf(m.Key, m.Args...)
}

// ErrorData is passed to error.html.
type ErrorData struct {
	Status int
	Title  string
}

// CurrentUser returns the logged-in user set by the session middleware.
func CurrentUser(c *gin.Context) *models.UserPublic {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.UserPublic); ok {
			return u
		}
	}
	return nil
}

// Language returns the request language, Polish when none was resolved.
func Language(c *gin.Context) language.Tag {
	if v, ok := c.Get(ContextLanguage); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.Polish
}

// NewPage builds the page envelope, consuming queued flash messages.
func NewPage(c *gin.Context, cssClass string, data any) Page {
	tag := Language(c)
	return Page{
		CSSClass: cssClass,
		User:     CurrentUser(c),
		Messages: session.FromContext(c).PopFlashes(),
		Lang:     tag.String(),
		Data:     data,
		printer:  i18n.Printer(tag),
	}
}

// HTML renders a full page template.
func HTML(c *gin.Context, status int, name, cssClass string, data any) {
	c.HTML(status, name, NewPage(c, cssClass, data))
}

// Fragment renders a template without the page envelope chrome, for partial updates.
func Fragment(c *gin.Context, name string, data any) {
	c.HTML(http.StatusOK, name, Page{Data: data, Lang: Language(c).String(), printer: i18n.Printer(Language(c))})
}

// Redirect sends 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// OK sends a 200 JSON response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest renders the 400 page.
func BadRequest(c *gin.Context) {
	renderError(c, http.StatusBadRequest, "Bad request")
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found")
}

// Internal renders the 500 page.
func Internal(c *gin.Context) {
	renderError(c, http.StatusInternalServerError, "Something went wrong")
}

func renderError(c *gin.Context, status int, title string) {
	HTML(c, status, "error.html", HeaderFormPage, ErrorData{Status: status, Title: title})
	c.Abort()
}
