package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oddam/donations/internal/forms"
	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/routes"
	"github.com/oddam/donations/internal/session"
	"github.com/oddam/donations/pkg/response"
)

// MsgAccountCreated is flashed on the login page after sign-up.
const MsgAccountCreated = "Your account has been created"

// UserStore is the user persistence the auth handlers need.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// LoginPage is the login.html context.
type LoginPage struct {
	Form   *forms.LoginForm
	Errors forms.Errors
}

// RegisterPage is the register.html context.
type RegisterPage struct {
	Form   *forms.RegisterForm
	Errors forms.Errors
}

// Handler serves login, logout and registration.
type Handler struct {
	users  UserStore
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(users UserStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{users: users, logger: logger}
}

// LoginForm handles GET /login.
func (h *Handler) LoginForm(c *gin.Context) {
	form := &forms.LoginForm{Next: c.Query("next")}
	response.HTML(c, http.StatusOK, "login.html", response.HeaderFormPage, LoginPage{Form: form})
}

// Login handles POST /login.
// Unknown usernames, wrong passwords and inactive accounts all send the visitor to sign-up.
func (h *Handler) Login(c *gin.Context) {
	form, err := forms.BindLogin(c.Request)
	if err != nil {
		response.BadRequest(c)
		return
	}
	if errs := form.Validate(); errs.Any() {
		form.Password = ""
		response.HTML(c, http.StatusOK, "login.html", response.HeaderFormPage, LoginPage{Form: form, Errors: errs})
		return
	}

	user, err := h.authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Error("authenticate", zap.Error(err))
		response.Internal(c)
		return
	}
	if user == nil {
		response.Redirect(c, routes.Register)
		return
	}

	session.FromContext(c).Login(user.ID)
	h.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	next := routes.Landing
	if routes.IsLocal(form.Next) {
		next = form.Next
	}
	response.Redirect(c, next)
}

// authenticate returns the active user matching the credentials, or nil.
func (h *Handler) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := h.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		CheckPassword(password, dummyHash)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(password, user.Password) || !user.IsActive {
		return nil, nil
	}
	return user, nil
}

// Logout handles GET and POST /logout.
func (h *Handler) Logout(c *gin.Context) {
	session.FromContext(c).Logout()
	response.Redirect(c, routes.Landing)
}

// RegisterForm handles GET /register.
func (h *Handler) RegisterForm(c *gin.Context) {
	response.HTML(c, http.StatusOK, "register.html", response.HeaderFormPage, RegisterPage{Form: &forms.RegisterForm{}})
}

// Register handles POST /register.
func (h *Handler) Register(c *gin.Context) {
	form, err := forms.BindRegister(c.Request)
	if err != nil {
		response.BadRequest(c)
		return
	}
	errs := form.Validate()
	if !errs.Any() {
		user, err := h.createUser(c.Request.Context(), form)
		switch {
		case errors.Is(err, models.ErrUsernameTaken):
			errs.Add("username", "A user with that username already exists.")
		case errors.Is(err, ErrPasswordTooLong):
			errs.Add("password", "Ensure this password has at most %d bytes.", forms.MaxPasswordBytes)
		case err != nil:
			h.logger.Error("create user", zap.Error(err))
			response.Internal(c)
			return
		default:
			h.logger.Info("user registered", zap.String("user_id", user.ID.String()))
		}
	}
	if errs.Any() {
		form.Password, form.Password2 = "", ""
		response.HTML(c, http.StatusOK, "register.html", response.HeaderFormPage, RegisterPage{Form: form, Errors: errs})
		return
	}

	session.FromContext(c).AddFlash(MsgAccountCreated)
	response.Redirect(c, routes.Login)
}

func (h *Handler) createUser(ctx context.Context, form *forms.RegisterForm) (*models.User, error) {
	hash, err := HashPassword(form.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  hash,
		IsActive:  true,
	}
	if err := h.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
