package forms

import (
	"net/http"
	"strings"
)

// LoginForm is the posted login form.
type LoginForm struct {
	Username string `form:"username" binding:"required,max=150"`
	Password string `form:"password" binding:"required,max=128"`
	Next     string `form:"next"`
}

// BindLogin reads a posted login form.
func BindLogin(r *http.Request) (*LoginForm, error) {
	var f LoginForm
	if err := bind(r, &f); err != nil {
		return nil, err
	}
	f.Username = strings.TrimSpace(f.Username)
	return &f, nil
}

// Validate checks that both credentials were supplied.
func (f *LoginForm) Validate() Errors {
	return validate(f)
}

// RegisterForm is the posted sign-up form.
type RegisterForm struct {
	Username  string `form:"username" binding:"required,min=3,max=150,username"`
	FirstName string `form:"first_name" binding:"required,max=150"`
	LastName  string `form:"last_name" binding:"required,max=150"`
	Email     string `form:"email" binding:"required,max=254,email"`
	Password  string `form:"password" binding:"required,min=8,max=128,bcryptlen"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

// BindRegister reads a posted sign-up form.
func BindRegister(r *http.Request) (*RegisterForm, error) {
	var f RegisterForm
	if err := bind(r, &f); err != nil {
		return nil, err
	}
	f.Username = strings.TrimSpace(f.Username)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return &f, nil
}

// Validate checks every sign-up rule except username uniqueness, which needs the store.
func (f *RegisterForm) Validate() Errors {
	return validate(f)
}
