// Package web assembles the gin engine serving the HTML site.
package web

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/oddam/donations/internal/auth"
	"github.com/oddam/donations/internal/donations"
	"github.com/oddam/donations/internal/landing"
	"github.com/oddam/donations/internal/middleware"
	"github.com/oddam/donations/internal/routes"
	"github.com/oddam/donations/internal/session"
	"github.com/oddam/donations/internal/web/templates"
	"github.com/oddam/donations/pkg/response"
)

// Deps are the collaborators the router wires into routes.
type Deps struct {
	Logger          *zap.Logger
	Sessions        *session.Manager
	Users           middleware.UserLookup
	Auth            *auth.Handler
	Landing         *landing.Handler
	Donations       *donations.Handler
	DefaultLanguage language.Tag
	StaticDir       string
}

// NewRouter builds the engine with every page route registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(d.Logger))

	router.GET(routes.Health, func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })
	if d.StaticDir != "" {
		router.Static("/static", d.StaticDir)
	}

	site := router.Group("")
	site.Use(middleware.Locale(d.DefaultLanguage), middleware.Session(d.Sessions, d.Users, d.Logger))
	{
		site.GET(routes.Landing, d.Landing.Index)

		site.GET(routes.Login, d.Auth.LoginForm)
		site.POST(routes.Login, d.Auth.Login)
		site.GET(routes.Logout, d.Auth.Logout)
		site.POST(routes.Logout, d.Auth.Logout)
		site.GET(routes.Register, d.Auth.RegisterForm)
		site.POST(routes.Register, d.Auth.Register)
	}

	member := site.Group("")
	member.Use(middleware.RequireLogin())
	{
		member.GET(routes.Donate, d.Donations.Form)
		member.POST(routes.Donate, d.Donations.Submit)
		member.GET(routes.DonateConfirmation, d.Donations.Confirmation)
		member.GET(routes.Profile, d.Donations.Profile)
		member.GET("/donations/:id/taken", d.Donations.MarkTaken)
		member.POST("/donations/:id/taken", d.Donations.MarkTaken)
	}

	router.NoRoute(middleware.Locale(d.DefaultLanguage), middleware.Session(d.Sessions, d.Users, d.Logger), response.NotFound)
	return router, nil
}
