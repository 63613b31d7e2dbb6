// Package routes names the URL paths handlers redirect between.
package routes

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	Landing            = "/"
	Login              = "/login"
	Logout             = "/logout"
	Register           = "/register"
	Donate             = "/donate"
	DonateConfirmation = "/donate/confirmation"
	Profile            = "/profile"
	Health             = "/health"
)

// DonationTaken is the mark-as-collected path for a donation.
func DonationTaken(id uuid.UUID) string {
	return "/donations/" + id.String() + "/taken"
}

// LoginWithNext is the login path that returns to next afterwards.
func LoginWithNext(next string) string {
	if !IsLocal(next) || next == Landing {
		return Login
	}
	return Login + "?next=" + url.QueryEscape(next)
}

// IsLocal reports whether target is a same-site absolute path, safe to redirect to.
func IsLocal(target string) bool {
	if target == "" || target[0] != '/' {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Scheme == "" && u.Host == ""
}
