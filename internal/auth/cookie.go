package auth

import (
	"net/http"
	"time"
)

// CookieName is the bearer cookie holding the session token.
const CookieName = "token"

// SetSessionCookie attaches the token as an HTTP-only cookie. SameSite=None
// lets the cross-origin frontend send it; Secure is required for that to work
// in production.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secureFlag bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secureFlag,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie overwrites the cookie with an empty, already-expired value.
func ClearSessionCookie(w http.ResponseWriter, secureFlag bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secureFlag,
		SameSite: http.SameSiteNoneMode,
	})
}
