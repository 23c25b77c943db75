package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cred-auth/models"
)

// cookieSettings describe the session cookie.
type cookieSettings struct {
	name     string
	secure   bool
	lifetime time.Duration
}

func (c cookieSettings) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c cookieSettings) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiry returns the cookie expiry for token: its exp claim, or now plus the
// configured lifetime when the claim is missing.
func (c cookieSettings) expiry(token models.Token) time.Time {
	if token.Claims.ExpiresAt != nil {
		return token.Claims.ExpiresAt.Time
	}
	return time.Now().Add(c.lifetime)
}
