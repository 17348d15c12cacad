package util

import (
	"net/http"
	"time"

	"ElectroMart/app/common/consts/biz"
)

// SetSessionCookie attaches the signed guest-session token to the response.
func SetSessionCookie(w http.ResponseWriter, token string, expiresIn int64) {
	if token == "" {
		return
	}
	ttl := biz.SessionExpire
	if expiresIn > 0 {
		ttl = time.Duration(expiresIn) * time.Second
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONTOKEN,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}
