package middleware

import (
	"net/http"
	"time"

	"ElectroMart/app/common/consts/biz"
	"ElectroMart/app/common/snowflake"
	"ElectroMart/app/common/util"
)

// SessionMiddleware identifies the guest session behind every storefront
// request. A valid signed token (cookie or header) keeps its session id; a
// missing or bad token gets a fresh session minted and set on the response.
type SessionMiddleware struct {
	secret string
	expire time.Duration
}

func NewSessionMiddleware(secret string, expire time.Duration) *SessionMiddleware {
	if expire <= 0 {
		expire = biz.SessionExpire
	}
	return &SessionMiddleware{
		secret: secret,
		expire: expire,
	}
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionToken := ""
		if cookie, err := r.Cookie(biz.SESSIONTOKEN); err == nil {
			sessionToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.SESSIONTOKEN); headerToken != "" {
			sessionToken = headerToken
		}

		if sessionToken != "" {
			if claims, err := parseSessionToken(sessionToken, m.secret); err == nil {
				util.InjectSessionId2Ctx(r, claims.SessionID)
				next(w, r)
				return
			}
		}

		sessionID := snowflake.NextSessionID()
		signed, _, err := signSessionToken(m.secret, m.expire, sessionID)
		if err == nil {
			util.SetSessionCookie(w, signed, int64(m.expire.Seconds()))
		}
		util.InjectSessionId2Ctx(r, sessionID)
		next(w, r)
	}
}
