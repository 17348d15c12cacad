package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ElectroMart/app/common/consts/biz"
	"ElectroMart/app/common/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionMiddlewareMintsSessionForNewVisitor(t *testing.T) {
	t.Parallel()

	m := NewSessionMiddleware(testSecret, time.Hour)

	var gotSession string
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = util.SessionIdFromCtx(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.NotEmpty(t, gotSession)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, biz.SESSIONTOKEN, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestSessionMiddlewareKeepsExistingSession(t *testing.T) {
	t.Parallel()

	m := NewSessionMiddleware(testSecret, time.Hour)

	signed, _, err := signSessionToken(testSecret, time.Hour, "known-session")
	require.NoError(t, err)

	var gotSession string
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = util.SessionIdFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: biz.SESSIONTOKEN, Value: signed})
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, "known-session", gotSession)
	// no new cookie when the token is valid
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddlewareRejectsForgedToken(t *testing.T) {
	t.Parallel()

	m := NewSessionMiddleware(testSecret, time.Hour)

	forged, _, err := signSessionToken("other-secret", time.Hour, "attacker")
	require.NoError(t, err)

	var gotSession string
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = util.SessionIdFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: biz.SESSIONTOKEN, Value: forged})
	handler(httptest.NewRecorder(), req)

	assert.NotEmpty(t, gotSession)
	assert.NotEqual(t, "attacker", gotSession)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	signed, expireAt, err := signSessionToken(testSecret, time.Hour, "sid-1")
	require.NoError(t, err)
	assert.True(t, expireAt.After(time.Now()))

	claims, err := parseSessionToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)

	_, err = parseSessionToken(signed, "wrong")
	assert.Error(t, err)

	_, err = parseSessionToken("", testSecret)
	assert.Error(t, err)
}
