package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSendsUserAgentHeadersAndCookies(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	session := NewSession(HTTPClientConfig{
		Headers: map[string]string{"Referer": "https://cafe.naver.com"},
		Cookies: ParseCookieString("a=1; b=2"),
	})
	body, status, err := session.GetText(context.Background(), srv.URL+"/post")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<html>ok</html>", body)

	require.NotNil(t, got)
	assert.Equal(t, DesktopUserAgent, got.UserAgent())
	assert.Equal(t, "https://cafe.naver.com", got.Header.Get("Referer"))
	a, err := got.Cookie("a")
	require.NoError(t, err)
	assert.Equal(t, "1", a.Value)
	b, err := got.Cookie("b")
	require.NoError(t, err)
	assert.Equal(t, "2", b.Value)
}

func TestSessionGetTextFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	session := NewSession(HTTPClientConfig{UserAgent: MobileUserAgent})
	_, status, err := session.GetText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, status)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Equal(t, MobileUserAgent, session.UserAgent())
}
