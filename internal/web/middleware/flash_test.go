package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlash(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantType string
		wantMsg  string
	}{
		{"typed", "success:Player added", "success", "Player added"},
		{"escaped", "success%3APlayer+added", "success", "Player added"},
		{"colon in message", "error:bad: thing", "error", "bad: thing"},
		{"untyped", "hello", "info", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flash := parseFlash(tt.value)
			assert.Equal(t, tt.wantType, flash.Type)
			assert.Equal(t, tt.wantMsg, flash.Message)
		})
	}
}

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	SetFlash(set, "success", "Player removed")
	cookies := set.Result().Cookies()
	require.Len(t, cookies, 1)

	var seen *string
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f := GetFlash(r.Context()); f != nil {
			msg := f.Type + "|" + f.Message
			seen = &msg
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, seen)
	assert.Equal(t, "success|Player removed", *seen)

	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestFlashAbsent(t *testing.T) {
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetFlash(r.Context()))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
