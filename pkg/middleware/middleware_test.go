package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type stubSessions struct {
	userID string
	err    error
}

func (s stubSessions) CurrentUserID(context.Context) (string, error) {
	return s.userID, s.err
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+"|"+c.GetString("trace_id"))
	})
	return r
}

func TestRequireSession(t *testing.T) {
	cases := []struct {
		name     string
		sessions stubSessions
		code     int
	}{
		{"no token", stubSessions{err: utils.ErrNoSession}, http.StatusUnauthorized},
		{"bad token", stubSessions{err: utils.ErrInvalidToken}, http.StatusUnauthorized},
		{"valid", stubSessions{userID: "u-1"}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(RequireSession(tc.sessions)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.code == http.StatusOK && w.Body.String() != "u-1|" {
				t.Fatalf("expected user id in context, got %q", w.Body.String())
			}
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newRouter(TraceIDMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(TraceIDHeader)
	if generated == "" || w.Body.String() != "|"+generated {
		t.Fatalf("expected generated trace id, got header %q body %q", generated, w.Body.String())
	}

	const incoming = "3f2c1b7e-8a4d-4c55-9a61-0d2f6f1e9b10"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(TraceIDHeader) != incoming {
		t.Fatalf("expected incoming trace id reused, got %q", w.Header().Get(TraceIDHeader))
	}
}
