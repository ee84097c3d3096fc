package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, "%v", id)
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
	if w.Body.String() != header {
		t.Errorf("context request_id %q does not match header %q", w.Body.String(), header)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-12345")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-12345" {
		t.Errorf("X-Request-ID = %q, want the caller's req-12345", got)
	}
	if w.Body.String() != "req-12345" {
		t.Errorf("context request_id = %q, want req-12345", w.Body.String())
	}
}
