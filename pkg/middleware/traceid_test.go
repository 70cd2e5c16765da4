package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	traceIDRouter().ServeHTTP(w, req)

	id := w.Header().Get("X-Trace-ID")
	if id == "" {
		t.Fatal("X-Trace-ID header not set")
	}
	if w.Body.String() != id {
		t.Errorf("context trace_id = %q, header = %q", w.Body.String(), id)
	}
}

func TestTraceIDHonorsInboundHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "caller-supplied-id")
	traceIDRouter().ServeHTTP(w, req)

	if got := w.Header().Get("X-Trace-ID"); got != "caller-supplied-id" {
		t.Errorf("X-Trace-ID = %q, want caller's value echoed back", got)
	}
	if w.Body.String() != "caller-supplied-id" {
		t.Errorf("context trace_id = %q, want caller's value", w.Body.String())
	}
}
