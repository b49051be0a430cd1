package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/libris/internal/platform/ctxutil"
	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/internal/platform/middleware"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   i18n.Lang
	}{
		{"hi-IN,hi;q=0.9,en;q=0.8", i18n.Hindi},
		{"fr-FR,fr;q=0.9", i18n.English},
		{"", i18n.English},
		{"ta", i18n.Tamil},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			var seen i18n.Lang
			handler := middleware.Language()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = ctxutil.GetLanguage(r.Context())
			}))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Accept-Language", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want.String(), recorder.Header().Get("Content-Language"))
		})
	}
}

func TestLanguage_DoesNotLeakAcrossRequests(t *testing.T) {
	var seen []i18n.Lang
	handler := middleware.Language()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, ctxutil.GetLanguage(r.Context()))
	}))

	hindi := httptest.NewRequest(http.MethodGet, "/", nil)
	hindi.Header.Set("Accept-Language", "hi")
	handler.ServeHTTP(httptest.NewRecorder(), hindi)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []i18n.Lang{i18n.Hindi, i18n.English}, seen)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-id")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "client-id", seen)
}

func TestStructuredLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))

	handler := middleware.StructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.GetLogger(r.Context()).Info("inside_handler")
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/books", nil))

	output := buffer.String()
	assert.Contains(t, output, `"msg":"inside_handler"`)
	assert.Contains(t, output, `"path":"/api/books"`)
	assert.Contains(t, output, `"level":"WARN","msg":"http_request_finished"`)
	assert.Contains(t, output, `"status":404`)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, recorder.Body.String(), "boom")
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 1, 2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"))
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))
}

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	preflight := func(handler http.Handler, origin string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodOptions, "/api/books", nil)
		request.Header.Set("Origin", origin)
		request.Header.Set("Access-Control-Request-Method", http.MethodPost)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	production := middleware.CORS(corsConfig{origins: []string{"https://catalog.example.com"}})(next)
	assert.Equal(t, "https://catalog.example.com",
		preflight(production, "https://catalog.example.com").Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, preflight(production, "https://evil.example.net").Header().Get("Access-Control-Allow-Origin"))

	development := middleware.CORS(corsConfig{development: true})(next)
	assert.Equal(t, "http://localhost:5173",
		preflight(development, "http://localhost:5173").Header().Get("Access-Control-Allow-Origin"))
}
