package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchWildcardRoute(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/api/v1/datasets/listings.csv", "/api/v1/datasets/*", true},
		{"/api/v1/datasets", "/api/v1/datasets/*", true},
		{"/api/v1/queries/abc", "/api/v1/datasets/*", false},
		{"/swagger/index.html", "/swagger/*", true},
		{"/swagger/a/b.js", "/swagger/*", true},
		{"/api/v1/exports/run/file.csv", "/api/v1/exports/*/*", true},
		{"/api/v1/exports/run", "/api/v1/exports/*/*", false},
		{"/a/x/c", "/a/*/c", true},
		{"/a/x/d", "/a/*/c", false},
	}
	for _, tt := range tests {
		t.Run(tt.path+"~"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchWildcardRoute(tt.path, tt.pattern))
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/datasets", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("list"))
	})
	r.GET("/api/v1/datasets/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("get " + Segment(req, 3)))
	})
	r.DELETE("/api/v1/datasets/*", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{http.MethodGet, "/api/v1/datasets", http.StatusOK, "list"},
		{http.MethodGet, "/api/v1/datasets/reviews.csv", http.StatusOK, "get reviews.csv"},
		{http.MethodDelete, "/api/v1/datasets/reviews.csv", http.StatusNoContent, ""},
		{http.MethodPost, "/api/v1/datasets/reviews.csv", http.StatusMethodNotAllowed, "Method Not Allowed\n"},
		{http.MethodGet, "/nope", http.StatusNotFound, "Not Found\n"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRegistrationOrderPrefersEarlierWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/queries/*/runs", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("runs")) })
	r.GET("/api/v1/queries/*", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("one")) })

	require.Equal(t, []string{"/api/v1/queries/*/runs", "/api/v1/queries/*"}, r.Paths())
	assert.Len(t, r.Routes(), 2)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/queries/x/runs", nil))
	assert.Equal(t, "runs", rec.Body.String())
}

func TestSegment(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/run-1/out.csv", nil)
	assert.Equal(t, "run-1", Segment(req, 3))
	assert.Equal(t, "out.csv", Segment(req, 4))
	assert.Equal(t, "", Segment(req, 9))
}

func TestStartAndShutdown(t *testing.T) {
	r := New()
	done := make(chan error, 1)
	go func() { done <- r.Start("127.0.0.1:0") }()

	require.NoError(t, r.Shutdown(context.Background()))
	assert.NoError(t, <-done)

	// A stopped router does not start again.
	assert.NoError(t, r.Start("127.0.0.1:0"))
}
