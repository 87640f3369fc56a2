package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc  ", want: "abc"},
		{header: "", wantErr: ErrEmptyAuthorizationHeader},
		{header: "abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer  ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth(t *testing.T) {
	h, _ := newTestHandler(t, &service.Services{})

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "valid token", header: "Bearer " + testToken, wantStatus: http.StatusNoContent, wantUser: testEmail},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer forged", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, gotUser)
		})
	}
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h, _ := newTestHandler(t, &service.Services{})

	var fromContext string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = utils.GetTraceIDFromContext(r.Context())
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
		assert.Equal(t, "trace-42", fromContext)
	})

	t.Run("mints a new id", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		assert.Equal(t, rec.Header().Get(traceIDHeader), fromContext)
	})
}

func TestWithTraceID_StampsLogger(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t, &service.Services{})
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-7")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-7"`)
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t, &service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	})
	req := httptest.NewRequest(http.MethodPost, "/api/entries/filter", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	for _, want := range []string{`"method":"POST"`, `"uri":"/api/entries/filter"`, `"status":202`, `"size":2`, `"duration":`} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	var pattern string
	router.Get("/api/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		pattern = routePattern(r)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/42", nil))

	assert.Equal(t, "/api/things/{id}", pattern)
	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, rec, w.Unwrap())
}

// ─────────────────────────────────────────────
// withGZip
// ─────────────────────────────────────────────

func TestWithGZip_PassThroughWithoutAcceptEncoding(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next must not be called")
	})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_EmptyResponseHasNoTrailer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	payload := strings.Repeat("entry,", 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip;q=1.0")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Less(t, rec.Body.Len(), len(payload))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/version", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
