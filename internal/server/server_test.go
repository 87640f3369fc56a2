package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/handler"
	myHTTP "github.com/MKhiriev/parts-registry/internal/handler/http"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, validators.NewRequestValidator(), nil, nil, logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	t.Run("no address", func(t *testing.T) {
		s, err := NewServer(testHandlers(), config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("no handlers", func(t *testing.T) {
		s, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("http", func(t *testing.T) {
		s, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, s)

		srv := s.(*server)
		require.NotNil(t, srv.httpServer)
		assert.Equal(t, "127.0.0.1:0", srv.httpServer.server.Addr)
		assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	})
}

func TestHTTPServer_RequestDeadline(t *testing.T) {
	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	t.Run("configured", func(t *testing.T) {
		hs := newHTTPServer(next, config.Server{RequestTimeout: time.Second}, logger.Nop())
		hs.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, hasDeadline)
	})

	t.Run("unbounded", func(t *testing.T) {
		hs := newHTTPServer(next, config.Server{}, logger.Nop())
		hs.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, hasDeadline)
	})
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	s, err := NewServer(testHandlers(), config.Server{
		HTTPAddress:     "127.0.0.1:0",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
