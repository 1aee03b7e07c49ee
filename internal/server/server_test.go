package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-trust-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-trust-keeper/internal/handler/http"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_HTTPAndGRPC(t *testing.T) {
	services := &service.Services{}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}

	srv, err := NewServer(handlers, nil, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NotNil(t, s.httpServer)
	require.NotNil(t, s.gRPCServer)
	t.Cleanup(func() {
		s.Shutdown()
		_ = s.gRPCServer.gRPCNetListener.Close()
	})
}

func TestNewServer_GRPCListenFails(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(&service.Services{}, logger.Nop())}

	_, err := NewServer(handlers, nil, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	srv := newHTTPServer(slow, config.Server{RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"request timed out"}`, rec.Body.String())
}

func newHTTPOnly(t *testing.T, addr string) *server {
	t.Helper()
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}

	srv, err := NewServer(handlers, nil, config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	s := newHTTPOnly(t, "127.0.0.1:0")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.serve(ctx))
}

func TestServe_ListenFailureStopsGroup(t *testing.T) {
	// занимаем порт заранее, чтобы ListenAndServe упал
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s := newHTTPOnly(t, busy.Addr().String())

	done := make(chan error, 1)
	go func() { done <- s.serve(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "http server on")
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after listen failure")
	}
}
