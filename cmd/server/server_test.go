package main

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, &fakePinger{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartHTTPServer_ListenFailureReleasesResources(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	var logs bytes.Buffer
	app := newTestApp(t, &fakePinger{})
	app.logger = slog.New(slog.NewTextHandler(&logs, nil))
	app.config.Server.Port = busy.Addr().(*net.TCPAddr).Port

	err = app.startHTTPServer(context.Background(), app.setupRouter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	assert.Contains(t, logs.String(), "Application shutdown completed")
}
