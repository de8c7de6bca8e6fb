package server_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/server"
)

func hello() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
}

func waitRunning(t *testing.T, srv *server.Server) string {
	t.Helper()
	require.Eventually(t, srv.Running, 2*time.Second, 10*time.Millisecond)
	return "http://" + srv.Addr()
}

func TestServer_RunServesAndStops(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, hello())() }()

	base := waitRunning(t, srv)
	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.False(t, srv.Running())
}

func TestServer_StartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = srv.Stop()
	})

	go func() { _ = srv.Start(ctx, hello()) }()
	waitRunning(t, srv)

	assert.ErrorIs(t, srv.Start(ctx, hello()), server.ErrServerAlreadyRunning)
}

func TestServer_StartErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil handler", func(t *testing.T) {
		t.Parallel()
		srv := server.New("127.0.0.1:0")
		assert.ErrorIs(t, srv.Start(context.Background(), nil), server.ErrNilHandler)
	})

	t.Run("bad address", func(t *testing.T) {
		t.Parallel()
		srv := server.New("not-an-address")
		assert.Error(t, srv.Start(context.Background(), hello()))
		assert.False(t, srv.Running())
	})

	t.Run("stop when idle", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, server.New(":0").Stop())
	})
}

func TestServer_AccessLog(t *testing.T) {
	t.Parallel()

	var buf syncBuffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	srv := server.New("127.0.0.1:0", server.WithLogger(log), server.WithAccessLog())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, http.NotFoundHandler())() }()

	base := waitRunning(t, srv)
	resp, err := http.Get(base + "/missing")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Len(t, resp.Header.Get(server.RequestIDHeader), 36)

	req, err := http.NewRequest(http.MethodGet, base+"/again", nil)
	require.NoError(t, err)
	req.Header.Set(server.RequestIDHeader, "req-42")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "req-42", resp.Header.Get(server.RequestIDHeader))

	cancel()
	require.NoError(t, <-done)

	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/missing")
	assert.Contains(t, out, "status_code=404")
	assert.Contains(t, out, "request_id=req-42")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, server.DefaultAddr, srv.Addr())
	})

	t.Run("options override config", func(t *testing.T) {
		t.Parallel()
		cfg := server.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Minute}
		srv, err := server.NewFromConfig(cfg, server.WithShutdownTimeout(time.Second))
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
