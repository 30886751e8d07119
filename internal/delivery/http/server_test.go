package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chirp/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Serve(t *testing.T) {
	t.Run("treats server closed as a clean stop", func(t *testing.T) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		srv := &httpServer{
			cfg:    &config.Config{},
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			server: e,
		}

		served := make(chan error, 1)
		go func() {
			served <- srv.Serve(context.Background())
		}()

		// Wait for the listener on the ephemeral port before stopping.
		require.Eventually(t, func() bool {
			return e.ListenerAddr() != nil
		}, time.Second, 10*time.Millisecond)

		require.NoError(t, srv.stop(context.Background()))

		select {
		case err := <-served:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Serve did not return after shutdown")
		}
	})
}
