// ABOUTME: Streamable HTTP serve subcommand
// ABOUTME: Exposes the MCP server over the network behind auth and rate limiting
package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/harperreed/folk-mcp/config"
	"github.com/harperreed/folk-mcp/folk"
)

// shutdownTimeout bounds the drain after SIGINT/SIGTERM.
const shutdownTimeout = 5 * time.Second

// ServeCommand runs the MCP server over streamable HTTP. GET /health stays
// open; everything else goes through auth and rate limiting.
func ServeCommand(client *folk.Client, logger zerolog.Logger, httpCfg config.HTTPConfig) error {
	if httpCfg.RequireAuth && httpCfg.AuthToken == "" {
		return errors.New("http auth is required but MCP_HTTP_AUTH_TOKEN is empty")
	}

	server := NewServer(client, logger)
	var protected http.Handler = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	srv := &http.Server{
		Addr:    httpCfg.Addr,
		Handler: buildHandler(protected, logger, httpCfg),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpCfg.Addr).Msg("serving mcp over http")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// buildHandler wires the middleware chain: request logging outermost, then a
// mux where /health bypasses the auth and rate limiting on everything else.
func buildHandler(protected http.Handler, logger zerolog.Logger, httpCfg config.HTTPConfig) http.Handler {
	if httpCfg.RateLimitPerMin > 0 {
		protected = newRateLimiter(httpCfg.RateLimitPerMin).middleware(protected)
	}
	if httpCfg.RequireAuth {
		protected = requireBearer(httpCfg.AuthToken, protected)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.Handle("/", protected)

	return logRequests(logger, mux)
}
