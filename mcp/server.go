package mcp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/audiolux/audiolux/client"
	"github.com/audiolux/audiolux/mcp/internal/handlers"
)

// config holds all settings for the MCP server.
type config struct {
	ServiceURL      string
	ListenAddr      string
	LogLevel        zerolog.Level
	ServerName      string
	ServerVersion   string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
}

// loadConfig loads configuration from environment variables, then args.
func loadConfig(args []string) (*config, error) {
	cfg := &config{
		ServiceURL:      getEnvOrDefault("AUDIOLUX_SERVICE_URL", client.BaseURL),
		ListenAddr:      getEnvOrDefault("MCP_LISTEN_ADDR", ":11546"),
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "audiolux-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", 5*time.Second),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", 120*time.Second),
	}
	cfg.LogLevel = parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))

	// Command line flags override env vars
	fs := flag.NewFlagSet("audiolux-mcp-server", flag.ContinueOnError)
	rawLogLevel := fs.String("log-level", cfg.LogLevel.String(), "Log level: debug|info|warn|error")
	fs.StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "Base URL of the AudioLux web API")
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "Listen address for the Streamable HTTP transport")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.LogLevel = parseLogLevel(*rawLogLevel)
	return cfg, nil
}

// initLogger logs to stderr so stdio transport keeps stdout for protocol frames.
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server with every AudioLux tool registered.
func NewServer(c *client.Client, name, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(true))

	for n, h := range map[string]toolRegisterer{
		"device":  handlers.NewDeviceHandler(c),
		"history": handlers.NewHistoryHandler(c),
	} {
		if err := h.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", n, err)
		}
	}
	return s, nil
}

// RunMCPServer starts the MCP server on stdio or Streamable HTTP.
func RunMCPServer(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	cfg.initLogger()

	log.Info().Str("service_url", cfg.ServiceURL).Msg("Creating AudioLux client")
	c, err := client.New(client.WithBaseURL(cfg.ServiceURL))
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}

	s, err := NewServer(c, cfg.ServerName, cfg.ServerVersion)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		// Stdio transport (for desktop hosts that launch the process)
		log.Info().Msg("Starting AudioLux MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serveHTTP(ctx, s, cfg)
}

// serveHTTP serves Streamable HTTP on cfg.ListenAddr at /mcp until ctx is done.
func serveHTTP(ctx context.Context, s *server.MCPServer, cfg *config) error {
	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting AudioLux MCP server (Streamable HTTP)")

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("HTTP server error")
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
		return err
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
		return err
	}
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
