package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"offlined/internal/config"
	"offlined/internal/httpapi"
	"offlined/internal/registry"
	"offlined/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		modelsDir  string
		logLevel   string
	)
	root := &cobra.Command{
		Use:           "offlined",
		Short:         "Single-slot offline model session daemon",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, addr, modelsDir, logLevel)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "Path to config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults OFFLINED_ADDR or :8080)")
	root.Flags().StringVar(&modelsDir, "models-dir", "", "Directory to scan for model files (defaults OFFLINED_MODELS_DIR or ~/models/llm)")
	root.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	return root
}

func run(configPath, addr, modelsDir, logLevel string) error {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	var cfg config.Config
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	// Precedence: flags > environment > config file > defaults.
	addr = firstNonEmpty(addr, os.Getenv("OFFLINED_ADDR"), cfg.Addr, ":8080")
	modelsDir = firstNonEmpty(modelsDir, os.Getenv("OFFLINED_MODELS_DIR"), cfg.ModelsDir, "~/models/llm")
	logLevel = firstNonEmpty(logLevel, os.Getenv("OFFLINED_LOG_LEVEL"), cfg.LogLevel, "info")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(parseZerologLevel(logLevel))
	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins)

	// A missing models dir only disables load-by-id; direct path loads keep
	// working, so start anyway.
	reg, err := registry.LoadDir(modelsDir)
	if err != nil {
		logger.Warn().Err(err).Str("models_dir", modelsDir).Msg("model registry unavailable")
		reg = nil
	}

	sess := session.NewWithConfig(session.SessionConfig{
		Publisher: logPublisher{log: logger},
	})
	mux := httpapi.NewMux(sess, reg)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("models_dir", modelsDir).Int("models", len(reg)).Msg("offlined listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	return nil
}

// logPublisher forwards session events to the structured logger.
type logPublisher struct {
	log zerolog.Logger
}

func (p logPublisher) Publish(e session.Event) {
	ev := p.log.Debug().Str("event", e.Name)
	if e.Path != "" {
		ev = ev.Str("path", e.Path)
	}
	for k, v := range e.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg("session event")
}

func parseZerologLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
