package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"futureyou/internal/agent"
	"futureyou/internal/config"
	"futureyou/internal/elevenlabs"
	"futureyou/internal/gateway"
	"futureyou/internal/logger"
	"futureyou/internal/trace"

	"github.com/spf13/cobra"
)

var (
	addr       string
	configPath string
)

var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the agent provisioning gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addr != "" {
			cfg.Gateway.Addr = addr
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger.Init(cfg.Log.Level)

		shutdown, err := trace.Init(ctx, trace.Config{
			Enabled:     cfg.Trace.Enabled,
			Endpoint:    cfg.Trace.Endpoint,
			EndpointURL: cfg.Trace.EndpointURL,
			URLPath:     cfg.Trace.URLPath,
			APIKey:      cfg.Trace.APIKey,
			Insecure:    cfg.Trace.Insecure,
		})
		if err != nil {
			return fmt.Errorf("initializing tracing: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("trace shutdown error", "error", err)
			}
		}()

		client := elevenlabs.NewClient(elevenlabs.Options{
			APIKey:  cfg.ElevenLabs.APIKey,
			BaseURL: cfg.ElevenLabs.BaseURL,
			Timeout: cfg.ElevenLabs.Timeout.Duration,
		})
		service := agent.NewService(agent.WithTrace(client))

		srv := gateway.NewServer(service, gateway.WithAllowedOrigins(cfg.Gateway.AllowedOrigins...))
		slog.Info("starting gateway",
			"addr", cfg.Gateway.Addr,
			"elevenlabs_base_url", cfg.ElevenLabs.BaseURL,
			"tracing", cfg.Trace.Enabled,
		)
		return srv.ListenAndServe(ctx, cfg.Gateway.Addr)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "override gateway listen address")
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
}
