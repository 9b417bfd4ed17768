// Command server runs the YouTube transcript HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/component"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/config"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/logger"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/server"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/transcript"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/transcript/youtube"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/version"
)

func main() {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		logger.GetGlobalLogger().Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		logger.GetGlobalLogger().Fatal("Invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	log.Info("Starting service", map[string]interface{}{
		"service": cfg.Service.Name,
		"version": version.GetShortVersion(),
	})

	provider := youtube.NewProvider(youtube.Config{
		PreserveFormatting: cfg.Transcript.PreserveFormatting,
	})
	svc := transcript.NewService(provider, cfg.Transcript, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(cfg.Service.Name, providerHealth(provider))
	transcript.NewHandler(svc, log).RegisterRoutes(srv.GinEngine())

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	waitForSignal(log)

	if err := srv.Stop(ctx); err != nil {
		log.Error("Shutdown completed with errors", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	log.Info("Shutdown complete")
}

// providerHealth reports the transcript provider's reachability for /health.
// An unreachable provider degrades the service rather than failing it: the
// probe is a reachability hint, not a guarantee.
func providerHealth(provider transcript.Provider) func(ctx context.Context) []component.Health {
	return func(ctx context.Context) []component.Health {
		h := component.Health{
			Name:   provider.Name(),
			Status: component.StatusHealthy,
		}
		if !provider.IsAvailable(ctx) {
			h.Status = component.StatusDegraded
			h.Message = "provider unreachable"
		}
		return []component.Health{h}
	}
}

// waitForSignal blocks until an OS interrupt or termination signal arrives.
func waitForSignal(log *logger.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	sig := <-sigCh
	log.Info("Received shutdown signal", map[string]interface{}{
		"signal": sig.String(),
	})
}
