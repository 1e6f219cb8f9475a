package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/ticklist/pkg/cli/config"
	httpctrl "github.com/secmon-lab/ticklist/pkg/controller/http"
	"github.com/secmon-lab/ticklist/pkg/service/generation"
	"github.com/secmon-lab/ticklist/pkg/service/intent"
	"github.com/secmon-lab/ticklist/pkg/service/worker"
	"github.com/secmon-lab/ticklist/pkg/usecase"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var configPath string
	var repoCfg config.Repository
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TICKLIST_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("TICKLIST_CONFIG"),
			Destination: &configPath,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			appCfg, err := config.LoadAppConfiguration(configPath)
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// LLM-backed features are optional; without credentials the
			// structural API still works.
			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}

			var ucOpts []usecase.Option
			if llmClient != nil {
				genSvc, err := generation.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize generation service")
				}
				classifier, err := intent.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize intent classifier")
				}
				ucOpts = append(ucOpts, usecase.WithGenerator(genSvc), usecase.WithClassifier(classifier))
				logging.Default().Info("LLM features enabled")
			} else {
				logging.Default().Info("LLM client not configured, generation and command features are disabled")
			}

			uc := usecase.New(repo, ucOpts...)

			retentionWorker := worker.NewRetentionWorker(repo, appCfg.Retention(), appCfg.PruneInterval())
			if err := retentionWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start retention worker")
			}

			handler := httpctrl.New(uc, httpctrl.WithChangeLogLimit(appCfg.ChangeLog.ListLimit))
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				retentionWorker.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
