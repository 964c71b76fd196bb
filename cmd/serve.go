package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"toolserver/internal/api"
	"toolserver/internal/api/handler/v1handler"
	"toolserver/internal/config"
	"toolserver/internal/todo"
	"toolserver/internal/worker"
	"toolserver/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			todoService := todo.New(strg, todo.NewOptions(cfg))

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{Todo: todoService},
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			go func() {
				logger.Info(ctx, "starting webserver...")
				if err := server.ListenAndServe(); err != nil {
					if !errors.Is(err, http.ErrServerClosed) {
						logger.Error(ctx, "could not start webserver", zap.Error(err))
					}
				}
			}()

			riverClient, err := worker.Start(ctx, strg.Pool, strg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}

			logger.Info(shutdownCtx, "stopping webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop webserver", zap.Error(err))
			}
		},
	}

	return cmd
}
