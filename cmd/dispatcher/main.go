package main

import (
	"context"
	"log/slog"
	"os"

	"herald/config"
	"herald/internal/delivery"
	"herald/internal/delivery/worker"
	"herald/internal/delivery/worker/handler"
	"herald/internal/domain/entity"
	logs "herald/internal/infra/log"
	"herald/internal/infra/notification"
	"herald/internal/infra/persistence/postgres"
	"herald/internal/reaction"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectReaction(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFollowerRepository,
			postgres.NewInboxRepository,
			postgres.NewPreferencesRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFCMService,
		),
	)
}

func injectReaction() fx.Option {
	return fx.Options(
		fx.Provide(
			newRetention,
			newEngine,
			reaction.NewDispatcher,
			reaction.NewActionFactory,
		),
	)
}

func newRetention(cfg *config.Config) entity.Retention {
	return entity.Retention(cfg.Retention.MessageTTL)
}

func newEngine(logger *slog.Logger, cfg *config.Config) *reaction.Engine {
	return reaction.NewEngine(logger, cfg.Engine.Workers, cfg.Engine.MaxDepth)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDispatchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
