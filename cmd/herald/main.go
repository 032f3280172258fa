package main

import (
	"context"
	"log/slog"
	"os"

	"herald/config"
	"herald/internal/delivery"
	"herald/internal/delivery/http"
	"herald/internal/delivery/http/middleware"
	"herald/internal/delivery/http/router/handler"
	"herald/internal/domain/entity"
	"herald/internal/infra/auth"
	logs "herald/internal/infra/log"
	"herald/internal/infra/notification"
	"herald/internal/infra/persistence/postgres"
	"herald/internal/infra/pubsub"
	"herald/internal/reaction"
	"herald/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectReaction(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewApplicationRepository,
			postgres.NewUserRepository,
			postgres.NewFollowerRepository,
			postgres.NewMessageRepository,
			postgres.NewInboxRepository,
			postgres.NewPreferencesRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenService,
			notification.NewFCMService,
			pubsub.NewEventPublisher,
		),
	)
}

// injectReaction provides the reaction engine pieces. The ingestion binary
// carries them so the in-process dispatch path works without a broker.
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

// newRetention exposes the configured message retention as a typed value.
func newRetention(cfg *config.Config) entity.Retention {
	return entity.Retention(cfg.Retention.MessageTTL)
}

// newEngine creates the expansion engine from configuration.
func newEngine(logger *slog.Logger, cfg *config.Config) *reaction.Engine {
	return reaction.NewEngine(logger, cfg.Engine.Workers, cfg.Engine.MaxDepth)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSendMessageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMessageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
