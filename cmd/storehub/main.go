package main

import (
	"context"
	"log/slog"
	"os"

	"storehub/config"
	"storehub/internal/delivery"
	"storehub/internal/delivery/api"
	"storehub/internal/delivery/api/middleware"
	"storehub/internal/delivery/api/router/handler"
	"storehub/internal/infra/auth"
	logs "storehub/internal/infra/log"
	"storehub/internal/infra/notification"
	"storehub/internal/infra/persistence/memory"
	"storehub/internal/infra/persistence/mongo"
	"storehub/internal/infra/persistence/postgres"
	"storehub/internal/infra/storage"
	"storehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg.Storage.Driver),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo selects the persistence backend named by storage.driver.
func injectRepo(driver string) fx.Option {
	switch driver {
	case config.StorageDriverPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewAccountRepository,
			postgres.NewStoreRepository,
			postgres.NewProductRepository,
		)
	case config.StorageDriverMemory:
		return fx.Provide(
			memory.New,
			memory.NewAccountRepository,
			memory.NewStoreRepository,
			memory.NewProductRepository,
		)
	default:
		return fx.Provide(
			mongo.New,
			mongo.NewAccountRepository,
			mongo.NewStoreRepository,
			mongo.NewProductRepository,
		)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			notification.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewStoreService,
			impl.NewCascadeService,
			impl.NewAdminService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStoreHandler,
			handler.NewAdminHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
