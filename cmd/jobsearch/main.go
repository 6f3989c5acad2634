package main

import (
	"context"
	"log/slog"
	"os"

	"jobsearch/config"
	"jobsearch/internal/delivery"
	"jobsearch/internal/delivery/http"
	"jobsearch/internal/delivery/http/middleware"
	"jobsearch/internal/delivery/http/router/handler"
	"jobsearch/internal/infra/auth"
	"jobsearch/internal/infra/cache"
	logs "jobsearch/internal/infra/log"
	"jobsearch/internal/infra/maps"
	"jobsearch/internal/infra/persistence/postgres"
	"jobsearch/internal/usecase/impl"

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
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewJobRepository,
			postgres.NewSkillRepository,
			postgres.NewCandidateProfileRepository,
			postgres.NewSavedFilterRepository,
			postgres.NewFilterNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			maps.NewDistanceMatrixClient,
			cache.NewDistanceCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDistanceService,
			impl.NewJobService,
			impl.NewCandidateService,
			impl.NewProfileService,
			impl.NewFilterService,
			impl.NewMatchService,
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
			handler.NewJobHandler,
			handler.NewCandidateHandler,
			handler.NewFilterHandler,
			handler.NewNotificationHandler,
			handler.NewProfileHandler,
			handler.NewSkillHandler,
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
