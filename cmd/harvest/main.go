package main

import (
	"context"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/http"
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"
	"harvest/internal/domain/lifecycle"
	"harvest/internal/infra/auth"
	"harvest/internal/infra/location"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/rest"
	"harvest/internal/infra/socket"
	"harvest/internal/usecase"
	"harvest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type sessionLifecycleParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			manageSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rest.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			rest.NewAuthAPI,
			rest.NewChatAPI,
			rest.NewProductSource,
			socket.NewPushChannel,
			location.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChatService,
			impl.NewProximityService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewChatHandler,
			handler.NewProductHandler,
			handler.NewEventHandler,
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

// manageSession starts a session from the configured token and ends it on shutdown,
// which also closes the push channel.
func manageSession(params sessionLifecycleParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Config.Session == nil || params.Config.Session.Token == "" {
				return nil
			}

			session, err := params.SessionUC.Start(ctx, params.Config.Session.Token)
			if err != nil {
				// a stale token should not keep the gateway down
				params.Logger.Warn("Configured session could not be started", slog.Any("error", err))

				return nil
			}
			params.Logger.Info("Session started", slog.String("user_id", session.UserID()))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return params.SessionUC.End(stopCtx)
		},
	})
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
