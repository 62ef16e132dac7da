package main

import (
	"context"
	"log/slog"
	"os"

	"bakeandtaste/config"
	"bakeandtaste/internal/delivery"
	"bakeandtaste/internal/delivery/api"
	"bakeandtaste/internal/delivery/api/middleware"
	"bakeandtaste/internal/delivery/api/router/handler"
	"bakeandtaste/internal/infra/auth"
	logs "bakeandtaste/internal/infra/log"
	"bakeandtaste/internal/infra/persistence/postgres"
	"bakeandtaste/internal/infra/qrcode"
	"bakeandtaste/internal/usecase"
	"bakeandtaste/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type sessionLogParams struct {
	fx.In
	fx.Lifecycle

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
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
			logSessionChanges,
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
			postgres.NewProfileRepository,
			postgres.NewAccountRepository,
			postgres.NewBakeryRepository,
			postgres.NewCakeRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewOrderService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewSellerHandler,
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

// logSessionChanges records sign-ins and sign-outs for the lifetime of the process.
func logSessionChanges(params sessionLogParams) {
	var unsubscribe func()

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = params.IdentityUC.Subscribe(func(state usecase.SessionState) {
				if state.PrincipalID == nil {
					params.Logger.Info("Session ended")

					return
				}

				attrs := []any{slog.String("principal_id", state.PrincipalID.String())}
				if state.Profile != nil {
					attrs = append(attrs, slog.String("role", state.Profile.Role.String()))
				}
				if state.Err != nil {
					attrs = append(attrs, slog.Any("error", state.Err))
				}
				params.Logger.Info("Session started", attrs...)
			})

			return nil
		},
		OnStop: func(context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
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
