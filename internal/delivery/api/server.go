package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"bakeandtaste/config"
	"bakeandtaste/internal/delivery"
	apimiddleware "bakeandtaste/internal/delivery/api/middleware"
	"bakeandtaste/internal/delivery/api/router"
	"bakeandtaste/internal/delivery/api/validator"
	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/delivery/middleware"
	"bakeandtaste/internal/domain/lifecycle"
	"bakeandtaste/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the marketplace API. It serves h2c so HTTP/2 works without TLS.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{OnStop: srv.Shutdown})

	return srv, nil
}

// newEcho configures timeouts, the shared middleware chain, error rendering and validation.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	cors := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	cors.AllowHeaders = []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID}
	cors.ExposeHeaders = []string{deliverycontext.HeaderXRequestID}

	// Request IDs must exist before the access log runs.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(cors),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("Bake & Taste API listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
