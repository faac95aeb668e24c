package app

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"s3-buckets/internal/app/endpoint/buckets"
	"s3-buckets/internal/app/endpoint/bucketsws"
	"s3-buckets/internal/app/endpoint/root"
	"s3-buckets/internal/app/endpoint/status"
	"s3-buckets/internal/app/interfaces"
	"s3-buckets/internal/app/mv"
	"s3-buckets/internal/app/repository"
	jwtservice "s3-buckets/internal/app/security"
	"s3-buckets/internal/app/service"
	"s3-buckets/internal/config"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gurkankaymak/hocon"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type App struct {
	port      string
	config    *hocon.Config
	logger    logrus.FieldLogger
	Echo      *echo.Echo
	root      *root.Endpoint
	status    *status.Endpoint
	buckets   *buckets.Endpoint
	bucketsws *bucketsws.Endpoint
	s         *service.BucketService
}

// New wires the HTTP server. db may be nil, in which case bucket listings are
// not audited and /status is not served.
func New(conf *hocon.Config, port string, api s3iface.S3API, db *sqlx.DB, logger logrus.FieldLogger) (*App, error) {
	a := App{port: port, config: conf, logger: logger}

	var audit interfaces.AuditRepository
	if db != nil {
		audit = repository.New(db)
		a.status = status.New(audit)
	}

	a.s = service.New(api, audit, logger)

	defaultSort := config.String(conf, "api.default_sort", "asc")
	a.root = root.New()
	a.buckets = buckets.New(a.s, defaultSort)
	a.bucketsws = bucketsws.New(a.s, defaultSort, logger)

	var guard []echo.MiddlewareFunc
	if config.Bool(conf, "jwt.enabled", false) {
		key, err := jwtservice.ReadPublicPEMKey(config.String(conf, "jwt.public_key", "conf/keys/public.pem"))
		if err != nil {
			return nil, err
		}
		v := jwtservice.NewValidator(key, config.String(conf, "jwt.issuer", ""), config.String(conf, "jwt.audience", ""))
		guard = append(guard, mv.HeaderCheck(v, logger))
	}

	a.Echo = echo.New()
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	debug := config.Bool(conf, "server.debug", false)
	if debug {
		a.Echo.Debug = true
		a.Echo.Logger.SetLevel(log.DEBUG)
		pprof.Register(a.Echo)
	} else {
		a.Echo.Logger.SetLevel(log.WARN)
	}

	a.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	// Metrics use a per-app registry so several Apps can live in one process.
	registry := prometheus.NewRegistry()
	a.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "s3_buckets",
		Registerer: registry,
	}))
	a.Echo.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	if limit := config.Int(conf, "api.rate_limit", 20); limit > 0 {
		a.Echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(limit))))
	}

	if debug {
		a.Echo.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/ws/") ||
					strings.HasPrefix(c.Request().URL.Path, "/debug/")
			},
			Handler: func(c echo.Context, reqBody, resBody []byte) {
				logger.Debug("Response: " + string(resBody))
			},
		}))
	}

	// Routes
	a.Echo.GET("/", a.root.RootHandler)
	a.Echo.GET("/s3/buckets", a.buckets.BucketsHandler, guard...)
	a.Echo.GET("/ws/buckets", a.bucketsws.WebSocketBucketsHandler, guard...)
	if a.status != nil {
		a.Echo.GET("/status", a.status.StatusHandler, guard...)
	}

	return &a, nil
}

func (a *App) Run() error {
	a.logger.WithField("port", a.port).Info("Starting server")
	err := a.Echo.Start(":" + a.port)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
