package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/AbbasJay/be-well-web-sub000/internal/calendar"
	"github.com/AbbasJay/be-well-web-sub000/internal/config"
	"github.com/AbbasJay/be-well-web-sub000/internal/handler"
	"github.com/AbbasJay/be-well-web-sub000/internal/middleware"
	"github.com/AbbasJay/be-well-web-sub000/internal/notification"
	"github.com/AbbasJay/be-well-web-sub000/internal/obs"
	"github.com/AbbasJay/be-well-web-sub000/internal/repository"
	"github.com/AbbasJay/be-well-web-sub000/internal/router"
	"github.com/AbbasJay/be-well-web-sub000/internal/sealed"
	"github.com/AbbasJay/be-well-web-sub000/internal/service"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "BeWell"
	appVersion    = "0.1.0"
	migrationsDir = "migrations"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	db             *dbpg.DB
	rdb            *redis.Client
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	if !a.cfg.Tracing.Enabled {
		return nil
	}

	shutdown, err := obs.InitTracer(
		context.Background(),
		appName,
		appVersion,
		a.cfg.Tracing.Environment,
		a.cfg.Tracing.Endpoint,
		a.cfg.Tracing.Insecure,
	)
	if err != nil {
		return err
	}

	a.tracerShutdown = shutdown
	a.log.Info("tracing enabled", logger.String("endpoint", a.cfg.Tracing.Endpoint))

	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.rdb = rdb
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	sealer, err := sealed.New(a.cfg.Credentials.AgeIdentity)
	if err != nil {
		return fmt.Errorf("init credential sealer: %w", err)
	}

	classRepo := repository.NewClassRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	notificationRepo := repository.NewNotificationRepo(a.db)
	credentialRepo := repository.NewCredentialRepo(a.db, sealer)
	stateStore := repository.NewOAuthStateStore(a.rdb, a.cfg.Calendar.StateTTL)

	alerter, err := notification.NewTelegramAlerter(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.OperatorChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}

	oauth := calendar.NewGoogleOAuth(
		a.cfg.Calendar.ClientID,
		a.cfg.Calendar.ClientSecret,
		a.cfg.Calendar.RedirectURL,
	)
	gcal, err := calendar.NewGoogleCalendar(
		a.cfg.Calendar.CalendarID,
		a.cfg.Calendar.TimeZone,
		a.cfg.Calendar.Timeout,
	)
	if err != nil {
		return fmt.Errorf("init calendar: %w", err)
	}

	credentialService := service.NewCredentialService(credentialRepo, oauth, a.log)
	mirror := service.NewCalendarMirror(gcal, credentialService, classRepo, a.cfg.Calendar.MirrorTimeout, a.log)
	bookingService := service.NewBookingService(bookingRepo, classRepo, notificationRepo, mirror, alerter, a.log)
	classService := service.NewClassService(classRepo, mirror, alerter, a.log)
	calendarAuthService := service.NewCalendarAuthService(credentialService, oauth, stateStore, a.log)

	h := handler.NewHandler(bookingService, classService, calendarAuthService, a.cfg.Calendar.SuccessRedirectURL)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth([]byte(a.cfg.Auth.JWTSecret)),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.rdb.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(shutdownCtx); err != nil {
			a.log.Warn("tracer shutdown failed", logger.String("error", err.Error()))
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
