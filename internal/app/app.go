package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/billing"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/broker"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/config"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/handler"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/lifecycle"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/lock"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/middleware"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/notification"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/repository"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/router"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/scheduler"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service/ports"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *broker.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelBilling",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
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

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initLocker prefers Redis so that several replicas share one lock.
func (a *App) initLocker() (ports.Locker, error) {
	rc := a.cfg.Redis
	if rc.Addr == "" {
		a.log.Warn("redis address is empty, using in-process reservation lock")
		return lock.NewLocalLocker(rc.LockWait), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.log.Info("redis connected", logger.String("addr", rc.Addr))

	return lock.NewRedisLocker(client, rc.LockTTL, rc.LockWait), nil
}

func (a *App) initServices() error {
	pricing, err := a.cfg.PricingConfig()
	if err != nil {
		return fmt.Errorf("pricing config: %w", err)
	}
	loyalty, err := a.cfg.LoyaltyConfig()
	if err != nil {
		return fmt.Errorf("loyalty config: %w", err)
	}
	caps, err := a.cfg.DiscountCaps()
	if err != nil {
		return fmt.Errorf("discount config: %w", err)
	}

	engine, err := billing.NewEngine(pricing)
	if err != nil {
		return err
	}

	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.publisher, err = broker.NewPublisher(broker.Config{
		URL:          a.cfg.RabbitMQ.URL,
		Exchange:     a.cfg.RabbitMQ.Exchange,
		DialAttempts: a.cfg.RabbitMQ.DialAttempts,
		DialDelay:    a.cfg.RabbitMQ.DialDelay,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}

	reservationRepo := repository.NewReservationRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)

	quoteService := service.NewQuoteService(engine, billing.NewDiscountPolicy(caps), loyalty)
	reservationService := service.NewReservationService(
		reservationRepo, paymentRepo, locker, n, a.publisher,
		quoteService,
		lifecycle.Policy{RequireFeedback: a.cfg.Lifecycle.RequireFeedback},
		a.log,
	)
	paymentService := service.NewPaymentService(reservationRepo, paymentRepo, locker, n, a.publisher, a.log)

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(quoteService, reservationService, paymentService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

	go a.scheduler.Start(ctx)

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

	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close rabbitmq publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis client", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

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
