package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/clinic-service/internal/api/http"
	"github.com/spec-kit/clinic-service/internal/api/http/handlers"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/notification"
	"github.com/spec-kit/clinic-service/internal/observability"
	"github.com/spec-kit/clinic-service/internal/persistence"
	"github.com/spec-kit/clinic-service/internal/repository"
	"github.com/spec-kit/clinic-service/internal/service"
	"github.com/spec-kit/clinic-service/internal/worker"
	"github.com/spec-kit/clinic-service/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	appointmentRepo := repository.NewAppointmentRepository(pool)
	donationRepo := repository.NewDonationRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	contentRepo := repository.NewContentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	appointmentService := service.NewAppointmentService(appointmentRepo, dispatcher)
	donationService := service.NewDonationService(donationRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	contentService := service.NewContentService(contentRepo, redis.Client, cfg.Clinic.CacheTTL(), logger)

	notifier := notification.NewClient(cfg.Notification)
	notificationService := service.NewNotificationService(dispatcher, notifier, logger)
	worker.StartNotificationWorker(notificationService)

	toast := workflow.NewLogToaster(logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	limiter := httptransport.RateLimit(
		httptransport.NewRedisLimiter(redis.Client, cfg.RateLimit.Limit, cfg.RateLimit.Window()),
		logger,
	)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	appointmentsHandler := handlers.NewAppointmentsHandler(appointmentService, toast, cfg.Clinic)
	donorsHandler := handlers.NewDonorsHandler(donationService, toast)
	contactHandler := handlers.NewContactHandler(contactService, toast)
	contentHandler := handlers.NewContentHandler(contentService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       healthHandler,
		Appointments: appointmentsHandler,
		Donors:       donorsHandler,
		Contact:      contactHandler,
		Content:      contentHandler,
		SubmitLimit:  limiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
