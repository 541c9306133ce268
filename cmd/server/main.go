package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/lifeboard/backend/api/handler"
	"github.com/lifeboard/backend/internal/config"
	"github.com/lifeboard/backend/internal/infrastructure/journal"
	"github.com/lifeboard/backend/internal/infrastructure/monitor"
	pgInfra "github.com/lifeboard/backend/internal/infrastructure/postgres"
	redisInfra "github.com/lifeboard/backend/internal/infrastructure/redis"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/internal/notify"
	"github.com/lifeboard/backend/internal/router"
	"github.com/lifeboard/backend/internal/services/lifecycle"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/pkg/logger"
	"github.com/lifeboard/backend/repository/postgres"
	"github.com/lifeboard/backend/repository/rediscache"
	babyUC "github.com/lifeboard/backend/usecase/baby"
	eventUC "github.com/lifeboard/backend/usecase/event"
	noteUC "github.com/lifeboard/backend/usecase/note"
	projectUC "github.com/lifeboard/backend/usecase/project"
	taskUC "github.com/lifeboard/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	deliveryJournal, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		zapLogger.Fatal("failed to open delivery journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return deliveryJournal.Close()
	})

	mon := monitor.New(pool, redisClient, deliveryJournal, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	images, err := storage.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.HeroPath, cfg.Uploads.MaxUpload)
	if err != nil {
		zapLogger.Fatal("failed to prepare uploads directory", zap.Error(err))
	}

	eventRepo := postgres.NewEventRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	babyRepo := postgres.NewBabyRepository(pool)
	noteCache := rediscache.NewNoteCache(redisClient, cfg.Redis.NoteTTL)

	eventUseCase := eventUC.New(eventRepo, zapLogger)
	noteUseCase := noteUC.New(noteRepo, noteCache, zapLogger)
	projectUseCase := projectUC.New(projectRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	babyUseCase := babyUC.New(babyRepo, zapLogger)

	loc, err := time.LoadLocation(cfg.Notify.Timezone)
	if err != nil {
		zapLogger.Warn("unknown notification timezone, using local",
			zap.String("timezone", cfg.Notify.Timezone), zap.Error(err))
		loc = time.Local
	}

	telegram := notify.NewTelegram(cfg.Notify, loc, zapLogger)
	composer := notify.NewComposer(projectRepo, taskRepo, loc, zapLogger)
	scheduler := notify.NewScheduler(composer, telegram, deliveryJournal, loc,
		cfg.Notify.MorningCron, cfg.Notify.EveningCron, zapLogger)
	if cfg.Notify.Enabled && telegram.Enabled() {
		scheduler.SetEnabled(true)
	}
	manager.Register("scheduler", func(ctx context.Context) error {
		return scheduler.Shutdown(ctx)
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Event:        apiHandler.NewEventHandler(eventUseCase, images, ctxAdapter, zapLogger),
		Note:         apiHandler.NewNoteHandler(noteUseCase, images, ctxAdapter, zapLogger),
		Project:      apiHandler.NewProjectHandler(projectUseCase, ctxAdapter, zapLogger),
		Task:         apiHandler.NewTaskHandler(taskUseCase, images, ctxAdapter, zapLogger),
		Baby:         apiHandler.NewBabyHandler(babyUseCase, images, ctxAdapter, zapLogger),
		Upload:       apiHandler.NewUploadHandler(images, ctxAdapter, zapLogger),
		Notification: apiHandler.NewNotificationHandler(scheduler, telegram, deliveryJournal, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:            r.Handler,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxRequestBodySize: cfg.HTTP.MaxBodySize,
		Name:               cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
