package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/graph"
	v1 "github.com/shenikar/ambulance_dispatch/internal/handler/http/v1"
	"github.com/shenikar/ambulance_dispatch/internal/metrics"
	"github.com/shenikar/ambulance_dispatch/internal/repository"
	"github.com/shenikar/ambulance_dispatch/internal/repository/memory"
	"github.com/shenikar/ambulance_dispatch/internal/seed"
	"github.com/shenikar/ambulance_dispatch/internal/service"
	"github.com/shenikar/ambulance_dispatch/internal/simulation"
	"github.com/shenikar/ambulance_dispatch/internal/sla"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
	"github.com/shenikar/ambulance_dispatch/pkg/logger"
	"github.com/shenikar/ambulance_dispatch/pkg/natsconn"
	"github.com/shenikar/ambulance_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/ambulance_dispatch/pkg/redis"

	_ "github.com/shenikar/ambulance_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -d .. -g cmd/main.go -o ../docs --parseInternal --outputTypes go --overridesFile ../.swaggo

// storage - набор репозиториев выбранного драйвера
type storage struct {
	areas       service.AreaRepository
	fleet       service.FleetRepository
	roster      service.RosterRepository
	occurrences service.OccurrenceRepository
	tx          service.Transactor
}

// @title Ambulance Dispatch API
// @version 1.0
// @description Ambulance dispatch engine: occurrences, candidate search, dispatch and SLA tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func newPostgresStorage(pool *pgxpool.Pool) *storage {
	return &storage{
		areas:       repository.NewAreaRepository(pool),
		fleet:       repository.NewFleetRepository(pool),
		roster:      repository.NewRosterRepository(pool),
		occurrences: repository.NewOccurrenceRepository(pool),
		tx:          repository.NewTransactor(pool),
	}
}

func newMemoryStorage() *storage {
	store := memory.NewStore()
	return &storage{areas: store, fleet: store, roster: store, occurrences: store, tx: store}
}

// newPublisher выбирает приемник событий; очередь Redis требует работающего клиента
func newPublisher(cfg *config.Config, redisClient *redis.Client, log *logrus.Logger) (webhook.Publisher, func(), error) {
	switch cfg.EventSink {
	case config.EventSinkRedis:
		if redisClient == nil {
			log.Warn("EVENT_SINK=redis but Redis is disabled, events will be dropped")
			return webhook.NopPublisher{}, func() {}, nil
		}
		return webhook.NewRedisPublisher(redisClient), func() {}, nil
	case config.EventSinkNATS:
		conn, err := natsconn.Connect(cfg.NATSURL, log)
		if err != nil {
			return nil, nil, err
		}
		return webhook.NewNATSPublisher(conn, cfg.NATSSubject), func() {
			if err := conn.Drain(); err != nil {
				log.WithError(err).Warn("Failed to drain NATS connection")
			}
		}, nil
	default:
		return webhook.NopPublisher{}, func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	// Хранилище
	var store *storage
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		store = newPostgresStorage(dbpool)
	default:
		log.Warn("Using in-memory storage, data will not survive a restart")
		store = newMemoryStorage()
	}

	// Инициализация Redis клиента (опционально)
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	var detailsCache service.DetailsCache = repository.NoopDetailsCache{}
	if redisClient != nil {
		defer redisClient.Close()
		detailsCache = repository.NewDetailsCache(redisClient, cfg.DetailsCacheTTL)
		log.Info("Successfully connected to Redis")
	}

	// Приемник событий
	publisher, closePublisher, err := newPublisher(cfg, redisClient, log)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}
	defer closePublisher()

	// Граф дорог и сервисы
	holder := graph.NewHolder(nil)
	estimator := sla.NewEstimator(cfg.SpeedKmPerMinute)

	areaService := service.NewAreaService(store.areas, holder, store.tx, log)
	fleetService := service.NewFleetService(store.fleet, store.roster, store.occurrences, holder, store.tx, detailsCache, log)
	rosterService := service.NewRosterService(store.roster, store.fleet, store.tx, detailsCache, log)
	occurrenceService := service.NewOccurrenceService(store.occurrences, store.fleet, store.roster, store.tx, holder, detailsCache, publisher, log)
	dispatchService := service.NewDispatchService(store.occurrences, store.fleet, store.roster, store.tx, holder, estimator, detailsCache, publisher, log)
	reportService := service.NewReportService(store.occurrences, store.fleet, store.roster, store.areas, log)

	if _, err := areaService.Reload(ctx); err != nil {
		log.Fatalf("Failed to load road graph: %v", err)
	}

	// Начальные данные
	if cfg.SeedFile != "" {
		fixture, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to read seed file: %v", err)
		}
		summary, err := seed.NewLoader(areaService, fleetService, rosterService, log).Apply(ctx, fixture)
		if err != nil {
			log.Fatalf("Failed to apply seed: %v", err)
		}
		log.WithFields(logrus.Fields{
			"areas":         summary.Areas,
			"edges":         summary.Edges,
			"ambulances":    summary.Ambulances,
			"professionals": summary.Professionals,
			"teams":         summary.Teams,
		}).Info("Seed applied")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Occurrences: occurrenceService,
		Dispatch:    dispatchService,
		Fleet:       fleetService,
		Roster:      rosterService,
		Areas:       areaService,
		Reports:     reportService,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Воркер вебхуков читает очередь Redis
	if cfg.EventSink == config.EventSinkRedis && redisClient != nil {
		worker := webhook.NewWorker(redisClient, log, cfg)
		g.Go(func() error { return worker.Run(gctx) })
	}

	if cfg.SimulationEnabled {
		simulator := simulation.NewArrivalSimulator(occurrenceService, log, cfg.SimulationInterval, cfg.SimulationSecondsPerKm, nil)
		g.Go(func() error { return simulator.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Info("Server gracefully stopped")
}
