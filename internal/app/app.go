package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	redisClient "github.com/redis/go-redis/v9"

	httphandler "github.com/sm8ta/webike_maintenance_tracker/internal/adapter/handler/http"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/logger"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/memory"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/openai"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/prometheus"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/redis"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/scheduler"
	"github.com/sm8ta/webike_maintenance_tracker/internal/adapter/sqldb"
	"github.com/sm8ta/webike_maintenance_tracker/internal/config"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/services"
	"github.com/sm8ta/webike_maintenance_tracker/internal/core/templates"
)

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	Cache       ports.CachePort
	HTTPRouter  *httphandler.Router
	Scheduler   *scheduler.OverdueScheduler
	server      *http.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":   cfg.App.Name,
		"env":   cfg.App.Env,
		"store": cfg.Store.Driver,
	})

	a := &App{Config: cfg, Logger: loggerAdapter}

	// Set redis
	if cfg.Redis.Address != "" {
		a.RedisClient = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := a.RedisClient.Ping(ctx).Result(); err != nil {
			a.close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.Cache = redis.NewRedisAdapter(a.RedisClient)
	} else {
		a.Cache = memory.NewCache()
	}

	// Snapshot store
	var store ports.SnapshotStore
	switch cfg.Store.Driver {
	case sqldb.DriverSQLite, sqldb.DriverPostgres:
		db, err := sqldb.Open(ctx, cfg.Store.Driver, cfg.Store.DSN, cfg.Store.MigrationsDir)
		if err != nil {
			a.close()
			return nil, err
		}
		a.DB = db
		store = sqldb.NewSnapshotStore(db, cfg.Store.Driver)
	case "redis":
		if a.RedisClient == nil {
			return nil, errors.New("STORE_DRIVER=redis requires REDIS_ADDRESS")
		}
		store = redis.NewSnapshotStore(a.RedisClient)
	case "memory":
		store = memory.NewSnapshotStore()
	default:
		a.close()
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Recommendation client
	var recommender ports.Recommender
	if cfg.Recommendation.APIKey != "" {
		recommender = openai.New(openai.Config{
			Host:        cfg.Recommendation.Host,
			BasePath:    cfg.Recommendation.BasePath,
			Scheme:      cfg.Recommendation.Scheme,
			APIKey:      cfg.Recommendation.APIKey,
			Model:       cfg.Recommendation.Model,
			MaxTokens:   cfg.Recommendation.MaxTokens,
			Temperature: cfg.Recommendation.Temperature,
			Timeout:     cfg.Recommendation.Timeout,
		})
	} else {
		loggerAdapter.Warn("No OpenAI API key configured, recommendations disabled", nil)
	}

	// Services
	set := templates.Default()
	fleetService := services.NewFleetService(store, set, loggerAdapter, metrics)
	if err := fleetService.Load(ctx); err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load fleet: %w", err)
	}
	bikeService := services.NewBikeService(fleetService, set, loggerAdapter, validate, a.Cache)
	maintenanceService := services.NewMaintenanceService(fleetService, loggerAdapter, metrics, a.Cache)
	recommendationService := services.NewRecommendationService(
		fleetService, recommender, a.Cache, cfg.Recommendation.CacheTTL, loggerAdapter, metrics,
	)

	// Scheduler
	if cfg.Scheduler.AutoFlagSchedule != "" {
		a.Scheduler = scheduler.NewOverdueScheduler(cfg.Scheduler.AutoFlagSchedule, maintenanceService, loggerAdapter)
	}

	// HTTP Handlers
	handler := httphandler.NewHandler(
		fleetService,
		bikeService,
		maintenanceService,
		recommendationService,
		loggerAdapter,
		metrics,
	)

	// Init HTTP router
	router, err := httphandler.NewRouter(cfg.HTTP, handler, nil)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}
	a.HTTPRouter = router

	return a, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", listenAddr, err)
	}

	if a.Scheduler != nil {
		if err := a.Scheduler.Start(); err != nil {
			listener.Close()
			return err
		}
	}

	a.server = &http.Server{
		Handler:           a.HTTPRouter.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listener.Addr().String(),
	})

	go func() {
		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.Scheduler != nil {
		a.Scheduler.Stop(ctx)
	}

	a.close()
	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func (a *App) close() {
	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
