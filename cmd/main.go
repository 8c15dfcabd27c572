package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getBrandHoursHandler "github.com/AjwadDaiki/isopen-service/internal/api/handlers/get_brand_hours"
	getStoreStatusHandler "github.com/AjwadDaiki/isopen-service/internal/api/handlers/get_store_status"
	listBrandsHandler "github.com/AjwadDaiki/isopen-service/internal/api/handlers/list_brands"
	updateBrandHoursHandler "github.com/AjwadDaiki/isopen-service/internal/api/handlers/update_brand_hours"
	"github.com/AjwadDaiki/isopen-service/internal/api/middleware"
	"github.com/AjwadDaiki/isopen-service/internal/config"
	statusCache "github.com/AjwadDaiki/isopen-service/internal/infra/cache/status"
	"github.com/AjwadDaiki/isopen-service/internal/infra/geo"
	brandRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/brand"
	"github.com/AjwadDaiki/isopen-service/internal/infra/storage/migrate"
	scheduleRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/schedule"
	geoipClient "github.com/AjwadDaiki/isopen-service/internal/integrations/geoip"
	brandsService "github.com/AjwadDaiki/isopen-service/internal/service/brands"
	getStoreStatusUC "github.com/AjwadDaiki/isopen-service/internal/usecase/get_store_status"
	"github.com/AjwadDaiki/isopen-service/pkg/logger"
	"github.com/AjwadDaiki/isopen-service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting isopen-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to init migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrations applied, version=%d", version)
	}

	// Инициализируем репозитории
	brandRepository := brandRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)

	// Подключаемся к redis (кеш статусов + гео-индекс точек)
	var (
		cache    *statusCache.Cache
		geoIndex *geo.Index
	)
	if cfg.Cache.Enabled || cfg.Geo.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)

		if cfg.Cache.Enabled {
			cache = statusCache.NewCache(redisClient, cacheMetricsOrNil(metricsCollector))
			log.Info("Status response cache enabled, ttl=%ds", cfg.Cache.StatusTTLSeconds)
		}

		if cfg.Geo.Enabled {
			geoIndex = geo.NewIndex(redisClient)

			// Наполняем гео-индекс точками из базы
			locations, err := brandRepository.ListLocations(context.Background())
			if err != nil {
				log.Fatal("Failed to list locations for geo index: %v", err)
			}
			for _, loc := range locations {
				if err := geoIndex.AddLocation(context.Background(), loc); err != nil {
					log.Fatal("Failed to index location id=%d: %v", loc.ID, err)
				}
			}
			log.Info("Geo index populated with %d locations, radius=%.1fkm",
				len(locations), cfg.Geo.SearchRadiusKm)
		}
	}

	// Инициализируем geoip клиент (если включен)
	var geoip getStoreStatusUC.GeoIPClient
	if cfg.GeoIP.Enabled {
		geoip = geoipClient.NewClient(
			cfg.GeoIP.URL,
			time.Duration(cfg.GeoIP.Timeout)*time.Second,
			log,
		)
		log.Info("GeoIP client initialized (url=%s, timeout=%ds)", cfg.GeoIP.URL, cfg.GeoIP.Timeout)
	}

	// Инициализируем сервисы
	brandsSvc := brandsService.NewService(
		brandRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	getStoreStatusUseCase := getStoreStatusUC.NewUseCase(
		brandRepository,
		scheduleRepository,
		cacheOrNil(cache),
		geoIndexOrNil(geoIndex),
		geoip,
		cfg.Geo.SearchRadiusKm,
		cfg.Status.DefaultTimezone,
		time.Duration(cfg.Cache.StatusTTLSeconds)*time.Second,
		engineMetricsOrNil(metricsCollector),
		log,
	)

	// Инициализируем handlers
	getStoreStatus := getStoreStatusHandler.NewHandler(getStoreStatusUseCase, log)
	getBrandHours := getBrandHoursHandler.NewHandler(brandsSvc, log)
	listBrands := listBrandsHandler.NewHandler(brandsSvc, log)
	updateBrandHours := updateBrandHoursHandler.NewHandler(brandsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Статус открыто/закрыто для бренда
	api.HandleFunc("/brands/{slug}/status", getStoreStatus.Handle).Methods(http.MethodGet)

	// Список брендов
	api.HandleFunc("/brands", listBrands.Handle).Methods(http.MethodGet)

	// Недельное расписание бренда
	api.HandleFunc("/brands/{slug}/hours", getBrandHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// Замена недельного расписания бренда
	protected.HandleFunc("/brands/{slug}/hours", updateBrandHours.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// cacheOrNil превращает типизированный nil в nil интерфейса
func cacheOrNil(c *statusCache.Cache) getStoreStatusUC.StatusCache {
	if c == nil {
		return nil
	}
	return c
}

// geoIndexOrNil превращает типизированный nil в nil интерфейса
func geoIndexOrNil(i *geo.Index) getStoreStatusUC.GeoIndex {
	if i == nil {
		return nil
	}
	return i
}

// cacheMetricsOrNil превращает типизированный nil в nil интерфейса
func cacheMetricsOrNil(m *metrics.Metrics) statusCache.Metrics {
	if m == nil {
		return nil
	}
	return m
}

// engineMetricsOrNil превращает типизированный nil в nil интерфейса
func engineMetricsOrNil(m *metrics.Metrics) getStoreStatusUC.Metrics {
	if m == nil {
		return nil
	}
	return m
}
