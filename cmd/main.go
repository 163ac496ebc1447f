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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/add_cart_item"
	checkAvailabilityHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/check_availability"
	clearCartHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/clear_cart"
	confirmCartHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/confirm_cart"
	getCartHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/get_cart"
	removeCartItemHandler "github.com/capachica-turismo/reservas-service/internal/api/handlers/remove_cart_item"
	"github.com/capachica-turismo/reservas-service/internal/api/middleware"
	"github.com/capachica-turismo/reservas-service/internal/config"
	cartRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/cart"
	serviceRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/service"
	cartService "github.com/capachica-turismo/reservas-service/internal/service/cart"
	addCartItemUC "github.com/capachica-turismo/reservas-service/internal/usecase/add_cart_item"
	checkAvailabilityUC "github.com/capachica-turismo/reservas-service/internal/usecase/check_availability"
	"github.com/capachica-turismo/reservas-service/pkg/dbmetrics"
	"github.com/capachica-turismo/reservas-service/pkg/logger"
	"github.com/capachica-turismo/reservas-service/pkg/metrics"
	"github.com/capachica-turismo/reservas-service/pkg/simpletxmanager"
	"github.com/capachica-turismo/reservas-service/pkg/txmanager"
)

func main() {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reservas-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, with or without metrics
	var (
		cartRepository    *cartRepo.Repository
		serviceRepository *serviceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		cartRepository = cartRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		cartRepository = cartRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	cartSvc := cartService.NewService(cartRepository, log)

	addCartItemUseCase := addCartItemUC.NewUseCase(
		cartRepository,
		serviceRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		cartRepository,
		serviceRepository,
		log,
	)

	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(addCartItemUseCase, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	confirmCart := confirmCartHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public: availability is checked from service detail pages before login
	api.HandleFunc("/servicios/verificar-disponibilidad",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Cart routes require a session token
	protected := api.PathPrefix("/reservas").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	protected.HandleFunc("/carrito", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/carrito/agregar", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/carrito/servicio/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/carrito/confirmar", confirmCart.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/carrito/vaciar", clearCart.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
