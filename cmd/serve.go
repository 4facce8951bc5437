package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/m04kA/Mila-BookingService/internal/infra/session"
	bookingRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/booking"
	cartRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/cart"
	catalogRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/catalog"
	invoiceRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/invoice"
	productRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/product"
	reviewRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/review"
	scheduleRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/Mila-BookingService/internal/infra/storage/user"
	analyticsService "github.com/m04kA/Mila-BookingService/internal/service/analytics"
	authService "github.com/m04kA/Mila-BookingService/internal/service/auth"
	billingService "github.com/m04kA/Mila-BookingService/internal/service/billing"
	bookingsService "github.com/m04kA/Mila-BookingService/internal/service/bookings"
	cartService "github.com/m04kA/Mila-BookingService/internal/service/cart"
	catalogService "github.com/m04kA/Mila-BookingService/internal/service/catalog"
	productsService "github.com/m04kA/Mila-BookingService/internal/service/products"
	reviewsService "github.com/m04kA/Mila-BookingService/internal/service/reviews"
	scheduleService "github.com/m04kA/Mila-BookingService/internal/service/schedule"
	createBookingUC "github.com/m04kA/Mila-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/Mila-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/Mila-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Mila-BookingService/pkg/metrics"
	"github.com/m04kA/Mila-BookingService/pkg/txmanager"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Close()
	defer db.Close()

	log.Info("Starting Mila-BookingService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("failed to load booking timezone: %w", err)
	}

	// Инициализируем метрики (если включены). nil-метрики ничего не пишут
	var (
		metricsCollector *metrics.Metrics
		registry         *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	stopMetricsCh := make(chan struct{})
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Ключи сессии уже проверены в config.Validate
	hashKey, _ := cfg.Auth.HashKeyBytes()
	blockKey, _ := cfg.Auth.BlockKeyBytes()
	sessions := session.NewManager(
		hashKey,
		blockKey,
		cfg.Auth.CookieName,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
		cfg.Auth.SecureCookie,
	)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)
	cartRepository := cartRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	svc := services{
		bookings:  bookingsService.NewService(bookingRepository, metricsCollector, log, location),
		schedule:  scheduleService.NewService(scheduleRepository, catalogRepository, txMgr, log, location),
		catalog:   catalogService.NewService(catalogRepository, scheduleRepository, log),
		auth:      authService.NewService(userRepository, sessions, log),
		products:  productsService.NewService(productRepository, log),
		cart:      cartService.NewService(cartRepository, productRepository, log),
		reviews:   reviewsService.NewService(reviewRepository, bookingRepository, userRepository, log),
		billing:   billingService.NewService(invoiceRepository, txMgr, log),
		analytics: analyticsService.NewService(bookingRepository, catalogRepository, reviewRepository, log, location),

		createBooking: createBookingUC.NewUseCase(
			bookingRepository,
			catalogRepository,
			scheduleRepository,
			txMgr,
			metricsCollector,
			log,
			location,
		),
		getAvailableSlots: getAvailableSlotsUC.NewUseCase(
			bookingRepository,
			catalogRepository,
			scheduleRepository,
			metricsCollector,
			log,
			location,
		),
	}

	router := newRouter(cfg, log, sessions, metricsCollector, registry, svc)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
