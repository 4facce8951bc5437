package main

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	addCartItemHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/add_cart_item"
	cancelBookingHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/cancel_booking"
	clearCartHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/clear_cart"
	createBookingHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/create_booking"
	createProductHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/create_product"
	getAnalyticsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_analytics"
	getAvailableDatesHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_calendar"
	getCartHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_cart"
	getDashboardHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_dashboard"
	getInvoiceSummaryHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_invoice_summary"
	getProfileHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_profile"
	getStylistHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_stylist"
	getStylistScheduleHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_stylist_schedule"
	getUserBookingsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/get_user_bookings"
	listInvoicesHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_invoices"
	listMyReviewsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_my_reviews"
	listPendingReviewsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_pending_reviews"
	listProductsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_products"
	listServicesHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_services"
	listStylistReviewsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_stylist_reviews"
	listStylistsHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/list_stylists"
	loginHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/register"
	removeCartItemHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/remove_cart_item"
	submitReviewHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/submit_review"
	syncInvoicesHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/sync_invoices"
	toggleInvoiceHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/toggle_invoice"
	updateBookingStatusHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/update_booking_status"
	updateCartItemHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/update_cart_item"
	updateProductStockHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/update_product_stock"
	updateProfileHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/update_profile"
	updateStylistScheduleHandler "github.com/m04kA/Mila-BookingService/internal/api/handlers/update_stylist_schedule"
	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/config"
	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/infra/session"
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
	"github.com/m04kA/Mila-BookingService/pkg/logger"
	"github.com/m04kA/Mila-BookingService/pkg/metrics"
)

// services всё, что нужно роутеру от бизнес-слоя
type services struct {
	bookings  *bookingsService.Service
	schedule  *scheduleService.Service
	catalog   *catalogService.Service
	auth      *authService.Service
	products  *productsService.Service
	cart      *cartService.Service
	reviews   *reviewsService.Service
	billing   *billingService.Service
	analytics *analyticsService.Service

	createBooking     *createBookingUC.UseCase
	getAvailableSlots *getAvailableSlotsUC.UseCase
}

func newRouter(
	cfg *config.Config,
	log *logger.Logger,
	sessions *session.Manager,
	metricsCollector *metrics.Metrics,
	registry *prometheus.Registry,
	svc services,
) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics(metricsCollector))

	// Metrics endpoint (публичный, без аутентификации)
	if registry != nil {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Вход и регистрация (с ограничением частоты по IP) ---
	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRatePerMin, cfg.Auth.LoginBurst, log)
	login := loginHandler.NewHandler(svc.auth, sessions, log)
	register := registerHandler.NewHandler(svc.auth, sessions, log)
	logout := logoutHandler.NewHandler(sessions, log)

	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(login.Handle))).Methods(http.MethodPost)
	api.Handle("/auth/register", loginLimiter.Middleware(http.HandlerFunc(register.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	api.HandleFunc("/stylists", listStylistsHandler.NewHandler(svc.catalog, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}", getStylistHandler.NewHandler(svc.catalog, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServicesHandler.NewHandler(svc.catalog, log).Handle).Methods(http.MethodGet)

	// --- Доступность мастера ---
	api.HandleFunc("/stylists/{stylistId}/available-dates",
		getAvailableDatesHandler.NewHandler(svc.schedule, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}/available-slots",
		getAvailableSlotsHandler.NewHandler(svc.getAvailableSlots, log).Handle).Methods(http.MethodGet)

	// --- Отзывы и магазин ---
	api.HandleFunc("/stylists/{stylistId}/reviews",
		listStylistReviewsHandler.NewHandler(svc.reviews, log).Handle).Methods(http.MethodGet)
	listProducts := listProductsHandler.NewHandler(svc.products, log)
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (cookie сессии или Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings",
		createBookingHandler.NewHandler(svc.createBooking, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}",
		getBookingHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel",
		cancelBookingHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodPatch)

	// --- Личный кабинет ---
	protected.HandleFunc("/me", getProfileHandler.NewHandler(svc.auth, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me", updateProfileHandler.NewHandler(svc.auth, log).Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/bookings",
		getUserBookingsHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)

	// --- Корзина ---
	protected.HandleFunc("/me/cart", getCartHandler.NewHandler(svc.cart, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/cart", clearCartHandler.NewHandler(svc.cart, log).Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/me/cart/items",
		addCartItemHandler.NewHandler(svc.cart, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me/cart/items/{productId}",
		updateCartItemHandler.NewHandler(svc.cart, log).Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/cart/items/{productId}",
		removeCartItemHandler.NewHandler(svc.cart, log).Handle).Methods(http.MethodDelete)

	// --- Отзывы клиента ---
	protected.HandleFunc("/me/reviews", listMyReviewsHandler.NewHandler(svc.reviews, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/reviews/pending",
		listPendingReviewsHandler.NewHandler(svc.reviews, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reviews", submitReviewHandler.NewHandler(svc.reviews, log).Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(sessions, log), middleware.RequireRole(domain.RoleAdmin, log))

	// --- Календарь и статусы ---
	admin.HandleFunc("/bookings", getCalendarHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status",
		updateBookingStatusHandler.NewHandler(svc.bookings, log).Handle).Methods(http.MethodPatch)

	// --- Расписание мастеров ---
	admin.HandleFunc("/stylists/{stylistId}/schedule",
		getStylistScheduleHandler.NewHandler(svc.schedule, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/stylists/{stylistId}/schedule",
		updateStylistScheduleHandler.NewHandler(svc.schedule, log).Handle).Methods(http.MethodPut)

	// --- Счета ---
	admin.HandleFunc("/invoices/sync", syncInvoicesHandler.NewHandler(svc.billing, log).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/invoices", listInvoicesHandler.NewHandler(svc.billing, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/summary",
		getInvoiceSummaryHandler.NewHandler(svc.billing, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/invoices/{invoiceId}/toggle",
		toggleInvoiceHandler.NewHandler(svc.billing, log).Handle).Methods(http.MethodPatch)

	// --- Товары ---
	admin.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/products", createProductHandler.NewHandler(svc.products, log).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/products/{productId}/stock",
		updateProductStockHandler.NewHandler(svc.products, log).Handle).Methods(http.MethodPatch)

	// --- Аналитика ---
	admin.HandleFunc("/dashboard", getDashboardHandler.NewHandler(svc.analytics, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/analytics", getAnalyticsHandler.NewHandler(svc.analytics, log).Handle).Methods(http.MethodGet)

	// Внешние обёртки: реальный IP за прокси, CORS для фронтенда,
	// восстановление после паники и access-лог
	var h http.Handler = r
	h = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.RequestIDHeader}),
		gorillaHandlers.AllowCredentials(),
	)(h)
	h = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log}),
		gorillaHandlers.PrintRecoveryStack(true),
	)(h)
	h = gorillaHandlers.ProxyHeaders(h)
	h = gorillaHandlers.CombinedLoggingHandler(log.Writer(), h)

	return h
}

// recoveryLogger адаптирует logger.Logger к gorilla/handlers.RecoveryHandlerLogger
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %v", v)
}
