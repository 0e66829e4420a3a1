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
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/admin_login"
	approveBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/approve_booking"
	blockSlotHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/block_slot"
	bookingEmailActionHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/booking_email_action"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	createCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_court"
	deleteBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getBookingStatusHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking_status"
	getOccupiedSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_occupied_slots"
	issueOTPHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/issue_otp"
	listBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_bookings"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	rejectBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/reject_booking"
	toggleBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/toggle_booking"
	verifyOTPHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/verify_otp"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	adminRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	otpStore "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/otp"
	settingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/setting"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/notifications"
	adminsService "github.com/m04kA/SMC-CourtBookingService/internal/service/admins"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	settingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/settings"
	blockSlotUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/block_slot"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	getOccupiedSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_occupied_slots"
	issueOTPUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/issue_otp"
	verifyOTPUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/verify_otp"
	"github.com/m04kA/SMC-CourtBookingService/migrations"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithOptions(logger.Options{
		File:   cfg.Logs.File,
		Level:  cfg.Logs.Level,
		Format: cfg.Logs.Format,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtBookingService...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, _ := migrations.Version(context.Background(), db)
		log.Info("Database schema is up to date (version=%d)", version)
	}

	if cfg.Metrics.Enabled {
		metricsCollector.RegisterDBStats(db, cfg.Database.DBName)
	}

	// Redis для одноразовых кодов
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.OTPDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.OTPDB)

	// Очередь уведомлений
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.QueueDB,
	})
	defer queueClient.Close()

	// Интеграции
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		Timeout:  time.Duration(cfg.Mail.Timeout) * time.Second,
	}, log)
	dispatcher := notifications.NewDispatcher(
		queueClient,
		cfg.Notifications.Queue,
		cfg.Notifications.MaxRetry,
		metricsCollector,
		log,
	)
	tokens := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	courtRepository := courtRepo.NewRepository(db)
	settingRepository := settingRepo.NewRepository(db)
	adminRepository := adminRepo.NewRepository(db)
	codeStore := otpStore.NewStore(redisClient, time.Duration(cfg.OTP.SweepGrace)*time.Second)

	notifyTimeout := time.Duration(cfg.Booking.NotifyTimeout) * time.Second

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, dispatcher, notifyTimeout, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	settingSvc := settingsService.NewService(settingRepository, log)
	adminSvc := adminsService.NewService(
		adminRepository,
		tokens,
		time.Duration(cfg.Auth.AdminTokenHours)*time.Hour,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		settingRepository,
		tokens,
		dispatcher,
		metricsCollector,
		createBookingUC.Config{
			Location:           location,
			AllowedEmailDomain: cfg.Booking.AllowedEmailDomain,
			SameDayLeadTime:    cfg.Booking.SameDayLeadTime(),
			AllowPastDates:     cfg.Booking.AllowPastDates,
			NotifyTimeout:      notifyTimeout,
		},
		log,
	)
	blockSlotUseCase := blockSlotUC.NewUseCase(bookingRepository, courtRepository, metricsCollector, log)
	getOccupiedSlotsUseCase := getOccupiedSlotsUC.NewUseCase(bookingRepository, log)
	issueOTPUseCase := issueOTPUC.NewUseCase(
		codeStore,
		mailClient,
		metricsCollector,
		issueOTPUC.Config{
			Secret:             cfg.OTP.Secret,
			AllowedEmailDomain: cfg.Booking.AllowedEmailDomain,
			Cooldown:           time.Duration(cfg.OTP.CooldownSeconds) * time.Second,
			TTL:                time.Duration(cfg.OTP.TTLSeconds) * time.Second,
		},
		log,
	)
	verifyOTPUseCase := verifyOTPUC.NewUseCase(
		codeStore,
		tokens,
		metricsCollector,
		verifyOTPUC.Config{
			Secret:   cfg.OTP.Secret,
			TokenTTL: time.Duration(cfg.Auth.VerificationTokenMinutes) * time.Minute,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getOccupiedSlots := getOccupiedSlotsHandler.NewHandler(getOccupiedSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blockSlotUseCase, log)
	issueOTP := issueOTPHandler.NewHandler(issueOTPUseCase, log)
	verifyOTP := verifyOTPHandler.NewHandler(verifyOTPUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(adminSvc, log)
	getBookingStatus := getBookingStatusHandler.NewHandler(settingSvc, log)
	toggleBooking := toggleBookingHandler.NewHandler(settingSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	approveByEmail := bookingEmailActionHandler.NewHandler(bookingSvc, tokens, jwtauth.ActionApprove, log)
	rejectByEmail := bookingEmailActionHandler.NewHandler(bookingSvc, tokens, jwtauth.ActionReject, log)

	// Список проверен в Config.Validate
	trustedProxies, _ := config.ParseTrustedProxies(cfg.Server.TrustedProxies)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/occupied-slots", getOccupiedSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Ссылки из письма администратору подтверждаются подписанным токеном в query
	api.HandleFunc("/bookings/{bookingId}/approve-email", approveByEmail.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/reject-email", rejectByEmail.Handle).Methods(http.MethodGet)

	// Создание бронирования требует токен подтверждения email, его проверяет use case
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Одноразовые коды (ограничение частоты по IP) ---
	otp := api.PathPrefix("/otp").Subrouter()
	otp.Use(middleware.NewRateLimiter(cfg.OTP.RatePerMinute, cfg.OTP.RateBurst, trustedProxies, log).Middleware)
	otp.HandleFunc("/send", issueOTP.Handle).Methods(http.MethodPost)
	otp.HandleFunc("/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <admin token>)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(tokens, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPut)

	// --- Корты ---
	admin.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)

	// --- Управление слотами и приемом заявок ---
	admin.HandleFunc("/admin/block-slot", blockSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/booking-status", getBookingStatus.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/toggle-booking", toggleBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.Server.AllowedOrigins)(r),
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

// configPath путь к config.toml, переопределяется через CONFIG_PATH
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.toml"
}
