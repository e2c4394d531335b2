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

	cancelAppointmentHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/create_appointment"
	createAvailableDayHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/create_available_day"
	createPropertyHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/create_property"
	deleteAvailableDayHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/delete_available_day"
	deletePropertyHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/delete_property"
	getAppointmentHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/get_appointment"
	getDayAvailabilityHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/get_day_availability"
	getMonthAvailabilityHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/get_month_availability"
	getPropertyHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/get_property"
	listAppointmentsHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/list_appointments"
	listAvailableDaysHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/list_available_days"
	listPropertyAppointmentsHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/list_property_appointments"
	listPropertiesHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/list_properties"
	updateAvailableDayHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/update_available_day"
	updatePropertyHandler "github.com/habitatum/HBT-AppointmentService/internal/api/handlers/update_property"
	"github.com/habitatum/HBT-AppointmentService/internal/api/middleware"
	"github.com/habitatum/HBT-AppointmentService/internal/config"
	appointmentRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/appointment"
	availabledayRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/availableday"
	gcaltokenRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/gcaltoken"
	propertyRepo "github.com/habitatum/HBT-AppointmentService/internal/infra/storage/property"
	"github.com/habitatum/HBT-AppointmentService/internal/integrations/googlecalendar"
	"github.com/habitatum/HBT-AppointmentService/internal/integrations/mailer"
	appointmentsService "github.com/habitatum/HBT-AppointmentService/internal/service/appointments"
	availabilityService "github.com/habitatum/HBT-AppointmentService/internal/service/availability"
	propertiesService "github.com/habitatum/HBT-AppointmentService/internal/service/properties"
	createAppointmentUC "github.com/habitatum/HBT-AppointmentService/internal/usecase/create_appointment"
	"github.com/habitatum/HBT-AppointmentService/pkg/dbmetrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/logger"
	"github.com/habitatum/HBT-AppointmentService/pkg/metrics"
	"github.com/habitatum/HBT-AppointmentService/pkg/simpletxmanager"
	"github.com/habitatum/HBT-AppointmentService/pkg/txmanager"
)

func main() {
	// Local development secrets live in .env, production supplies real
	// environment variables
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

	log.Info("Starting HBT-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Day boundaries follow the business timezone, not the server clock
	businessTZ, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}
	log.Info("Business timezone: %s", cfg.Business.Timezone)

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

	// Repositories and transaction manager, with metrics wrapping when enabled
	var (
		apptRepository  *appointmentRepo.Repository
		dayRepository   *availabledayRepo.Repository
		propRepository  *propertyRepo.Repository
		tokenRepository *gcaltokenRepo.Repository
		txMgr           createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		dayRepository = availabledayRepo.NewRepository(wrappedDB)
		propRepository = propertyRepo.NewRepository(wrappedDB)
		tokenRepository = gcaltokenRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		dayRepository = availabledayRepo.NewRepository(db)
		propRepository = propertyRepo.NewRepository(db)
		tokenRepository = gcaltokenRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Optional integrations: both are best effort, the booking flow
	// works without them
	var calendarClient *googlecalendar.Client
	if cfg.GoogleCalendar.Enabled {
		calendarClient = googlecalendar.NewClient(
			cfg.GoogleCalendar.CalendarID,
			time.Duration(cfg.GoogleCalendar.Timeout)*time.Second,
			tokenRepository,
			businessTZ,
			log,
		)
		log.Info("Google Calendar integration enabled (calendar=%s)", cfg.GoogleCalendar.CalendarID)
	}

	var notifier createAppointmentUC.Notifier
	if cfg.Notifications.Enabled {
		notifier = mailer.NewMailer(
			cfg.Notifications.SMTPHost,
			cfg.Notifications.SMTPPort,
			cfg.Notifications.SMTPUser,
			cfg.Notifications.From,
			cfg.Notifications.AdminEmail,
			log,
		)
		log.Info("Admin email notifications enabled (to=%s)", cfg.Notifications.AdminEmail)
	}

	// A nil *Client must stay a nil interface for the consumers
	var ucCalendar createAppointmentUC.CalendarClient
	var svcCalendar appointmentsService.CalendarClient
	if calendarClient != nil {
		ucCalendar = calendarClient
		svcCalendar = calendarClient
	}

	// Services
	availabilitySvc := availabilityService.NewService(dayRepository, apptRepository, businessTZ, log)
	appointmentsSvc := appointmentsService.NewService(apptRepository, propRepository, svcCalendar, businessTZ, log)
	propertiesSvc := propertiesService.NewService(propRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		apptRepository,
		dayRepository,
		propRepository,
		ucCalendar,
		notifier,
		txMgr,
		businessTZ,
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(availabilitySvc, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(availabilitySvc, log)
	listProperties := listPropertiesHandler.NewHandler(propertiesSvc, false, log)
	getProperty := getPropertyHandler.NewHandler(propertiesSvc, false, log)

	adminListProperties := listPropertiesHandler.NewHandler(propertiesSvc, true, log)
	adminGetProperty := getPropertyHandler.NewHandler(propertiesSvc, true, log)
	createProperty := createPropertyHandler.NewHandler(propertiesSvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertiesSvc, log)
	deleteProperty := deletePropertyHandler.NewHandler(propertiesSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listPropertyAppointments := listPropertyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAvailableDay := createAvailableDayHandler.NewHandler(availabilitySvc, log)
	listAvailableDays := listAvailableDaysHandler.NewHandler(availabilitySvc, log)
	updateAvailableDay := updateAvailableDayHandler.NewHandler(availabilitySvc, log)
	deleteAvailableDay := deleteAvailableDayHandler.NewHandler(availabilitySvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: catalog, availability, booking
	api.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability", getDayAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/month", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Administrative routes, guarded by the X-Admin-Key header
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Admin.APIKey))

	admin.HandleFunc("/properties", adminListProperties.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/properties/{propertyId}", adminGetProperty.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/properties/{propertyId}", updateProperty.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{propertyId}", deleteProperty.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/properties/{propertyId}/appointments", listPropertyAppointments.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/available-days", createAvailableDay.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/available-days", listAvailableDays.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/available-days/{dayId}", updateAvailableDay.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/available-days/{dayId}", deleteAvailableDay.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped gracefully")
}
