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

	"campusmarket/internal/config"
	handlers "campusmarket/internal/handlers/shared"
	"campusmarket/internal/middleware"
	"campusmarket/internal/repositories/mongodb"
	"campusmarket/internal/services"
	"campusmarket/pkg/cache"
	"campusmarket/pkg/database"
	"campusmarket/pkg/email"
	"campusmarket/pkg/logger"
	"campusmarket/pkg/sms"
	"campusmarket/pkg/storage"
	"campusmarket/routes"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "campusmarket: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logConfig := &logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
		Caller:     cfg.Log.Caller,
		AppName:    cfg.App.Name,
		Version:    cfg.App.Version,
	}
	log, err := logger.NewLogger(logConfig)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	auditConfig := *logConfig
	if cfg.Log.AuditFile != "" {
		auditConfig.Output = cfg.Log.AuditFile
	}
	audit, err := logger.NewAuditLogger(&auditConfig)
	if err != nil {
		return fmt.Errorf("init audit logger: %w", err)
	}

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer mongoDB.Close()
	log.WithField("database", cfg.Database.Database).Info("connected to MongoDB")

	if cfg.Database.RunMigrations {
		if err := database.NewMigrator(mongoDB.Database, log.Logrus()).Up(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	healthChecks := map[string]handlers.HealthCheck{"mongodb": mongoDB.Ping}

	var cacheService services.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			KeyPrefix:    "campusmarket:",
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, continuing without cache")
		} else {
			defer redisCache.Close()
			cacheService = services.NewCacheService(redisCache, log, cfg.Redis.DefaultTTL)
			healthChecks["redis"] = redisCache.Ping
		}
	}

	storageProvider, err := storage.NewProvider(ctx, storage.Config{
		Provider:           cfg.Storage.Provider,
		LocalBasePath:      cfg.Storage.Local.BasePath,
		LocalBaseURL:       cfg.Storage.Local.BaseURL,
		S3Region:           cfg.Storage.AWS.Region,
		S3Bucket:           cfg.Storage.AWS.Bucket,
		S3CDNDomain:        cfg.Storage.AWS.CDNDomain,
		GCSBucket:          cfg.Storage.GCP.Bucket,
		GCSCredentialsFile: cfg.Storage.GCP.CredentialsFile,
		GCSCDNDomain:       cfg.Storage.GCP.CDNDomain,
	})
	if err != nil {
		log.WithError(err).Warn("file storage unavailable, vendor image uploads disabled")
		storageProvider = nil
	}

	smsProvider, err := newSMSProvider(ctx, cfg.SMS)
	if err != nil {
		log.WithError(err).Warn("sms provider unavailable, rider notifications disabled")
		smsProvider = sms.NoopProvider{}
	}

	var mailer email.Sender = email.NoopSender{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPSender(email.Config{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.FromEmail,
			FromName:  cfg.SMTP.FromName,
		})
	}

	// Repositories
	db := mongoDB.Database
	rideRepo := mongodb.NewRideRepository(db)
	deliveryRepo := mongodb.NewDeliveryRepository(db)
	riderRepo := mongodb.NewMotorRiderRepository(db, cacheService)
	settingsRepo := mongodb.NewSettingsRepository(db)
	driverRepo := mongodb.NewDriverRepository(db)
	vendorRepo := mongodb.NewVendorRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	// Services
	notifications := services.NewNotificationService(services.NotificationConfig{
		Enabled:      cfg.Notifications.Enabled,
		AdminEmail:   cfg.Notifications.AdminEmail,
		RiderPageURL: cfg.Notifications.RiderPageURL,
	}, mailer, smsProvider, log)
	rideService := services.NewRideService(rideRepo, log, audit)
	deliveryService := services.NewDeliveryService(deliveryRepo, riderRepo, settingsRepo, notifications, log, audit)
	riderService := services.NewMotorRiderService(riderRepo, settingsRepo, log, audit)
	directoryService := services.NewDirectoryService(driverRepo, vendorRepo, categoryRepo, storageProvider, cacheService, log, audit)

	if cfg.App.IsProduction() || !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.TimeoutMiddleware(cfg.App.RequestTimeout))

	if cfg.Storage.Provider == "local" && storageProvider != nil {
		router.Static("/uploads", cfg.Storage.Local.BasePath)
	}

	routes.SetupRoutes(router, &routes.Handlers{
		Ride:       handlers.NewRideHandler(rideService, log),
		Delivery:   handlers.NewDeliveryHandler(deliveryService, log),
		MotorRider: handlers.NewMotorRiderHandler(riderService, log),
		Directory:  handlers.NewDirectoryHandler(directoryService, log),
		Health:     handlers.NewHealthHandler(cfg.App.Version, healthChecks),
	}, middleware.AuthRequired(cfg.Security.JWTSecret, log), middleware.AdminRequired())

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("address", srv.Addr).Info("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}

	log.Info("server shutdown completed")
	return nil
}

func newSMSProvider(ctx context.Context, cfg *config.SMSConfig) (sms.SMSProvider, error) {
	switch cfg.Provider {
	case "twilio":
		if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" {
			return nil, errors.New("twilio credentials are not set")
		}
		return sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber), nil
	case "sns":
		provider, err := sms.NewAWSSNSProvider(ctx, cfg.AWS.Region, cfg.AWS.SenderID)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "", "none":
		return sms.NoopProvider{}, nil
	}
	return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
}
