package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/tmuriuki/cashlink/internal/commission"
	"github.com/tmuriuki/cashlink/internal/facades"
	"github.com/tmuriuki/cashlink/internal/handlers"
	"github.com/tmuriuki/cashlink/internal/jwt"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/metrics"
	"github.com/tmuriuki/cashlink/internal/middlewares"
	"github.com/tmuriuki/cashlink/internal/repositories"
	"github.com/tmuriuki/cashlink/internal/services"
	"github.com/tmuriuki/cashlink/internal/ussd"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/tmuriuki/cashlink/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title CashLink API
// @version 1.0.0
// @description Cash agent matching and dual-channel transaction engine
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, notifyTopic, auditTopic,
		logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBroker, notifyTopic, auditTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, notifyTopic, auditTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "cashlink")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config. An empty broker disables event publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	notifyTopic = getEnv("KAFKA_NOTIFICATIONS_TOPIC", "agent.notifications")
	auditTopic = getEnv("KAFKA_AUDIT_TOPIC", "security.audit")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writers, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaBroker, notifyTopic, auditTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	lg, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer lg.Sync()
	lg.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	lg.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		lg.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		lg.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		lg.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writers. Events are best effort, so a missing broker only
	// disables publishing instead of failing startup.
	var notifyWriter, auditWriter facades.KafkaWriter
	if kafkaBroker != "" {
		nw := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBroker),
			Topic:                  notifyTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		aw := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBroker),
			Topic:                  auditTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer nw.Close()
		defer aw.Close()
		notifyWriter, auditWriter = nw, aw
		lg.Infof("Kafka publishing enabled on %s", kafkaBroker)
	} else {
		lg.Warn("KAFKA_BROKER not set, event publishing disabled")
	}

	// Initialize JWT service and metrics
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)
	m := metrics.Registry("cashlink")

	// Initialize repositories
	runner := repositories.NewRunner(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	walletReadRepo := repositories.NewWalletReadRepository(db)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, repositories.TxFromContext)
	agentReadRepo := repositories.NewAgentReadRepository(db)
	agentWriteRepo := repositories.NewAgentWriteRepository(db, repositories.TxFromContext)
	txReadRepo := repositories.NewTransactionReadRepository(db)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, repositories.TxFromContext)
	recordWriteRepo := repositories.NewTransferRecordWriteRepository(db, repositories.TxFromContext)
	recordReadRepo := repositories.NewTransferRecordReadRepository(db)

	// Initialize services
	events := facades.NewEventsFacade(notifyWriter, auditWriter)
	identityService := services.NewIdentityService(userReadRepo)
	directoryService := services.NewDirectoryService(agentReadRepo, txReadRepo)
	cashService := services.NewCashService(
		agentReadRepo, agentWriteRepo,
		walletReadRepo, walletWriteRepo,
		txReadRepo, txWriteRepo,
		identityService, events, runner,
		commission.NewCalculator(), m,
	)
	transferService := services.NewTransferService(
		identityService,
		walletReadRepo, walletWriteRepo,
		recordWriteRepo, recordReadRepo,
		runner, events,
	)
	navigator := ussd.NewNavigator(transferService, directoryService, events, m, nil)

	// Initialize handlers
	nearbyHandler := handlers.NewNearbyHandler(directoryService, m)
	cashInHandler := handlers.NewCashInHandler(cashService, tokener)
	cashOutHandler := handlers.NewCashOutHandler(cashService, tokener)
	confirmHandler := handlers.NewConfirmHandler(cashService, tokener, m)
	dashboardHandler := handlers.NewDashboardHandler(directoryService, tokener)
	ussdHandler := handlers.NewUSSDHandler(navigator)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(lg))

	// Public routes
	r.Get("/api/v1/agents/nearby", nearbyHandler)
	r.Post("/api/v1/ussd", ussdHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Get("/api/v1/agent/dashboard", dashboardHandler)
		r.Post("/api/v1/cash-transactions/confirm", confirmHandler)

		// Money-moving initiations also honor Idempotency-Key.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.IdempotencyMiddleware(rdb))
			r.Post("/api/v1/cash-in", cashInHandler)
			r.Post("/api/v1/cash-out", cashOutHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		lg.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		lg.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorw("HTTP server shutdown error", "error", err)
	}

	lg.Info("HTTP server stopped gracefully")
	return nil
}
