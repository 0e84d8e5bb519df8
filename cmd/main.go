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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/stripe-ledger/docs"
	"github.com/sbilibin2017/stripe-ledger/internal/facades"
	"github.com/sbilibin2017/stripe-ledger/internal/handlers"
	"github.com/sbilibin2017/stripe-ledger/internal/jwt"
	"github.com/sbilibin2017/stripe-ledger/internal/logger"
	"github.com/sbilibin2017/stripe-ledger/internal/middlewares"
	"github.com/sbilibin2017/stripe-ledger/internal/repositories"
	"github.com/sbilibin2017/stripe-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title stripe-ledger API
// @version 1.0.0
// @description Wallet ledger with Stripe card top-ups, subscriptions and webhook reconciliation
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisEventTTL     time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	stripeSecretKey        string
	stripeWebhookSecret    string
	stripeWebhookTolerance time.Duration
	stripeCurrency         string
	stripeDetachOnUnlink   bool

	jwtSecretKey string
}

// parseConfig loads environment variables from a file and returns the application,
// database, Redis, Kafka, Stripe, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var ttl int
	if ttl, err = getInt("REDIS_EVENT_TTL_SECOND", "259200"); err != nil {
		return
	}
	cfg.redisEventTTL = time.Duration(ttl) * time.Second

	// Kafka config, no brokers disables publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
			}
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// Stripe config
	cfg.stripeSecretKey = getEnv("STRIPE_SECRET_KEY", "")
	cfg.stripeWebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")
	var tolerance int
	if tolerance, err = getInt("STRIPE_WEBHOOK_TOLERANCE_SECOND", "300"); err != nil {
		return
	}
	cfg.stripeWebhookTolerance = time.Duration(tolerance) * time.Second
	cfg.stripeCurrency = strings.ToLower(getEnv("STRIPE_CURRENCY", "usd"))
	if cfg.stripeDetachOnUnlink, err = strconv.ParseBool(getEnv("STRIPE_DETACH_ON_UNLINK", "false")); err != nil {
		err = fmt.Errorf("STRIPE_DETACH_ON_UNLINK: %w", err)
		return
	}

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")

	return
}

// run initializes the logger, database, Redis, Kafka, Stripe client and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for committed balance changes
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing wallet transactions to Kafka topic %s", cfg.kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, wallet transactions will not be published")
	}

	// Stripe
	if cfg.stripeSecretKey == "" {
		logger.Log.Warn("STRIPE_SECRET_KEY is empty, payment provider calls will fail")
	}
	if cfg.stripeWebhookSecret == "" {
		logger.Log.Warn("STRIPE_WEBHOOK_SECRET is empty, every webhook delivery will be rejected")
	}
	stripeFacade := facades.NewStripeFacade(facades.NewStripeClient(cfg.stripeSecretKey, nil))

	// Initialize JWT
	tokener := jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey))

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	userRepo := repositories.NewUserRepository(db)
	walletWriteRepo := repositories.NewWalletWriterRepository(db)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	eventCache := repositories.NewEventCacheRepository(rdb, cfg.redisEventTTL)

	// Initialize services
	publisher := services.NewTransactionPublisher(kafkaWriter)
	walletService := services.NewWalletService(walletWriteRepo, walletReadRepo, txManager, publisher)
	paymentService := services.NewPaymentService(paymentMethodRepo, paymentRepo, subscriptionRepo)
	ledgerService := services.NewLedgerService(paymentRepo, walletService, txManager)
	billingService := services.NewBillingService(userRepo, stripeFacade, ledgerService, paymentService,
		services.WithCurrency(cfg.stripeCurrency),
		services.WithDetachOnUnlink(cfg.stripeDetachOnUnlink),
	)
	webhookService := services.NewWebhookService(cfg.stripeWebhookSecret, cfg.stripeWebhookTolerance,
		eventCache, stripeFacade, userRepo, paymentService, ledgerService)

	// Initialize handlers
	webhookHandler := handlers.NewStripeWebhookHandler(webhookService)
	balanceHandler := handlers.NewGetBalanceHandler(walletService)
	listMethodsHandler := handlers.NewListPaymentMethodsHandler(paymentService)
	historyHandler := handlers.NewPaymentHistoryHandler(paymentService)
	setupIntentHandler := handlers.NewCreateSetupIntentHandler(billingService)
	chargeHandler := handlers.NewChargeHandler(billingService)
	subscriptionHandler := handlers.NewCreateSubscriptionHandler(billingService)
	invoicePdfHandler := handlers.NewInvoicePdfHandler(billingService)
	unlinkHandler := handlers.NewUnlinkPaymentMethodHandler(billingService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/webhook/stripe/v1/handle", webhookHandler)

	// Protected routes with JWT middleware
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Get("/wallet/balance", balanceHandler)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/methods", listMethodsHandler)
			r.Post("/methods/unlink", unlinkHandler)
			r.Get("/history", historyHandler)
			r.Post("/setup-intent", setupIntentHandler)
			r.Post("/charge", chargeHandler)
			r.Post("/subscriptions", subscriptionHandler)
			r.Get("/invoices/{invoiceID}/pdf", invoicePdfHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
