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
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	_ "github.com/sbilibin2017/gw-user-service/docs"
	"github.com/sbilibin2017/gw-user-service/internal/handlers"
	"github.com/sbilibin2017/gw-user-service/internal/hashers"
	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/middlewares"
	"github.com/sbilibin2017/gw-user-service/internal/repositories"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-user-service API
// @version 1.0.0
// @description Microservice for managing user records backed by MongoDB
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoConnectTimeout,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoDB, mongoConnectTimeout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, MongoDB, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string, mongoConnectTimeout int,
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

	// MongoDB config
	mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "usersdb")
	if mongoConnectTimeout, err = strconv.Atoi(getEnv("MONGO_CONNECT_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	return
}

// run initializes the logger, the MongoDB client, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI, mongoDB string, mongoConnectTimeout int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURI)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Log.Fatal("MongoDB connection error:", err)
	}
	defer client.Disconnect(context.Background())

	pingCtx, cancelPing := context.WithTimeout(ctx, time.Duration(mongoConnectTimeout)*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Log.Fatal("MongoDB ping failed:", err)
	}

	db := client.Database(mongoDB)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Unique email index is the serialization point for uniqueness
	if err := userWriteRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Fatal("failed to ensure indexes:", err)
	}

	// Initialize password hasher
	hasher := hashers.New()

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, hasher)

	// Initialize handlers
	listUsersHandler := handlers.NewListUsersHandler(userService)
	createUserHandler := handlers.NewCreateUserHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService)
	deleteUserHandler := handlers.NewDeleteUserHandler(userService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", listUsersHandler)
		r.Post("/users", createUserHandler)
		r.Get("/users/{id}", getUserHandler)
		r.Patch("/users/{id}", updateUserHandler)
		r.Delete("/users/{id}", deleteUserHandler)
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
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
