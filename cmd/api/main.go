package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"qna-board/internal/common/pagination"
	pgRepo "qna-board/internal/infra/adapter/persistence/postgres"
	"qna-board/internal/infra/db"
	"qna-board/internal/infra/hash"
	"qna-board/internal/observability/tracing"
	"qna-board/internal/resilience/circuitbreaker"

	ansUC "qna-board/internal/usecase/answer"
	quesUC "qna-board/internal/usecase/question"
	userUC "qna-board/internal/usecase/user"

	hhttp "qna-board/internal/handler/http"
	hanswer "qna-board/internal/handler/http/answer"
	hauth "qna-board/internal/handler/http/auth"
	hquestion "qna-board/internal/handler/http/question"
	"qna-board/internal/handler/http/requestid"
	huser "qna-board/internal/handler/http/user"
	authservice "qna-board/internal/service/auth"
)

// bcryptCost is the work factor applied to passwords at signup.
const bcryptCost = 12

func main() {
	logger := initLogger()
	validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable at startup.
// This prevents the server from starting with a missing or weak signing key.
func validateJWTSecret(logger *slog.Logger) {
	if err := hauth.ValidateSecret(); err != nil {
		logger.Error("JWT secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// All repository traffic goes through the breaker so a dead database trips
	// fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	userRepo := pgRepo.NewUserRepo(breaker)
	questionRepo := pgRepo.NewQuestionRepo(breaker)
	answerRepo := pgRepo.NewAnswerRepo(breaker)

	hasher := hash.NewBcryptHasher(bcryptCost)

	paginationCfg := pagination.LoadFromEnv()

	userSvc := &userUC.Service{Repo: userRepo, Hasher: hasher}
	questionSvc := &quesUC.Service{Repo: questionRepo, Users: userRepo, Cfg: paginationCfg}
	answerSvc := &ansUC.Service{Repo: answerRepo, Questions: questionRepo, Users: userRepo}

	authProvider, err := hauth.NewAccountProvider(userRepo, hasher, 8)
	if err != nil {
		logger.Error("failed to initialize auth provider", slog.Any("error", err))
		os.Exit(1)
	}
	authService := authservice.NewService(authProvider)

	mux := http.NewServeMux()

	mux.Handle("POST   /auth/token", hauth.TokenHandler(authService, hauth.TokenTTL(logger)))

	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	huser.Register(mux, userSvc)
	hquestion.Register(mux, questionSvc, answerSvc, paginationCfg, logger)
	hanswer.Register(mux, answerSvc)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID, Tracing, Recovery, Logging,
// Body Size Limit, Metrics. Authentication is applied per-route.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	middlewareChain := handler

	// Apply in reverse order (innermost to outermost)
	middlewareChain = hhttp.MetricsMiddleware(middlewareChain)
	middlewareChain = hhttp.LimitRequestBody(1 << 20)(middlewareChain) // 1MB limit
	middlewareChain = hhttp.Logging(logger)(middlewareChain)
	middlewareChain = hhttp.Recover(logger)(middlewareChain)
	middlewareChain = tracing.Middleware(middlewareChain)
	middlewareChain = requestid.Middleware(middlewareChain)

	return middlewareChain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
