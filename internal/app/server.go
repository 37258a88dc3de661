// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"customer-registration-service/internal/config"
	"customer-registration-service/internal/db"
	"customer-registration-service/internal/domain/customer"
	customerHandler "customer-registration-service/internal/handlers/customer"
	"customer-registration-service/internal/middleware"
	"customer-registration-service/internal/repository/cache"
	"customer-registration-service/internal/repository/memory"
	"customer-registration-service/internal/repository/postgres"
	customersvc "customer-registration-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg     config.AppConfig
	engine  *gin.Engine
	logger  *zap.Logger
	http    *http.Server
	closers []func()
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	return &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
		http:   &http.Server{Addr: cfg.HTTPAddr, Handler: engine},
	}
}

// NewLogger builds the zap logger matching the configured environment.
func NewLogger(cfg config.AppConfig) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Setup connects the backing stores and registers routes.
func (s *Server) Setup(ctx context.Context) error {
	// ----- Store -----
	store, err := s.buildStore(ctx)
	if err != nil {
		return err
	}

	// ----- Services -----
	registrationService := customersvc.NewRegistrationService(store, s.logger)

	// ----- Handlers -----
	handlers := &Handlers{
		CustomerHandler: customerHandler.NewCustomerHandler(registrationService),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestID(),
		middleware.LoggingMiddleware(s.logger),
		middleware.RecoveryMiddleware(s.logger),
	)

	SetupRouter(s.engine, handlers)

	return nil
}

func (s *Server) buildStore(ctx context.Context) (customer.Store, error) {
	var store customer.Store

	switch s.cfg.StoreDriver {
	case config.StoreDriverMemory:
		s.logger.Warn("using in-memory customer store, data is lost on restart")
		store = memory.NewCustomerRepository()

	case config.StoreDriverPostgres:
		pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		s.closers = append(s.closers, pool.Close)

		if err := postgres.EnsureSchema(ctx, pool, s.cfg.CustomersTable); err != nil {
			return nil, err
		}
		s.logger.Info("connected to PostgreSQL", zap.String("table", s.cfg.CustomersTable))
		store = postgres.NewCustomerRepository(pool, s.cfg.CustomersTable)

	default:
		return nil, fmt.Errorf("unknown store driver %q", s.cfg.StoreDriver)
	}

	if !s.cfg.CacheEnabled() {
		return store, nil
	}

	redisClient, err := db.NewRedisClient(ctx, db.RedisConfig{
		Address:  s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func() { _ = redisClient.Close() })
	s.logger.Info("connected to Redis", zap.String("addr", s.cfg.RedisAddr))

	return cache.NewCustomerCache(store, redisClient, s.cfg.CacheTTL, s.logger), nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the backing connections.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	return err
}
