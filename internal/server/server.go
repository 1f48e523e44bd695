package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/solvekit/numerics/internal/api/http"
	"github.com/solvekit/numerics/internal/api/middleware"
	"github.com/solvekit/numerics/internal/infrastructure/config"
	"github.com/solvekit/numerics/internal/infrastructure/logging"
	"github.com/solvekit/numerics/internal/infrastructure/monitoring"
	"github.com/solvekit/numerics/internal/linalg"
	linalgprovider "github.com/solvekit/numerics/internal/providers/linalg"
	"github.com/solvekit/numerics/internal/service"
	"github.com/solvekit/numerics/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewDefault()
	}

	metrics := monitoring.NewMetrics()
	serviceRegistry := service.NewRegistry()

	eng := linalg.New(linalg.Config{
		Tolerance:         cfg.Engine.Tolerance,
		MaxIterations:     cfg.Engine.MaxIterations,
		StrassenThreshold: cfg.Engine.StrassenThreshold,
	})

	logger.Info("registering service providers")
	if err := serviceRegistry.Register(linalgprovider.NewProvider(eng, metrics)); err != nil {
		return nil, err
	}
	logger.Info("registered provider",
		zap.String("service", "linalg"),
		zap.Float64("tolerance", cfg.Engine.Tolerance),
		zap.Int("max_iterations", cfg.Engine.MaxIterations),
		zap.Int("strassen_threshold", cfg.Engine.StrassenThreshold),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(serviceRegistry, metrics)
	wsHandler := ws.NewHandler(serviceRegistry, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Observability
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	return &Server{
		router:   router,
		registry: serviceRegistry,
		metrics:  metrics,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("starting numerics service", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.httpSrv.Shutdown(ctx)
}

// Router exposes the underlying router, for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
