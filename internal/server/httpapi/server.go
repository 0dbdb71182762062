// Package httpapi exposes the public HTTP surface: registration, login, and
// the PIX resource behind the bearer auth gate.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/pixgate/internal/logging"
	"github.com/dmitrijs2005/pixgate/internal/server/config"
	"github.com/dmitrijs2005/pixgate/internal/server/payment"
	"github.com/dmitrijs2005/pixgate/internal/server/users"
)

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *users.Service
	payment *payment.Service
	cfg     *config.Config
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *users.Service, ps *payment.Service) *HTTPServer {
	return &HTTPServer{
		address: cfg.EndpointAddr,
		logger:  l.With("module", "http_server"),
		users:   us,
		payment: ps,
		cfg:     cfg,
	}
}

// Router builds the gin engine with CORS and all routes. Split out from Run
// so tests can drive it through httptest without binding a socket.
func (s *HTTPServer) Router() *gin.Engine {
	gin.SetMode(s.cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// Credentialed cross-origin calls are accepted only from the configured
	// origin allow-list.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/", s.handleRoot)
	router.POST("/register", s.handleRegister)
	router.POST("/login", s.handleLogin)
	router.GET("/pix", s.RequireAuth(), s.handlePix)

	return router
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address, "mode", s.cfg.GinMode)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
