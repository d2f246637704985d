package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/priyanshu/opportunity-board/internal/auth"
	"github.com/priyanshu/opportunity-board/internal/catalog"
	"github.com/priyanshu/opportunity-board/internal/source"
)

type Server struct {
	Catalog     *catalog.Catalog
	AuthService *auth.Service
	Echo        *echo.Echo

	// appender is non-nil when the tabular source accepts write-back of
	// accepted submissions.
	appender source.Appender
}

func NewServer(cat *catalog.Catalog, authService *auth.Service, appender source.Appender) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s := &Server{
		Catalog:     cat,
		AuthService: authService,
		Echo:        e,
		appender:    appender,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.GET("/opportunities", s.handleListOpportunities)
	api.GET("/opportunities/:id", s.handleGetOpportunity)
	api.GET("/opportunities/:id/alert", s.handleGetAlert)
	api.GET("/stats", s.handleGetStats)
	api.POST("/opportunities", s.handleSubmitOpportunity)

	api.POST("/auth/login", s.handleLogin)

	admin := api.Group("")
	admin.Use(auth.Middleware)
	admin.POST("/refresh", s.handleRefresh)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
