package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Root - redirect to dashboard
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(302, "/dashboard")
	})

	// Auth routes
	s.echo.GET("/auth/login", s.handleLoginPage)
	s.echo.GET("/auth/callback", s.handleOAuthCallback)
	s.echo.POST("/auth/logout", s.handleLogout, s.requireAuth)

	// Dashboard (authenticated)
	s.echo.GET("/dashboard", s.handleGuildList, s.requireAuth)
	s.echo.GET("/dashboard/:guild/features/welcome-message", s.handleFeaturePage, s.requireAuth)
	s.echo.POST("/dashboard/:guild/features/welcome-message/enable", s.handleFeatureEnable, s.requireAuth)
	s.echo.POST("/dashboard/:guild/features/welcome-message/disable", s.handleFeatureDisable, s.requireAuth)
	s.echo.POST("/dashboard/:guild/features/welcome-message", s.handleFeatureSubmit, s.requireAuth)

	// JSON API (authenticated)
	s.echo.PUT("/api/guilds/:guild/features/welcome-message", s.handleFeatureUpdateAPI, s.requireAuth)
}
