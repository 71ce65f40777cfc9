package server

import (
	"bytes"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// Session keys
const (
	sessionName          = "guildboard-session"
	sessionKeyToken      = "token"
	sessionKeyUserID     = "user_id"
	sessionKeyUsername   = "username"
	sessionKeyOAuthState = "oauth_state"
)

// renderPage executes a named template into a buffer first so a failed
// execution never sends partial HTML, then returns the rendered bytes.
func (s *Server) renderPage(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderTemplate renders a named template straight to the response.
func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	html, err := s.renderPage(name, data)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Template execution failed",
			"template", name, "path", c.Request().URL.Path, "error", err)
		return c.String(500, "Failed to render page")
	}
	return c.HTML(200, html)
}

// requireAuth redirects to the login page unless the session carries a
// Discord bearer token. The token is stored on the echo context for handlers.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return c.Redirect(302, "/auth/login")
		}

		token, ok := session.Values[sessionKeyToken].(string)
		if !ok || token == "" {
			return c.Redirect(302, "/auth/login")
		}

		c.Set("token", token)
		if username, ok := session.Values[sessionKeyUsername].(string); ok {
			c.Set("username", username)
		}
		return next(c)
	}
}

// sessionToken returns the bearer token requireAuth stored on the context.
func sessionToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
