package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

const oauthTimeout = 10 * time.Second

func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate OAuth state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *Server) handleLoginPage(c echo.Context) error {
	state, err := generateOAuthState()
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to generate OAuth state", "error", err)
		return c.String(500, "Internal error")
	}

	session, _ := s.sessionStore.Get(c.Request(), sessionName)
	session.Values[sessionKeyOAuthState] = state
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to save OAuth state session", "error", err)
		return c.String(500, "Internal error")
	}

	data := map[string]any{
		"DiscordAuthURL": s.oauth.AuthCodeURL(state),
	}
	return s.renderTemplate(c, "login.html", data)
}

func (s *Server) handleOAuthCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.String(400, "Missing code parameter")
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return c.String(400, "Invalid session")
	}
	expectedState, ok := session.Values[sessionKeyOAuthState].(string)
	if !ok || expectedState == "" {
		return c.String(400, "Missing OAuth state")
	}
	if c.QueryParam("state") != expectedState {
		return c.String(400, "Invalid OAuth state")
	}
	delete(session.Values, sessionKeyOAuthState)

	ctx, cancel := context.WithTimeout(c.Request().Context(), oauthTimeout)
	defer cancel()

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to exchange OAuth code", "error", err)
		return c.String(500, "Failed to authenticate with Discord")
	}

	user, err := s.directory.FetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to fetch user info after login", "error", err)
		return c.String(500, "Failed to authenticate with Discord")
	}

	session.Values[sessionKeyToken] = token.AccessToken
	session.Values[sessionKeyUserID] = user.ID
	session.Values[sessionKeyUsername] = user.Username
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to save session", "error", err)
		return c.String(500, "Internal error")
	}

	slog.InfoContext(c.Request().Context(), "User logged in", "user_id", user.ID, "username", user.Username)
	return c.Redirect(302, "/dashboard")
}

func (s *Server) handleLogout(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err == nil {
		session.Options.MaxAge = -1
		_ = session.Save(c.Request(), c.Response().Writer)
	}
	return c.Redirect(302, "/auth/login")
}
