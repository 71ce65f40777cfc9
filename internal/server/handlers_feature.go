package server

import (
	"errors"

	"github.com/labstack/echo/v4"

	"guildboard/internal/discord"
	"guildboard/internal/domain"
	apperrors "guildboard/internal/errors"
	"guildboard/internal/feature"
)

// handleFeaturePage renders the welcome message page: an enable prompt when
// the feature is off, otherwise the settings form. Renders are cached per
// guild until a mutation invalidates them.
func (s *Server) handleFeaturePage(c echo.Context) error {
	ctx := c.Request().Context()
	guildID := c.Param("guild")

	guild, err := s.authorizeGuild(c, guildID)
	if err != nil {
		return err
	}

	if html, ok := s.views.Get(ctx, guildID, feature.Key); ok {
		return c.HTML(200, html)
	}

	feat, err := s.features.Get(ctx, guildID)
	if err != nil && !errors.Is(err, domain.ErrFeatureNotFound) {
		return err
	}

	var html string
	if feat == nil {
		html, err = s.renderPage("feature_disabled.html", map[string]any{
			"Guild": guild,
		})
	} else {
		// The upstream list is unfiltered; only text channels are valid
		// welcome targets.
		channels, chErr := s.directory.FetchGuildChannels(ctx, guildID)
		if chErr != nil {
			return chErr
		}

		var selected string
		if feat.ChannelID != nil {
			selected = *feat.ChannelID
		}
		html, err = s.renderPage("feature.html", map[string]any{
			"Guild":    guild,
			"Message":  feat.Message,
			"Channels": discord.TextChannels(channels),
			"Selected": selected,
		})
	}
	if err != nil {
		return apperrors.InternalError("failed to render feature page", err)
	}

	s.views.Set(ctx, guildID, feature.Key, html)
	return c.HTML(200, html)
}

func (s *Server) handleFeatureEnable(c echo.Context) error {
	guildID := c.Param("guild")

	if _, err := s.authorizeGuild(c, guildID); err != nil {
		return err
	}

	if _, err := s.features.Enable(c.Request().Context(), guildID); err != nil {
		if errors.Is(err, domain.ErrFeatureAlreadyEnabled) {
			return apperrors.ConflictError("welcome message is already enabled").
				WithContext("guild_id", guildID)
		}
		return err
	}

	return c.Redirect(303, featurePath(guildID))
}

func (s *Server) handleFeatureDisable(c echo.Context) error {
	guildID := c.Param("guild")

	if _, err := s.authorizeGuild(c, guildID); err != nil {
		return err
	}

	// Disabling an already disabled feature is a no-op, not an error.
	if _, err := s.features.Disable(c.Request().Context(), guildID); err != nil {
		return err
	}

	return c.Redirect(303, featurePath(guildID))
}

// handleFeatureSubmit handles the settings form post.
func (s *Server) handleFeatureSubmit(c echo.Context) error {
	guildID := c.Param("guild")

	if _, err := s.authorizeGuild(c, guildID); err != nil {
		return err
	}

	in := feature.UpdateInput{Message: c.FormValue("message")}
	if channel := c.FormValue("channel"); channel != "" {
		in.Channel = &channel
	}

	if _, err := s.features.Update(c.Request().Context(), guildID, in); err != nil {
		return err
	}

	return c.Redirect(303, featurePath(guildID))
}

func featurePath(guildID string) string {
	return "/dashboard/" + guildID + "/features/welcome-message"
}
