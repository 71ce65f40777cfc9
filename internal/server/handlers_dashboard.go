package server

import (
	"github.com/labstack/echo/v4"

	"guildboard/internal/discord"
	apperrors "guildboard/internal/errors"
)

type guildView struct {
	ID      string
	Name    string
	IconURL string
}

// handleGuildList renders the guild picker: the guilds where the user can
// manage bot settings.
func (s *Server) handleGuildList(c echo.Context) error {
	ctx := c.Request().Context()

	guilds, err := s.directory.FetchGuilds(ctx, sessionToken(c))
	if err != nil {
		return err
	}

	views := make([]guildView, 0, len(guilds))
	for _, g := range guilds {
		if !g.CanManage() {
			continue
		}
		views = append(views, guildView{
			ID:      g.ID,
			Name:    g.Name,
			IconURL: discord.IconURL(g.ID, g.Icon),
		})
	}

	data := map[string]any{
		"Username": c.Get("username"),
		"Guilds":   views,
	}
	return s.renderTemplate(c, "guilds.html", data)
}

// authorizeGuild checks that the authenticated user can manage the guild and
// returns its list entry. Guilds the user cannot manage look like missing
// guilds on purpose.
func (s *Server) authorizeGuild(c echo.Context, guildID string) (*discord.Guild, error) {
	guilds, err := s.directory.FetchGuilds(c.Request().Context(), sessionToken(c))
	if err != nil {
		return nil, err
	}

	for _, g := range guilds {
		if g.ID == guildID {
			if !g.CanManage() {
				break
			}
			return &g, nil
		}
	}
	return nil, apperrors.NotFoundError("guild not found").WithContext("guild_id", guildID)
}
