package server

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	apperrors "guildboard/internal/errors"
	"guildboard/internal/feature"
)

// handleFeatureUpdateAPI is the JSON variant of the settings submit. The body
// must match {channel?: string, message: string} exactly; unknown fields and
// wrong types are validation errors, raised before the controller is called.
func (s *Server) handleFeatureUpdateAPI(c echo.Context) error {
	guildID := c.Param("guild")

	if _, err := s.authorizeGuild(c, guildID); err != nil {
		return err
	}

	var in feature.UpdateInput
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return apperrors.ValidationError("request body does not match the expected schema").
			WithContext("detail", err.Error())
	}

	updated, err := s.features.Update(c.Request().Context(), guildID, in)
	if err != nil {
		return err
	}

	return c.JSON(200, map[string]any{"updated": updated})
}
