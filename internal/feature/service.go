package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"guildboard/internal/domain"
	apperrors "guildboard/internal/errors"
	"guildboard/internal/metrics"
)

// Key identifies the welcome message feature in view cache keys and routes.
const Key = "welcome-message"

// UpdateInput is the exact submitted-form contract of the update operation.
// Channel, when present, must be a syntactically valid snowflake; Message is
// required. Anything else fails validation before reaching the store.
type UpdateInput struct {
	Channel *string `json:"channel" validate:"omitempty,snowflake"`
	Message string  `json:"message" validate:"required"`
}

// Service is the stateless feature lifecycle controller. Each operation takes
// the guild ID explicitly; the store mutation completes before the view
// invalidation fires.
type Service struct {
	features domain.FeatureRepository
	views    domain.ViewInvalidator
	validate *validator.Validate
}

// NewService creates the lifecycle controller.
func NewService(features domain.FeatureRepository, views domain.ViewInvalidator) *Service {
	v := validator.New()
	// Snowflakes are decimal strings of up to 20 digits.
	_ = v.RegisterValidation("snowflake", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) == 0 || len(s) > 20 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &Service{
		features: features,
		views:    views,
		validate: v,
	}
}

// Get returns the guild's feature record, or domain.ErrFeatureNotFound when
// the feature is disabled.
func (s *Service) Get(ctx context.Context, guildID string) (*domain.WelcomeFeature, error) {
	return s.features.Find(ctx, guildID)
}

// Enable creates the guild's feature record with the default message and no
// channel. Enabling an already enabled guild fails with
// domain.ErrFeatureAlreadyEnabled; it is not idempotent.
func (s *Service) Enable(ctx context.Context, guildID string) (*domain.WelcomeFeature, error) {
	feature, err := s.features.Create(ctx, guildID)
	if err != nil {
		metrics.FeatureOpsTotal.WithLabelValues("enable", "error").Inc()
		return nil, err
	}
	metrics.FeatureOpsTotal.WithLabelValues("enable", "ok").Inc()

	if err := s.invalidateView(ctx, guildID); err != nil {
		return nil, err
	}
	return feature, nil
}

// Disable deletes the guild's feature record. Disabling a guild without a
// record succeeds as a zero-row no-op.
func (s *Service) Disable(ctx context.Context, guildID string) (int64, error) {
	deleted, err := s.features.DeleteAll(ctx, guildID)
	if err != nil {
		metrics.FeatureOpsTotal.WithLabelValues("disable", "error").Inc()
		return 0, err
	}
	metrics.FeatureOpsTotal.WithLabelValues("disable", "ok").Inc()

	if err := s.invalidateView(ctx, guildID); err != nil {
		return deleted, err
	}
	return deleted, nil
}

// Update validates in and overwrites the message and channel of the guild's
// existing record. A guild without a record is a zero-row no-op; Update never
// creates one. Validation failures surface before any store call.
func (s *Service) Update(ctx context.Context, guildID string, in UpdateInput) (int64, error) {
	if err := s.validateInput(in); err != nil {
		metrics.FeatureOpsTotal.WithLabelValues("update", "invalid").Inc()
		return 0, err
	}

	updated, err := s.features.UpdateAll(ctx, guildID, domain.FeaturePatch{
		Message:   in.Message,
		ChannelID: in.Channel,
	})
	if err != nil {
		metrics.FeatureOpsTotal.WithLabelValues("update", "error").Inc()
		return 0, err
	}
	metrics.FeatureOpsTotal.WithLabelValues("update", "ok").Inc()

	if err := s.invalidateView(ctx, guildID); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *Service) validateInput(in UpdateInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		switch field {
		case "Message":
			return apperrors.ValidationError("message is required").WithContext("field", "message")
		case "Channel":
			return apperrors.ValidationError("channel must be a valid channel ID").WithContext("field", "channel")
		}
	}
	return apperrors.ValidationError("invalid input")
}

func (s *Service) invalidateView(ctx context.Context, guildID string) error {
	if err := s.views.InvalidateView(ctx, guildID, Key); err != nil {
		return fmt.Errorf("view invalidation for guild %s failed: %w", guildID, err)
	}
	metrics.ViewCacheInvalidations.Inc()
	return nil
}
