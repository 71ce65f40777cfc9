package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus_Mapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError("bad").HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, AuthError("nope").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NotFoundError("gone").HTTPStatus())
	assert.Equal(t, http.StatusConflict, ConflictError("dup").HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, UpstreamError("api", nil).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, InternalError("boom", nil).HTTPStatus())
}

func TestError_MessageFormatting(t *testing.T) {
	plain := ValidationError("message is required")
	assert.Equal(t, "validation: message is required", plain.Error())

	withCause := UpstreamError("guild fetch failed", errors.New("503 from upstream"))
	assert.Equal(t, "upstream: guild fetch failed: 503 from upstream", withCause.Error())
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError("database unavailable", cause)

	assert.ErrorIs(t, err, cause)
}

func TestWithContext_Chains(t *testing.T) {
	err := ValidationError("channel must be a valid channel ID").
		WithContext("field", "channel").
		WithContext("guild_id", "42")

	assert.Equal(t, "channel", err.Context["field"])
	assert.Equal(t, "42", err.Context["guild_id"])
}

func TestToResponse(t *testing.T) {
	err := ValidationError("message is required").WithContext("field", "message")

	resp := err.ToResponse()
	assert.Equal(t, "message is required", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "message", resp.Context["field"])
}

func TestAsStructuredError_PassThrough(t *testing.T) {
	original := NotFoundError("guild not found")

	got := AsStructuredError(original)
	assert.Same(t, original, got)
}

func TestAsStructuredError_UnwrapsWrapped(t *testing.T) {
	inner := ConflictError("feature already enabled")
	wrapped := fmt.Errorf("enable for guild 42: %w", inner)

	got := AsStructuredError(wrapped)
	assert.Same(t, inner, got)
}

func TestAsStructuredError_WrapsUnknown(t *testing.T) {
	got := AsStructuredError(errors.New("something broke"))

	require.NotNil(t, got)
	assert.Equal(t, TypeInternal, got.Type)
	assert.Equal(t, "internal server error", got.Message)
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}
