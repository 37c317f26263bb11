package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	err := NotFound("User not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidState))

	wrapped := fmt.Errorf("mark attendance: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Kind]int{
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindInvalidState: http.StatusBadRequest,
		KindValidation:   http.StatusBadRequest,
		KindConflict:     http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range tests {
		assert.Equal(t, want, HTTPStatus(kind))
	}
}

func TestPublicMessageHidesInternals(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.3:27017")
	err := Internal("load employee", cause)

	assert.Equal(t, "Server error", PublicMessage(err))
	assert.Equal(t, "Server error", PublicMessage(cause))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "User is suspended", PublicMessage(InvalidState("User is suspended")))
}
