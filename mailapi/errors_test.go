package mailapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesForStatus(t *testing.T) {
	for _, status := range ErrorStatuses {
		assert.NotEmpty(t, TypesForStatus(status), "status %d", status)
	}
	assert.Nil(t, TypesForStatus(http.StatusOK))
	assert.Equal(t, []ErrorType{FailedPrecondition, ResourceAlreadyExists}, TypesForStatus(422))
}

func TestError(t *testing.T) {
	t.Run("sentinels", func(t *testing.T) {
		notFound := NewError(404, ErrorBody{Type: InvalidRequestError, Message: "no such brand", Code: CodeResourceMissing})
		wrapped := fmt.Errorf("get brand: %w", notFound)
		assert.ErrorIs(t, wrapped, ErrNotFound)
		assert.NotErrorIs(t, wrapped, ErrInvalidRequest)
		assert.False(t, notFound.Temporary())

		conflict := NewError(422, ErrorBody{Type: ResourceAlreadyExists, Message: "field key taken"})
		assert.ErrorIs(t, conflict, ErrConflict)
		assert.NotErrorIs(t, conflict, ErrPrecondition)

		pre := NewPreconditionError(PreconditionBody{Preconditions: []string{"a", "b"}})
		assert.ErrorIs(t, pre, ErrPrecondition)
		assert.Equal(t, "a; b", pre.Message)
	})

	t.Run("temporary", func(t *testing.T) {
		for status, want := range map[int]bool{400: false, 401: false, 429: true, 500: true, 502: true, 503: true, 504: true} {
			err := &Error{Status: status}
			assert.Equal(t, want, err.Temporary(), "status %d", status)
		}

		var apiErr *Error
		assert.True(t, errors.As(fmt.Errorf("x: %w", &Error{Status: 503, Type: ServerError}), &apiErr))
		assert.ErrorIs(t, apiErr, ErrServer)
	})

	t.Run("message", func(t *testing.T) {
		err := NewError(400, ErrorBody{Type: InvalidRequestError, Message: "out of range", Param: "bounce_danger_percent"})
		assert.Equal(t, "400 invalid_request_error: out of range [param bounce_danger_percent]", err.Error())
	})
}
