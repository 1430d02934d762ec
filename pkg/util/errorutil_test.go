package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDomainError_Statuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NewValidationError("bad input", nil), http.StatusBadRequest, "VALIDATION_FAILED"},
		{NewConflict("exists", nil), http.StatusBadRequest, "CONFLICT"},
		{NewUnauthorized("who are you"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbidden("not yours"), http.StatusForbidden, "FORBIDDEN"},
		{NewNotFound("Trip", nil), http.StatusNotFound, "NOT_FOUND"},
		{NewInternalError(errors.New("db down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		var domainErr *DomainError
		require.ErrorAs(t, tc.err, &domainErr)
		assert.Equal(t, tc.status, domainErr.HTTPStatus, domainErr.Code)
		assert.Equal(t, tc.code, domainErr.Code)
	}
}

func TestNewNotFound_Message(t *testing.T) {
	t.Parallel()

	err := NewNotFound("Trip", nil)
	assert.Equal(t, "Trip not found", err.Error())
}

func TestToDomainError_PassThrough(t *testing.T) {
	t.Parallel()

	original := NewForbidden("nope")
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
	assert.Equal(t, "nope", mapped.Message)
}

func TestToDomainError_MongoNoDocuments(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(mongo.ErrNoDocuments)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_DuplicateKey(t *testing.T) {
	t.Parallel()

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	mapped := ToDomainError(dup)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "CONFLICT", mapped.Code)
}

func TestToDomainError_OpaqueInternal(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(errors.New("connection reset by peer"))
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// Store detail never leaks into the client-facing message.
	assert.Equal(t, "Server Error", mapped.Message)
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainError(nil))
}
