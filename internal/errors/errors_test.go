package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "solution"}
	assert.Equal(t, "solution not found", err.Error())

	assert.True(t, errors.Is(err, ErrSolutionNotFound))
	assert.False(t, errors.Is(err, ErrOrganizationNotFound))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestAlreadyExistsError(t *testing.T) {
	withContext := &AlreadyExistsError{Entity: "assignment", Context: "for this person and event"}
	assert.Equal(t, "assignment already exists for this person and event", withContext.Error())

	bare := &AlreadyExistsError{Entity: "organization"}
	assert.Equal(t, "organization already exists", bare.Error())

	assert.True(t, errors.Is(withContext, ErrAssignmentExists))
	assert.True(t, IsAlreadyExists(withContext))
	assert.False(t, IsAlreadyExists(errors.New("plain")))
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("from_date", "must not be after to_date")
	assert.Equal(t, "validation error: from_date - must not be after to_date", withField.Error())

	noField := &ValidationError{Message: "bad request"}
	assert.Equal(t, "validation error: bad request", noField.Error())

	assert.True(t, IsValidation(withField))
	assert.True(t, IsValidation(fmt.Errorf("solve rejected: %w", withField)))
	assert.False(t, IsValidation(ErrInvalidDateRange))
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError("solution save", cause)

	assert.Contains(t, err.Error(), "solution save")
	assert.True(t, IsPersistence(err))
	assert.True(t, errors.Is(err, cause), "wrapped cause must stay reachable")
}

func TestErrorClassifiersAreDisjoint(t *testing.T) {
	notFound := NewNotFoundError("event")
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsAlreadyExists(notFound))
	assert.False(t, IsValidation(notFound))
	assert.False(t, IsPersistence(notFound))
}
