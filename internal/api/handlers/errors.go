package handlers

import (
	"errors"
	"net/http"

	apperrors "volunteer-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// badRequestErrs are business-rule rejections that are the caller's fault.
var badRequestErrs = []error{
	apperrors.ErrInvalidDateRange,
	apperrors.ErrInvalidTimeRange,
	apperrors.ErrNoEventsInRange,
	apperrors.ErrInvalidSolveMode,
	apperrors.ErrInvalidToggleAction,
	apperrors.ErrNegativeRoleCount,
	apperrors.ErrPersonDeactivated,
}

// respondError maps a service error onto an HTTP status: request faults 400,
// missing entities 404, duplicates 409 and everything else a 500 with the
// fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

func isBadRequest(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return true
	}
	for _, sentinel := range badRequestErrs {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
