package handlers

import (
	"context"
	"errors"
	"net/http"

	"release-management-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

var validationErrors = []error{
	domain.ErrInvalidRequest,
	domain.ErrInvalidID,
	domain.ErrLanguageCodeRequired,
	domain.ErrSameLanguageCodes,
	domain.ErrLangPairRequired,
	domain.ErrVersionNameRequired,
	domain.ErrVersionRequired,
	domain.ErrTestsetRequired,
	domain.ErrTestsetNameRequired,
	domain.ErrInvalidFileType,
	domain.ErrInvalidOutputType,
	domain.ErrBLEUOutOfRange,
	domain.ErrCOMETOutOfRange,
	domain.ErrTitleRequired,
	domain.ErrContentRequired,
	domain.ErrScoreOutOfRange,
	domain.ErrChangePercentRange,
	domain.ErrNegativeTestCases,
	domain.ErrEmptySelection,
	domain.ErrInvalidDateRange,
	domain.ErrDateRangeRequired,
	domain.ErrCredentialsRequired,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// mapDomainError writes the response for err. Backend errors keep the
// backend's own detail message.
func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Auth errors
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors; timeouts are also wrapped as unavailable, so test them first
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "backend request timed out"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
