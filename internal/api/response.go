package api

import (
	"errors"
	"net/http"

	"accstore-be/internal/category"
	"accstore-be/internal/checkout"
	"accstore-be/internal/item"
	"accstore-be/internal/logger"
	"accstore-be/internal/order"
	"accstore-be/internal/page"
	"accstore-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors onto HTTP statuses. Anything unmapped is
// a 500 with a generic body; details stay in the log.
func respondError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
		return
	}

	switch {
	case errors.Is(err, checkout.ErrIdentityRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, user.ErrInvalidLanguage),
		errors.Is(err, category.ErrEmptyID),
		errors.Is(err, category.ErrEmptyLabel),
		errors.Is(err, category.ErrEmptyCategoryID),
		errors.Is(err, item.ErrEmptyID),
		errors.Is(err, item.ErrEmptyName),
		errors.Is(err, item.ErrInvalidPrice),
		errors.Is(err, page.ErrEmptyID),
		errors.Is(err, page.ErrEmptyTitle),
		errors.Is(err, page.ErrInvalidContentType),
		errors.Is(err, page.ErrInvalidFAQ):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, category.ErrSubcategoryNotFound),
		errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, page.ErrPageNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
