package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"portfolio-cms/internal/domain/core"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FieldErrors maps request field names to their error messages. It
// satisfies errors.Is(err, core.ErrValidation).
type FieldErrors map[string][]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for k, msgs := range f {
		parts = append(parts, k+": "+strings.Join(msgs, " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool { return target == core.ErrValidation }

// Invalid is a FieldErrors with a single message.
func Invalid(field, msg string) FieldErrors {
	return FieldErrors{field: {msg}}
}

func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func NotFound(c *gin.Context) {
	Detail(c, http.StatusNotFound, "Not found.")
}

// Fail writes the response for err. Anything that is not a known domain
// or store condition is logged and reported as a 500.
func Fail(c *gin.Context, err error) {
	var fields FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, fields)
	case errors.Is(err, ErrInvalidPage):
		Detail(c, http.StatusNotFound, "Invalid page.")
	case errors.Is(err, core.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c)
	case errors.Is(err, core.ErrSingletonExists):
		Detail(c, http.StatusConflict, "Only one instance may exist.")
	case errors.Is(err, core.ErrSingletonUndeletable):
		Detail(c, http.StatusConflict, "This instance cannot be deleted.")
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		Detail(c, http.StatusConflict, "A record with these values already exists.")
	case errors.Is(err, core.ErrCategoryType):
		c.JSON(http.StatusBadRequest, Invalid("categories", "Category type does not match the content type."))
	case errors.Is(err, core.ErrValidation):
		Detail(c, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		Detail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// isUniqueViolation catches unique-index failures that reach us without
// gorm's translation, e.g. from hooks that run their own statements.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
