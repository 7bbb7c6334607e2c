package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/eventosya/marketplace-api/pkg/apperror"
)

// ErrorBody is the wire shape of every error response: an error string plus
// an optional details array for validation failures.
type ErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// RespondError maps err to its HTTP status and writes the error body.
// AppErrors keep their status and details; anything else is a 500.
func RespondError(c *gin.Context, err error) {
	if appErr := apperror.From(err); appErr != nil {
		c.JSON(appErr.Status, ErrorBody{Error: appErr.Message, Details: appErr.Details})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

// RespondValidationError writes a 400 with per-field details extracted from
// gin binding / validator errors.
func RespondValidationError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   message,
		Details: ValidationDetails(err),
	})
}

// ValidationDetails flattens validator errors into human-readable strings.
func ValidationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("field '%s' failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			details = append(details, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
		}
	}
	return details
}
