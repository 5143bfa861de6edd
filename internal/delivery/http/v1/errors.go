package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// abortWithValidationError rejects the request with 422 and a list of
// field-level errors, so clients see which part of the body was bad.
func abortWithValidationError(c *gin.Context, err error) {
	var fieldErrors []fieldError

	var validationErrors validator.ValidationErrors
	var dateErr *dateError
	switch {
	case errors.As(err, &validationErrors):
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, fieldError{
				Field:   fe.Field(),
				Message: validationErrorMessage(fe),
			})
		}
	case errors.As(err, &dateErr):
		fieldErrors = append(fieldErrors, fieldError{
			Field:   "due_date",
			Message: dateErr.Error(),
		})
	default:
		fieldErrors = append(fieldErrors, fieldError{
			Field:   "body",
			Message: errInvalidRequestBody.Error(),
		})
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
}

func validationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	case "required":
		return "is required"
	default:
		return "failed '" + fe.Tag() + "' validation"
	}
}
