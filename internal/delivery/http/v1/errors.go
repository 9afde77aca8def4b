package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-weeklist/internal/services"
	"github.com/adanyl0v/go-weeklist/internal/weeklist"
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
	c.AbortWithStatusJSON(err.Code, gin.H{
		"success": false,
		"message": err.Message,
	})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// fromServiceError maps use-case failures onto status-carrying errors:
// missing entities to 404, lifecycle and validation rejections to 400,
// anything unexpected to a bare 500.
func fromServiceError(err error) apiError {
	var validationErr *weeklist.ValidationError
	switch {
	case errors.Is(err, services.ErrWeeklistNotFound),
		errors.Is(err, services.ErrNoActiveWeeklists),
		errors.Is(err, weeklist.ErrTaskNotFound):
		return newNotFoundError(err.Error())
	case errors.Is(err, weeklist.ErrNotActive),
		errors.Is(err, weeklist.ErrEditWindowClosed),
		errors.Is(err, services.ErrActiveWeeklistLimit):
		return newBadRequestError(err.Error())
	case errors.As(err, &validationErr):
		return newBadRequestError(validationErr.Error())
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
