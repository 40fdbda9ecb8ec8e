package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	. "userapp/internal/adapter/http/validation"
	"userapp/internal/core/domain"
	"userapp/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendList[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, response.ListResponse{
		Size: len(data),
		Data: data,
	})
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errors := []response.ValidationError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors, details...)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errors)
}

// SendStoreError maps a service error onto the response taxonomy:
// validation 400, not found 404, anything else 500. The store message is
// not echoed to the client.
func SendStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		SendBadRequestError(c, "request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		SendNotFoundError(c, err.Error())
	default:
		_ = c.Error(err)
		SendInternalError(c, "store unavailable")
	}
}
