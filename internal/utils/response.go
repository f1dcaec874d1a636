package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusmarket/internal/apperrors"
	"campusmarket/pkg/logger"
)

type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    interface{}     `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details []FieldError    `json:"details,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessResponseWithMeta(c *gin.Context, message string, data interface{}, meta *PaginationMeta) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func ValidationErrorResponse(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   string(apperrors.KindValidation),
		Message: ErrValidationFailed,
		Details: details,
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, string(apperrors.KindValidation), message)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternalServer)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", ErrUnauthorized)
}

func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", ErrForbidden)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, string(apperrors.KindNotFound), resource+" not found")
}

// AppErrorResponse writes err using its apperrors Kind. Store failures are
// logged and answered with a generic message.
func AppErrorResponse(c *gin.Context, log *logger.Logger, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperrors.KindStore {
		if log != nil {
			log.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		}
		InternalServerErrorResponse(c)
		return
	}
	ErrorResponse(c, appErr.StatusCode(), string(appErr.Kind), appErr.Message)
}
