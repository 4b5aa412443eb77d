package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasibcs/uniadmin/internal/app/models/dto"
	"github.com/nasibcs/uniadmin/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to API responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Faculty not found")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found")
	case errors.Is(err, apperrors.ErrSemesterNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Semester not found")
	case errors.Is(err, apperrors.ErrBookNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Book not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Faculty with this name already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, messageOf(err, "Conflict"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOf(err, "Validation failed"))
	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}

// messageOf surfaces the wrapped CustomError message when one is set,
// falling back to a generic message for bare sentinels.
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
