package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// for every non-nil service error.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 404
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrReceiverNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Receiver not found")
	case errors.Is(err, apperrors.ErrCommunityNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Community not found")
	case errors.Is(err, apperrors.ErrPostNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Post not found")
	case errors.Is(err, apperrors.ErrCommentNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Comment not found")
	case errors.Is(err, apperrors.ErrMeetingNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Meeting not found")
	case errors.Is(err, apperrors.ErrMentorProfileNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Mentor profile not found")
	case errors.Is(err, apperrors.ErrMessageNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Message not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, "Resource not found")

	// 403
	case errors.Is(err, apperrors.ErrNotCommunityMember):
		respondError(c, 403, dto.ErrorCodeForbidden, "You must be a member of this community")
	case errors.Is(err, apperrors.ErrNotMeetingMentor):
		respondError(c, 403, dto.ErrorCodeForbidden, "Only the meeting mentor can do this")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, 403, dto.ErrorCodeForbidden, "Permission denied")

	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, 401, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, 401, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, 401, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, 401, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, 401, dto.ErrorCodeInvalidToken, "Invalid token")

	// 409
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrMentorProfileExists):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, "Mentor profile already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.ErrorCodeConflict, "Conflict")

	// 400
	case errors.Is(err, apperrors.ErrInvalidMeetingStatus):
		respondError(c, 400, dto.ErrorCodeValidationFailed, "Invalid meeting status")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondErrorWithDetails(c, 400, dto.ErrorCodeValidationFailed, "Validation failed", err)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondErrorWithDetails(c, 400, dto.ErrorCodeValidationFailed, "Bad request", err)

	default:
		respondError(c, 500, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{Error: dto.NewErrorDetail(code, message)})
}

func respondErrorWithDetails(c *gin.Context, status int, code dto.ErrorCode, message string, err error) {
	c.JSON(status, dto.APIResponse{Error: dto.NewErrorDetail(code, message).WithDetails(err.Error())})
}
