package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   dto.ErrorCode
	}{
		{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrCommunityNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrPostNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrMeetingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrNotCommunityMember, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrNotMeetingMentor, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{apperrors.ErrUsernameAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrMentorProfileExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrInvalidMeetingStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{fmt.Errorf("some unexpected failure"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, recorder.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, string(tc.code), string(body.Error.Code))
		})
	}
}

func TestHandleAPIErrorWrappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, fmt.Errorf("%w: username too short", apperrors.ErrValidationFailed))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "username too short")
}
