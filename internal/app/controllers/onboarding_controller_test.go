package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

type stubOnboardingService struct {
	status      *dto.OnboardingResponse
	statusErr   error
	completed   []string
	completeErr error
}

func (s *stubOnboardingService) GetStatus(_ context.Context, _ int64) (*dto.OnboardingResponse, error) {
	return s.status, s.statusErr
}

func (s *stubOnboardingService) CompleteStep(_ context.Context, _ int64, step string) (*dto.OnboardingResponse, error) {
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	s.completed = append(s.completed, step)
	return s.status, nil
}

func newOnboardingTestRouter(svc *stubOnboardingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewOnboardingController(svc, zerolog.Nop())

	router := gin.New()
	authed := router.Group("", func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Set("username", "tester")
	})
	authed.GET("/onboarding", controller.GetStatus)
	authed.POST("/onboarding/complete-profile", controller.CompleteProfile())
	authed.POST("/onboarding/complete-interests", controller.CompleteInterests())
	authed.POST("/onboarding/complete-goals", controller.CompleteGoals())
	authed.POST("/onboarding/complete-community", controller.CompleteCommunity())
	return router
}

func TestOnboardingGetStatus(t *testing.T) {
	svc := &stubOnboardingService{
		status: &dto.OnboardingResponse{
			ProfileCompleted: true,
			UpdatedAt:        time.Now(),
		},
	}
	router := newOnboardingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/onboarding", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data dto.OnboardingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Data.ProfileCompleted)
	assert.False(t, body.Data.IsCompleted)
}

func TestOnboardingCompleteStepsRouteToIdentifiers(t *testing.T) {
	svc := &stubOnboardingService{status: &dto.OnboardingResponse{}}
	router := newOnboardingTestRouter(svc)

	for _, path := range []string{
		"/onboarding/complete-profile",
		"/onboarding/complete-interests",
		"/onboarding/complete-goals",
		"/onboarding/complete-community",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code, path)
	}

	assert.Equal(t, []string{"profile", "interests", "goals", "community"}, svc.completed)
}

func TestOnboardingGetStatusNotFound(t *testing.T) {
	svc := &stubOnboardingService{statusErr: apperrors.ErrResourceNotFound}
	router := newOnboardingTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/onboarding", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
