package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/middleware"
)

// OnboardingController handles the onboarding checklist
type OnboardingController struct {
	onboardingService services.OnboardingService
	logger            zerolog.Logger
}

// NewOnboardingController creates a new OnboardingController
func NewOnboardingController(onboardingService services.OnboardingService, logger zerolog.Logger) *OnboardingController {
	return &OnboardingController{
		onboardingService: onboardingService,
		logger:            logger,
	}
}

// GetStatus returns the requester's onboarding checklist
// @Summary Get onboarding status
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OnboardingResponse}
// @Router /onboarding [get]
func (c *OnboardingController) GetStatus(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.onboardingService.GetStatus(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// completeStep builds a handler that marks one onboarding milestone done
func (c *OnboardingController) completeStep(step string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, _ := middleware.GetUserID(ctx)

		resp, err := c.onboardingService.CompleteStep(ctx.Request.Context(), userID, step)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
	}
}

// CompleteProfile marks the profile milestone done
// @Summary Complete the profile step
// @Description Marks the profile milestone done; completing a step twice has no effect and no step can be undone
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OnboardingResponse}
// @Router /onboarding/complete-profile [post]
func (c *OnboardingController) CompleteProfile() gin.HandlerFunc {
	return c.completeStep(services.OnboardingStepProfile)
}

// CompleteInterests marks the interests milestone done
// @Summary Complete the interests step
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OnboardingResponse}
// @Router /onboarding/complete-interests [post]
func (c *OnboardingController) CompleteInterests() gin.HandlerFunc {
	return c.completeStep(services.OnboardingStepInterests)
}

// CompleteGoals marks the goals milestone done
// @Summary Complete the goals step
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OnboardingResponse}
// @Router /onboarding/complete-goals [post]
func (c *OnboardingController) CompleteGoals() gin.HandlerFunc {
	return c.completeStep(services.OnboardingStepGoals)
}

// CompleteCommunity marks the community milestone done
// @Summary Complete the community step
// @Tags onboarding
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OnboardingResponse}
// @Router /onboarding/complete-community [post]
func (c *OnboardingController) CompleteCommunity() gin.HandlerFunc {
	return c.completeStep(services.OnboardingStepCommunity)
}
