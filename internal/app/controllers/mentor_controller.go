package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/middleware"
)

// MentorController handles the mentor directory
type MentorController struct {
	mentorService services.MentorService
	logger        zerolog.Logger
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService, logger zerolog.Logger) *MentorController {
	return &MentorController{
		mentorService: mentorService,
		logger:        logger,
	}
}

// ListMentors lists all mentor directory entries
// @Summary List mentors
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorResponse}
// @Router /mentors [get]
func (c *MentorController) ListMentors(ctx *gin.Context) {
	resp, err := c.mentorService.ListMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// RegisterMentor puts the requester in the mentor directory
// @Summary Register as a mentor
// @Description Registers the requester in the mentor directory; a user can register at most once
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorProfileRequest true "Mentor profile data"
// @Success 201 {object} dto.APIResponse{data=dto.MentorResponse}
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /mentors [post]
func (c *MentorController) RegisterMentor(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateMentorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.mentorService.RegisterMentor(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}
