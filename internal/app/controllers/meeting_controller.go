package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/middleware"
)

// MeetingController handles meeting scheduling operations
type MeetingController struct {
	meetingService services.MeetingService
	logger         zerolog.Logger
}

// NewMeetingController creates a new MeetingController
func NewMeetingController(meetingService services.MeetingService, logger zerolog.Logger) *MeetingController {
	return &MeetingController{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting schedules a meeting
// @Summary Schedule a meeting
// @Description Schedules a meeting owned by the requester; when tied to a community the requester must be a member
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} dto.APIResponse{data=dto.MeetingResponse}
// @Failure 403 {object} dto.ErrorResponse "Not a community member"
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.meetingService.CreateMeeting(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// ListMeetings lists the requester's meetings
// @Summary List my meetings
// @Description Lists meetings where the requester is the mentor or an attendee, newest scheduled time first
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MeetingResponse}
// @Router /meetings [get]
func (c *MeetingController) ListMeetings(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.meetingService.ListMeetings(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// JoinMeeting adds the requester as an attendee
// @Summary Join a meeting
// @Description Adds the requester as an attendee; joining twice has no effect
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /meetings/{id}/attendees [post]
func (c *MeetingController) JoinMeeting(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	if err := c.meetingService.JoinMeeting(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StatusResponse{Status: "joined"}})
}

// LeaveMeeting removes the requester from the attendee list
// @Summary Leave a meeting
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /meetings/{id}/attendees [delete]
func (c *MeetingController) LeaveMeeting(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	if err := c.meetingService.LeaveMeeting(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StatusResponse{Status: "left"}})
}

// UpdateStatus sets the meeting status
// @Summary Update meeting status
// @Description Sets the meeting status; only the owning mentor may do this
// @Tags meetings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meeting ID"
// @Param request body dto.UpdateMeetingStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.MeetingResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown status value"
// @Failure 403 {object} dto.ErrorResponse "Not the mentor"
// @Router /meetings/{id}/status [patch]
func (c *MeetingController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	var req dto.UpdateMeetingStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.meetingService.UpdateStatus(ctx.Request.Context(), id, userID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListCommunityMeetings lists a community's meetings
// @Summary List community meetings
// @Description Lists a community's meetings newest scheduled time first; members only
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MeetingResponse}
// @Failure 403 {object} dto.ErrorResponse "Not a member"
// @Router /communities/{id}/meetings [get]
func (c *MeetingController) ListCommunityMeetings(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.meetingService.ListCommunityMeetings(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
