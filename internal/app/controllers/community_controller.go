package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/middleware"
)

// CommunityController handles community and membership operations
type CommunityController struct {
	communityService services.CommunityService
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		logger:           logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListCommunities lists all communities
// @Summary List communities
// @Description Lists all communities newest first, with optional search, category and mine=true filters
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name and description"
// @Param category query string false "Filter by category"
// @Param mine query bool false "Only communities the requester belongs to"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommunityResponse}
// @Router /communities [get]
func (c *CommunityController) ListCommunities(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	mine := ctx.Query("mine") == "true"

	resp, err := c.communityService.GetAllCommunities(
		ctx.Request.Context(), userID, ctx.Query("search"), ctx.Query("category"), mine)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CreateCommunity creates a community
// @Summary Create a community
// @Description Creates a community; the creator automatically becomes a member
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunityRequest true "Community data"
// @Success 201 {object} dto.APIResponse{data=dto.CommunityResponse}
// @Failure 400 {object} dto.ErrorResponse "Name missing or invalid category"
// @Router /communities [post]
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.CreateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.communityService.CreateCommunity(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// GetCommunity returns a community with its members
// @Summary Get community detail
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.communityService.GetCommunityByID(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// JoinCommunity adds the requester to a community
// @Summary Join a community
// @Description Adds the requester as a member; joining twice has no effect
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /communities/{id}/members [post]
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	if err := c.communityService.JoinCommunity(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StatusResponse{Status: "joined"}})
}

// LeaveCommunity removes the requester from a community
// @Summary Leave a community
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /communities/{id}/members [delete]
func (c *CommunityController) LeaveCommunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	if err := c.communityService.LeaveCommunity(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.StatusResponse{Status: "left"}})
}

// GetMembers lists a community's members
// @Summary List community members
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /communities/{id}/members [get]
func (c *CommunityController) GetMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.communityService.GetMembers(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// UploadImage sets the community image
// @Summary Upload community image
// @Description Stores a new community image; only the creator may do this
// @Tags communities
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Community ID"
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.FileUploadResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Router /communities/{id}/image [post]
func (c *CommunityController) UploadImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.communityService.UploadImage(ctx.Request.Context(), id, userID, fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Int64("communityID", id).Msg("Failed to upload community image")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
