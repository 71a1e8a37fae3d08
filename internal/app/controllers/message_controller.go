package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/services"
	"github.com/unitycircles/backend/internal/middleware"
)

// MessageController handles direct messaging operations
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// SendMessage sends a direct message
// @Summary Send a message
// @Description Sends a direct message to another user; the timestamp is assigned server-side
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Empty content"
// @Failure 404 {object} dto.ErrorResponse "Unknown receiver"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.messageService.SendMessage(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// ListMessages lists the requester's messages
// @Summary List messages
// @Description Lists every message the requester sent or received, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Router /messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.messageService.ListMessages(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListConversations lists the requester's chat partners
// @Summary List conversations
// @Description Lists the distinct users the requester has exchanged messages with, ordered by username
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConversationResponse}
// @Router /messages/conversations [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.messageService.ListConversations(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetThread returns the conversation with one user
// @Summary Get a message thread
// @Description Returns the full conversation with the given user, oldest first; both participants see the same thread
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Other user ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Router /messages/with/{userId} [get]
func (c *MessageController) GetThread(ctx *gin.Context) {
	otherID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(ctx)

	resp, err := c.messageService.GetThread(ctx.Request.Context(), userID, otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
