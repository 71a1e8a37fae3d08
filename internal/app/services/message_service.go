package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// MessageService defines the interface for direct messaging operations
type MessageService interface {
	SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, userID int64) ([]dto.MessageResponse, error)
	ListConversations(ctx context.Context, userID int64) ([]dto.ConversationResponse, error)
	GetThread(ctx context.Context, userID, otherID int64) ([]dto.MessageResponse, error)
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo MessageStore
	userRepo    UserStore
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo MessageStore,
	userRepo UserStore,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *messageServiceImpl) SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", apperrors.ErrValidationFailed)
	}

	receiver, err := s.userRepo.GetByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrReceiverNotFound
		}
		return nil, err
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	message := &models.DirectMessage{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	message.Sender = sender
	message.Receiver = receiver

	s.logger.Debug().Int64("senderID", senderID).Int64("receiverID", req.ReceiverID).Msg("Message sent")
	resp := buildMessageResponse(message)
	return &resp, nil
}

func (s *messageServiceImpl) ListMessages(ctx context.Context, userID int64) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildMessageResponses(messages), nil
}

func (s *messageServiceImpl) ListConversations(ctx context.Context, userID int64) ([]dto.ConversationResponse, error) {
	partners, err := s.messageRepo.GetConversationPartners(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ConversationResponse, 0, len(partners))
	for _, p := range partners {
		responses = append(responses, dto.ConversationResponse{
			UserID:    p.ID,
			Username:  p.Username,
			FirstName: p.FirstName,
			LastName:  p.LastName,
		})
	}
	return responses, nil
}

func (s *messageServiceImpl) GetThread(ctx context.Context, userID, otherID int64) ([]dto.MessageResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.GetThread(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	return buildMessageResponses(messages), nil
}

func buildMessageResponse(m *models.DirectMessage) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderUsername = m.Sender.Username
	}
	if m.Receiver != nil {
		resp.ReceiverUsername = m.Receiver.Username
	}
	return resp
}

func buildMessageResponses(messages []*models.DirectMessage) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, buildMessageResponse(m))
	}
	return responses
}
