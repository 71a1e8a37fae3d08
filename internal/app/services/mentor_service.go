package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/repositories"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// MentorService defines the interface for the mentor directory
type MentorService interface {
	ListMentors(ctx context.Context) ([]dto.MentorResponse, error)
	RegisterMentor(ctx context.Context, userID int64, req *dto.CreateMentorProfileRequest) (*dto.MentorResponse, error)
}

// mentorServiceImpl implements MentorService
type mentorServiceImpl struct {
	mentorRepo *repositories.MentorRepository
	userRepo   *repositories.UserRepository
	logger     zerolog.Logger
}

// NewMentorService creates a new MentorService
func NewMentorService(
	mentorRepo *repositories.MentorRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) MentorService {
	return &mentorServiceImpl{
		mentorRepo: mentorRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *mentorServiceImpl) ListMentors(ctx context.Context) ([]dto.MentorResponse, error) {
	mentors, err := s.mentorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildMentorResponses(mentors), nil
}

// RegisterMentor puts the caller in the mentor directory. A user can
// register at most once.
func (s *mentorServiceImpl) RegisterMentor(ctx context.Context, userID int64, req *dto.CreateMentorProfileRequest) (*dto.MentorResponse, error) {
	exists, err := s.mentorRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrMentorProfileExists
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	mentor := &models.MentorProfile{
		UserID:    userID,
		Field:     req.Field,
		Expertise: req.Expertise,
		Bio:       req.Bio,
		User:      user,
	}
	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Str("field", req.Field).Msg("Mentor registered")
	resp := buildMentorResponse(mentor)
	return &resp, nil
}

func buildMentorResponse(m *models.MentorProfile) dto.MentorResponse {
	resp := dto.MentorResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Field:     m.Field,
		Expertise: m.Expertise,
		Bio:       m.Bio,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		resp.Username = m.User.Username
		resp.FirstName = m.User.FirstName
		resp.LastName = m.User.LastName
	}
	return resp
}

func buildMentorResponses(mentors []*models.MentorProfile) []dto.MentorResponse {
	responses := make([]dto.MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		responses = append(responses, buildMentorResponse(m))
	}
	return responses
}
