package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/repositories"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// Onboarding step identifiers as they appear in request paths
const (
	OnboardingStepProfile   = "profile"
	OnboardingStepInterests = "interests"
	OnboardingStepGoals     = "goals"
	OnboardingStepCommunity = "community"
)

// OnboardingService defines the interface for the onboarding checklist
type OnboardingService interface {
	GetStatus(ctx context.Context, userID int64) (*dto.OnboardingResponse, error)
	CompleteStep(ctx context.Context, userID int64, step string) (*dto.OnboardingResponse, error)
}

// onboardingServiceImpl implements OnboardingService
type onboardingServiceImpl struct {
	onboardingRepo *repositories.OnboardingRepository
	logger         zerolog.Logger
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(onboardingRepo *repositories.OnboardingRepository, logger zerolog.Logger) OnboardingService {
	return &onboardingServiceImpl{onboardingRepo: onboardingRepo, logger: logger}
}

func (s *onboardingServiceImpl) GetStatus(ctx context.Context, userID int64) (*dto.OnboardingResponse, error) {
	step, err := s.onboardingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildOnboardingResponse(step), nil
}

// CompleteStep marks one milestone done. Completing a step twice is a no-op.
func (s *onboardingServiceImpl) CompleteStep(ctx context.Context, userID int64, step string) (*dto.OnboardingResponse, error) {
	var column string
	switch step {
	case OnboardingStepProfile:
		column = repositories.StepProfile
	case OnboardingStepInterests:
		column = repositories.StepInterests
	case OnboardingStepGoals:
		column = repositories.StepGoals
	case OnboardingStepCommunity:
		column = repositories.StepCommunity
	default:
		return nil, fmt.Errorf("%w: unknown onboarding step %q", apperrors.ErrValidationFailed, step)
	}

	row, err := s.onboardingRepo.CompleteStep(ctx, userID, column)
	if err != nil {
		return nil, err
	}

	if row.IsCompleted {
		s.logger.Info().Int64("userID", userID).Msg("Onboarding completed")
	}
	return buildOnboardingResponse(row), nil
}

func buildOnboardingResponse(o *models.OnboardingStep) *dto.OnboardingResponse {
	return &dto.OnboardingResponse{
		ProfileCompleted:   o.ProfileCompleted,
		InterestsCompleted: o.InterestsCompleted,
		GoalsCompleted:     o.GoalsCompleted,
		CommunityCompleted: o.CommunityCompleted,
		IsCompleted:        o.IsCompleted,
		UpdatedAt:          o.UpdatedAt,
	}
}
