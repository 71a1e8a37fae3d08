package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// Onboarding step column names, keyed by the step identifier used in routes
const (
	StepProfile   = "profile_completed"
	StepInterests = "interests_completed"
	StepGoals     = "goals_completed"
	StepCommunity = "community_completed"
)

// OnboardingRepository handles onboarding checklist database operations
type OnboardingRepository struct {
	db *pgxpool.Pool
}

// NewOnboardingRepository creates a new OnboardingRepository
func NewOnboardingRepository(db *pgxpool.Pool) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

const onboardingColumns = `id, user_id, profile_completed, interests_completed,
	goals_completed, community_completed, is_completed, created_at, updated_at`

func scanOnboarding(row pgx.Row) (*models.OnboardingStep, error) {
	o := &models.OnboardingStep{}
	err := row.Scan(
		&o.ID, &o.UserID, &o.ProfileCompleted, &o.InterestsCompleted,
		&o.GoalsCompleted, &o.CommunityCompleted, &o.IsCompleted,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GetByUserID retrieves the user's onboarding row
func (r *OnboardingRepository) GetByUserID(ctx context.Context, userID int64) (*models.OnboardingStep, error) {
	o, err := scanOnboarding(r.db.QueryRow(ctx, `
		SELECT `+onboardingColumns+` FROM onboarding_steps WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return o, nil
}

// CompleteStep sets one milestone flag true and recomputes is_completed in the
// same statement, so the derived flag can never drift from the four inputs.
// The SET expressions read the pre-update row, so the flag being set is
// substituted with TRUE in the recompute. The column name must be one of the
// Step* constants.
func (r *OnboardingRepository) CompleteStep(ctx context.Context, userID int64, column string) (*models.OnboardingStep, error) {
	switch column {
	case StepProfile, StepInterests, StepGoals, StepCommunity:
	default:
		return nil, fmt.Errorf("unknown onboarding step column: %s", column)
	}

	recompute := ""
	for _, c := range []string{StepProfile, StepInterests, StepGoals, StepCommunity} {
		if recompute != "" {
			recompute += " AND "
		}
		if c == column {
			recompute += "TRUE"
		} else {
			recompute += c
		}
	}

	o, err := scanOnboarding(r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE onboarding_steps
		SET %s = TRUE,
		    is_completed = %s,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+onboardingColumns, column, recompute), userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error completing onboarding step: %w", err)
	}
	return o, nil
}
