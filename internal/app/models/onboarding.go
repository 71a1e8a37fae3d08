package models

import "time"

// OnboardingStep tracks the per-user onboarding checklist.
// IsCompleted is derived: true iff all four milestone flags are true.
type OnboardingStep struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"userId" db:"user_id"`
	ProfileCompleted   bool      `json:"profileCompleted" db:"profile_completed"`
	InterestsCompleted bool      `json:"interestsCompleted" db:"interests_completed"`
	GoalsCompleted     bool      `json:"goalsCompleted" db:"goals_completed"`
	CommunityCompleted bool      `json:"communityCompleted" db:"community_completed"`
	IsCompleted        bool      `json:"isCompleted" db:"is_completed"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}
