package dto

import "time"

// OnboardingResponse represents the user's onboarding checklist state
type OnboardingResponse struct {
	ProfileCompleted   bool      `json:"profileCompleted"`
	InterestsCompleted bool      `json:"interestsCompleted"`
	GoalsCompleted     bool      `json:"goalsCompleted"`
	CommunityCompleted bool      `json:"communityCompleted"`
	IsCompleted        bool      `json:"isCompleted"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
