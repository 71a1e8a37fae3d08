package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnboardingStepZeroValue(t *testing.T) {
	o := OnboardingStep{}
	assert.False(t, o.ProfileCompleted)
	assert.False(t, o.InterestsCompleted)
	assert.False(t, o.GoalsCompleted)
	assert.False(t, o.CommunityCompleted)
	assert.False(t, o.IsCompleted)
}
