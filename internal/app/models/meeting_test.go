package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMeetingStatus(t *testing.T) {
	for _, s := range []MeetingStatus{MeetingScheduled, MeetingOngoing, MeetingCompleted, MeetingCancelled} {
		assert.True(t, IsValidMeetingStatus(s), string(s))
	}
	assert.False(t, IsValidMeetingStatus("postponed"))
	assert.False(t, IsValidMeetingStatus(""))
}
