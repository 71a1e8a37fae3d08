package models

import "time"

// MeetingStatus is the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingOngoing   MeetingStatus = "ongoing"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

// IsValidMeetingStatus reports whether the value is a known meeting status
func IsValidMeetingStatus(s MeetingStatus) bool {
	switch s {
	case MeetingScheduled, MeetingOngoing, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

// Meeting is a time-boxed event owned by a mentor, optionally tied to a community
type Meeting struct {
	ID              int64         `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	Description     string        `json:"description" db:"description"`
	MentorID        int64         `json:"mentorId" db:"mentor_id"`
	CommunityID     *int64        `json:"communityId,omitempty" db:"community_id"`
	ScheduledTime   time.Time     `json:"scheduledTime" db:"scheduled_time"`
	DurationMinutes int           `json:"durationMinutes" db:"duration_minutes"`
	Status          MeetingStatus `json:"status" db:"status"`
	ZoomLink        *string       `json:"zoomLink,omitempty" db:"zoom_link"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`

	Mentor    *User   `json:"mentor,omitempty"`
	Attendees []*User `json:"attendees,omitempty"`
}

// MeetingAttendee represents an attendee row for a meeting
type MeetingAttendee struct {
	ID        int64     `json:"id" db:"id"`
	MeetingID int64     `json:"meetingId" db:"meeting_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	JoinedAt  time.Time `json:"joinedAt" db:"joined_at"`

	User *User `json:"user,omitempty"`
}
