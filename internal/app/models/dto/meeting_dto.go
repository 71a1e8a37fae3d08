package dto

import "time"

// CreateMeetingRequest represents meeting scheduling data
type CreateMeetingRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	CommunityID     *int64    `json:"communityId"`
	ScheduledTime   time.Time `json:"scheduledTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	ZoomLink        string    `json:"zoomLink"`
	AttendeeIDs     []int64   `json:"attendeeIds"`
}

// UpdateMeetingStatusRequest sets a meeting status
type UpdateMeetingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MeetingResponse represents a meeting
type MeetingResponse struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	MentorID        int64              `json:"mentorId"`
	MentorUsername  string             `json:"mentorUsername"`
	CommunityID     *int64             `json:"communityId,omitempty"`
	ScheduledTime   time.Time          `json:"scheduledTime"`
	DurationMinutes int                `json:"durationMinutes"`
	Status          string             `json:"status"`
	ZoomLink        string             `json:"zoomLink,omitempty"`
	Attendees       []AttendeeResponse `json:"attendees"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// AttendeeResponse represents a meeting attendee
type AttendeeResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JoinedAt  time.Time `json:"joinedAt"`
}
