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

// MeetingService defines the interface for meeting operations
type MeetingService interface {
	CreateMeeting(ctx context.Context, mentorID int64, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	ListMeetings(ctx context.Context, userID int64) ([]dto.MeetingResponse, error)
	JoinMeeting(ctx context.Context, meetingID, userID int64) error
	LeaveMeeting(ctx context.Context, meetingID, userID int64) error
	UpdateStatus(ctx context.Context, meetingID, userID int64, status string) (*dto.MeetingResponse, error)
	ListCommunityMeetings(ctx context.Context, communityID, userID int64) ([]dto.MeetingResponse, error)
}

// meetingServiceImpl implements MeetingService
type meetingServiceImpl struct {
	meetingRepo *repositories.MeetingRepository
	memberRepo  *repositories.MemberRepository
	logger      zerolog.Logger
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo *repositories.MeetingRepository,
	memberRepo *repositories.MemberRepository,
	logger zerolog.Logger,
) MeetingService {
	return &meetingServiceImpl{
		meetingRepo: meetingRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

// CreateMeeting schedules a meeting owned by the caller. When tied to a
// community, the caller must be a member.
func (s *meetingServiceImpl) CreateMeeting(ctx context.Context, mentorID int64, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	if req.CommunityID != nil {
		isMember, err := s.memberRepo.IsMember(ctx, *req.CommunityID, mentorID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, apperrors.ErrNotCommunityMember
		}
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	meeting := &models.Meeting{
		Title:           req.Title,
		Description:     req.Description,
		MentorID:        mentorID,
		CommunityID:     req.CommunityID,
		ScheduledTime:   req.ScheduledTime,
		DurationMinutes: duration,
		Status:          models.MeetingScheduled,
	}
	if req.ZoomLink != "" {
		meeting.ZoomLink = &req.ZoomLink
	}

	if err := s.meetingRepo.Create(ctx, meeting, req.AttendeeIDs); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("meetingID", meeting.ID).Int64("mentorID", mentorID).Msg("Meeting scheduled")
	return s.buildMeetingResponse(ctx, meeting)
}

func (s *meetingServiceImpl) ListMeetings(ctx context.Context, userID int64) ([]dto.MeetingResponse, error) {
	meetings, err := s.meetingRepo.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildMeetingResponses(ctx, meetings)
}

func (s *meetingServiceImpl) JoinMeeting(ctx context.Context, meetingID, userID int64) error {
	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		return err
	}
	return s.meetingRepo.AddAttendee(ctx, meetingID, userID)
}

func (s *meetingServiceImpl) LeaveMeeting(ctx context.Context, meetingID, userID int64) error {
	if _, err := s.meetingRepo.GetByID(ctx, meetingID); err != nil {
		return err
	}
	return s.meetingRepo.RemoveAttendee(ctx, meetingID, userID)
}

// UpdateStatus sets the meeting status. Only the owning mentor may do this.
func (s *meetingServiceImpl) UpdateStatus(ctx context.Context, meetingID, userID int64, status string) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.MentorID != userID {
		return nil, apperrors.ErrNotMeetingMentor
	}

	newStatus := models.MeetingStatus(status)
	if !models.IsValidMeetingStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidMeetingStatus, status)
	}

	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, newStatus); err != nil {
		return nil, err
	}
	meeting.Status = newStatus

	return s.buildMeetingResponse(ctx, meeting)
}

// ListCommunityMeetings lists a community's meetings for members only
func (s *meetingServiceImpl) ListCommunityMeetings(ctx context.Context, communityID, userID int64) ([]dto.MeetingResponse, error) {
	isMember, err := s.memberRepo.IsMember(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrNotCommunityMember
	}

	meetings, err := s.meetingRepo.GetByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}
	return s.buildMeetingResponses(ctx, meetings)
}

func (s *meetingServiceImpl) buildMeetingResponse(ctx context.Context, m *models.Meeting) (*dto.MeetingResponse, error) {
	attendees, err := s.meetingRepo.GetAttendees(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	attendeeResponses := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		attendeeResponses = append(attendeeResponses, dto.AttendeeResponse{
			UserID:    a.UserID,
			Username:  a.User.Username,
			FirstName: a.User.FirstName,
			LastName:  a.User.LastName,
			JoinedAt:  a.JoinedAt,
		})
	}

	resp := &dto.MeetingResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		MentorID:        m.MentorID,
		CommunityID:     m.CommunityID,
		ScheduledTime:   m.ScheduledTime,
		DurationMinutes: m.DurationMinutes,
		Status:          string(m.Status),
		Attendees:       attendeeResponses,
		CreatedAt:       m.CreatedAt,
	}
	if m.Mentor != nil {
		resp.MentorUsername = m.Mentor.Username
	}
	if m.ZoomLink != nil {
		resp.ZoomLink = *m.ZoomLink
	}
	return resp, nil
}

func (s *meetingServiceImpl) buildMeetingResponses(ctx context.Context, meetings []*models.Meeting) ([]dto.MeetingResponse, error) {
	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		resp, err := s.buildMeetingResponse(ctx, m)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
