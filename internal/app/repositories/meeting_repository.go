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

// MeetingRepository handles meeting database operations
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

const meetingSelect = `
	SELECT mt.id, mt.title, mt.description, mt.mentor_id, mt.community_id,
	       mt.scheduled_time, mt.duration_minutes, mt.status, mt.zoom_link,
	       mt.created_at, mt.updated_at, u.username
	FROM meetings mt
	JOIN users u ON u.id = mt.mentor_id`

func scanMeeting(row pgx.Row) (*models.Meeting, error) {
	m := &models.Meeting{Mentor: &models.User{}}
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.MentorID, &m.CommunityID,
		&m.ScheduledTime, &m.DurationMinutes, &m.Status, &m.ZoomLink,
		&m.CreatedAt, &m.UpdatedAt, &m.Mentor.Username,
	)
	if err != nil {
		return nil, err
	}
	m.Mentor.ID = m.MentorID
	return m, nil
}

// Create inserts a meeting and its initial attendees in one transaction
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.Meeting, attendeeIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO meetings (title, description, mentor_id, community_id, scheduled_time,
		                      duration_minutes, status, zoom_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		meeting.Title, meeting.Description, meeting.MentorID, meeting.CommunityID,
		meeting.ScheduledTime, meeting.DurationMinutes, meeting.Status, meeting.ZoomLink,
	).Scan(&meeting.ID, &meeting.CreatedAt, &meeting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating meeting: %w", err)
	}

	for _, attendeeID := range attendeeIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO meeting_attendees (meeting_id, user_id, joined_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (meeting_id, user_id) DO NOTHING`,
			meeting.ID, attendeeID,
		)
		if err != nil {
			return fmt.Errorf("error adding attendee: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a single meeting
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	meeting, err := scanMeeting(r.db.QueryRow(ctx, meetingSelect+` WHERE mt.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return meeting, nil
}

// GetForUser lists meetings where the user is the mentor or an attendee,
// distinct, newest scheduled time first.
func (r *MeetingRepository) GetForUser(ctx context.Context, userID int64) ([]*models.Meeting, error) {
	rows, err := r.db.Query(ctx, meetingSelect+`
		WHERE mt.mentor_id = $1
		   OR mt.id IN (SELECT meeting_id FROM meeting_attendees WHERE user_id = $1)
		ORDER BY mt.scheduled_time DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMeetings(rows)
}

// GetByCommunity lists a community's meetings, newest scheduled time first
func (r *MeetingRepository) GetByCommunity(ctx context.Context, communityID int64) ([]*models.Meeting, error) {
	rows, err := r.db.Query(ctx, meetingSelect+`
		WHERE mt.community_id = $1
		ORDER BY mt.scheduled_time DESC`, communityID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMeetings(rows)
}

func collectMeetings(rows pgx.Rows) ([]*models.Meeting, error) {
	var meetings []*models.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// UpdateStatus sets the meeting status
func (r *MeetingRepository) UpdateStatus(ctx context.Context, meetingID int64, status models.MeetingStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE meetings SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, meetingID,
	)
	if err != nil {
		return fmt.Errorf("error updating meeting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}
	return nil
}

// AddAttendee joins a user to a meeting. Joining twice is a no-op.
func (r *MeetingRepository) AddAttendee(ctx context.Context, meetingID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO meeting_attendees (meeting_id, user_id, joined_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (meeting_id, user_id) DO NOTHING`,
		meetingID, userID,
	)
	if err != nil {
		return fmt.Errorf("error adding attendee: %w", err)
	}
	return nil
}

// RemoveAttendee leaves a meeting. Removing a non-attendee is a no-op.
func (r *MeetingRepository) RemoveAttendee(ctx context.Context, meetingID, userID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM meeting_attendees WHERE meeting_id = $1 AND user_id = $2`,
		meetingID, userID,
	)
	if err != nil {
		return fmt.Errorf("error removing attendee: %w", err)
	}
	return nil
}

// GetAttendees lists a meeting's attendees with their user info
func (r *MeetingRepository) GetAttendees(ctx context.Context, meetingID int64) ([]*models.MeetingAttendee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ma.id, ma.meeting_id, ma.user_id, ma.joined_at,
		       u.username, u.first_name, u.last_name
		FROM meeting_attendees ma
		JOIN users u ON u.id = ma.user_id
		WHERE ma.meeting_id = $1
		ORDER BY ma.joined_at`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var attendees []*models.MeetingAttendee
	for rows.Next() {
		a := &models.MeetingAttendee{User: &models.User{}}
		err := rows.Scan(
			&a.ID, &a.MeetingID, &a.UserID, &a.JoinedAt,
			&a.User.Username, &a.User.FirstName, &a.User.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		a.User.ID = a.UserID
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// CountScheduledForUser counts the user's upcoming scheduled meetings
func (r *MeetingRepository) CountScheduledForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT mt.id)
		FROM meetings mt
		LEFT JOIN meeting_attendees ma ON ma.meeting_id = mt.id
		WHERE (mt.mentor_id = $1 OR ma.user_id = $1) AND mt.status = 'scheduled'`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
