package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unitycircles/backend/internal/app/models"
)

// MessageRepository handles direct message database operations
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

const messageSelect = `
	SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
	       s.username, r.username
	FROM direct_messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.receiver_id`

func scanMessage(row pgx.Row) (*models.DirectMessage, error) {
	m := &models.DirectMessage{Sender: &models.User{}, Receiver: &models.User{}}
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.CreatedAt,
		&m.Sender.Username, &m.Receiver.Username,
	)
	if err != nil {
		return nil, err
	}
	m.Sender.ID = m.SenderID
	m.Receiver.ID = m.ReceiverID
	return m, nil
}

// Create inserts a direct message with a server-side timestamp
func (r *MessageRepository) Create(ctx context.Context, message *models.DirectMessage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO direct_messages (sender_id, receiver_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		message.SenderID, message.ReceiverID, message.Content,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetAllForUser lists every message the user sent or received, newest first
func (r *MessageRepository) GetAllForUser(ctx context.Context, userID int64) ([]*models.DirectMessage, error) {
	rows, err := r.db.Query(ctx, messageSelect+`
		WHERE m.sender_id = $1 OR m.receiver_id = $1
		ORDER BY m.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

// GetThread lists the full conversation between two users, oldest first.
// The result is identical regardless of which participant asks.
func (r *MessageRepository) GetThread(ctx context.Context, userID, otherID int64) ([]*models.DirectMessage, error) {
	rows, err := r.db.Query(ctx, messageSelect+`
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at`, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]*models.DirectMessage, error) {
	var messages []*models.DirectMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetConversationPartners lists the distinct users the given user has
// exchanged messages with, ordered by username.
func (r *MessageRepository) GetConversationPartners(ctx context.Context, userID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT u.id, u.username, u.first_name, u.last_name
		FROM users u
		JOIN direct_messages m
		  ON (m.sender_id = u.id AND m.receiver_id = $1)
		  OR (m.receiver_id = u.id AND m.sender_id = $1)
		ORDER BY u.username`, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountReceived returns how many messages the user has received
func (r *MessageRepository) CountReceived(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM direct_messages WHERE receiver_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
