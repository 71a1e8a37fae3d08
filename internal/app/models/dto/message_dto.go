package dto

import "time"

// SendMessageRequest represents a direct message to another user
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required"`
}

// MessageResponse represents a direct message
type MessageResponse struct {
	ID               int64     `json:"id"`
	SenderID         int64     `json:"senderId"`
	SenderUsername   string    `json:"senderUsername"`
	ReceiverID       int64     `json:"receiverId"`
	ReceiverUsername string    `json:"receiverUsername"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ConversationResponse represents a chat partner in the conversation list
type ConversationResponse struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
