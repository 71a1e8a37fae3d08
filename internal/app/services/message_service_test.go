package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

func newMessageServiceFixture(t *testing.T) (MessageService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	messages := newFakeMessageStore(users)
	return NewMessageService(messages, users, zerolog.Nop()), users
}

func TestSendMessageEmptyContent(t *testing.T) {
	svc, users := newMessageServiceFixture(t)
	users.addUser(&models.User{ID: 1, Username: "alice"})
	users.addUser(&models.User{ID: 2, Username: "bob"})

	_, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	svc, users := newMessageServiceFixture(t)
	users.addUser(&models.User{ID: 1, Username: "alice"})

	_, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 99, Content: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrReceiverNotFound)
}

func TestSendMessageAttachesUsernames(t *testing.T) {
	svc, users := newMessageServiceFixture(t)
	users.addUser(&models.User{ID: 1, Username: "alice"})
	users.addUser(&models.User{ID: 2, Username: "bob"})

	resp, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.SenderUsername)
	assert.Equal(t, "bob", resp.ReceiverUsername)
}

func TestGetThreadSeenIdenticallyFromBothSides(t *testing.T) {
	svc, users := newMessageServiceFixture(t)
	users.addUser(&models.User{ID: 1, Username: "alice"})
	users.addUser(&models.User{ID: 2, Username: "bob"})
	users.addUser(&models.User{ID: 3, Username: "carol"})

	send := func(from, to int64, content string) {
		_, err := svc.SendMessage(context.Background(), from, &dto.SendMessageRequest{ReceiverID: to, Content: content})
		require.NoError(t, err)
	}
	send(1, 2, "hi bob")
	send(2, 1, "hi alice")
	send(1, 3, "hi carol")
	send(1, 2, "how are you")

	fromAlice, err := svc.GetThread(context.Background(), 1, 2)
	require.NoError(t, err)
	fromBob, err := svc.GetThread(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, fromAlice, fromBob)
	require.Len(t, fromAlice, 3)
	assert.Equal(t, "hi bob", fromAlice[0].Content)
	assert.Equal(t, "hi alice", fromAlice[1].Content)
	assert.Equal(t, "how are you", fromAlice[2].Content)

	// the side conversation with carol stays out of the thread
	for _, m := range fromAlice {
		assert.NotEqual(t, int64(3), m.SenderID)
		assert.NotEqual(t, int64(3), m.ReceiverID)
	}
}

func TestListConversationsDeduplicatesPartners(t *testing.T) {
	svc, users := newMessageServiceFixture(t)
	users.addUser(&models.User{ID: 1, Username: "alice"})
	users.addUser(&models.User{ID: 2, Username: "bob"})

	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{ReceiverID: 2, Content: "ping"})
		require.NoError(t, err)
	}

	conversations, err := svc.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "bob", conversations[0].Username)
}
