package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

type stubMessageService struct {
	sent     *dto.SendMessageRequest
	senderID int64
	sendErr  error
	thread   []dto.MessageResponse
}

func (s *stubMessageService) SendMessage(_ context.Context, senderID int64, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	s.senderID = senderID
	s.sent = req
	return &dto.MessageResponse{ID: 1, SenderID: senderID, ReceiverID: req.ReceiverID, Content: req.Content}, nil
}

func (s *stubMessageService) ListMessages(_ context.Context, _ int64) ([]dto.MessageResponse, error) {
	return s.thread, nil
}

func (s *stubMessageService) ListConversations(_ context.Context, _ int64) ([]dto.ConversationResponse, error) {
	return nil, nil
}

func (s *stubMessageService) GetThread(_ context.Context, _, _ int64) ([]dto.MessageResponse, error) {
	return s.thread, nil
}

func newMessageTestRouter(svc *stubMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMessageController(svc, zerolog.Nop())

	router := gin.New()
	authed := router.Group("", func(c *gin.Context) {
		c.Set("userID", int64(5))
		c.Set("username", "tester")
	})
	authed.POST("/messages", controller.SendMessage)
	authed.GET("/messages", controller.ListMessages)
	authed.GET("/messages/with/:userId", controller.GetThread)
	return router
}

func TestSendMessage(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	body := `{"receiverId": 9, "content": "hello there"}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, svc.sent)
	assert.Equal(t, int64(5), svc.senderID)
	assert.Equal(t, int64(9), svc.sent.ReceiverID)
	assert.Equal(t, "hello there", svc.sent.Content)
}

func TestSendMessageMissingFields(t *testing.T) {
	svc := &stubMessageService{}
	router := newMessageTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"content": ""}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, svc.sent)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	svc := &stubMessageService{sendErr: apperrors.ErrReceiverNotFound}
	router := newMessageTestRouter(svc)

	body := `{"receiverId": 404, "content": "anyone home"}`
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetThread(t *testing.T) {
	svc := &stubMessageService{thread: []dto.MessageResponse{
		{ID: 1, SenderID: 5, ReceiverID: 9, Content: "hi"},
		{ID: 2, SenderID: 9, ReceiverID: 5, Content: "hey"},
	}}
	router := newMessageTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/messages/with/9", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []dto.MessageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestGetThreadBadUserID(t *testing.T) {
	router := newMessageTestRouter(&stubMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/messages/with/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
