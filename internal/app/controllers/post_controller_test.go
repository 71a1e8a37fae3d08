package controllers

import (
	"context"
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

type stubPostService struct {
	created   *dto.CreatePostRequest
	createErr error
}

func (s *stubPostService) CreatePost(_ context.Context, communityID, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = req
	return &dto.PostResponse{ID: 1, CommunityID: communityID, AuthorID: authorID, Title: req.Title, Content: req.Content}, nil
}

func (s *stubPostService) GetCommunityPosts(_ context.Context, _ int64) ([]dto.PostResponse, error) {
	return nil, nil
}

func (s *stubPostService) GetPostDetail(_ context.Context, _ int64) (*dto.PostDetailResponse, error) {
	return nil, apperrors.ErrPostNotFound
}

func (s *stubPostService) UpvotePost(_ context.Context, _ int64) (*dto.VoteResponse, error) {
	return &dto.VoteResponse{}, nil
}

func (s *stubPostService) DownvotePost(_ context.Context, _ int64) (*dto.VoteResponse, error) {
	return &dto.VoteResponse{}, nil
}

func (s *stubPostService) AddComment(_ context.Context, _, _ int64, _ *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	return &dto.CommentResponse{}, nil
}

func (s *stubPostService) UpvoteComment(_ context.Context, _ int64) (*dto.VoteResponse, error) {
	return &dto.VoteResponse{}, nil
}

func newPostTestRouter(svc *stubPostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPostController(svc, zerolog.Nop())

	router := gin.New()
	authed := router.Group("", func(c *gin.Context) {
		c.Set("userID", int64(5))
		c.Set("username", "tester")
	})
	authed.POST("/communities/:id/posts", controller.CreatePost)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreatePost(t *testing.T) {
	svc := &stubPostService{}
	router := newPostTestRouter(svc)

	recorder := postJSON(router, "/communities/1/posts", `{"title": "welcome", "content": "hello all"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "welcome", svc.created.Title)
}

func TestCreatePostNonMemberForbidden(t *testing.T) {
	svc := &stubPostService{createErr: apperrors.ErrNotCommunityMember}
	router := newPostTestRouter(svc)

	recorder := postJSON(router, "/communities/1/posts", `{"title": "welcome", "content": "hello all"}`)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCreatePostMissingFields(t *testing.T) {
	svc := &stubPostService{}
	router := newPostTestRouter(svc)

	recorder := postJSON(router, "/communities/1/posts", `{"title": "welcome"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, svc.created)
}

func TestCreatePostBadCommunityID(t *testing.T) {
	svc := &stubPostService{}
	router := newPostTestRouter(svc)

	recorder := postJSON(router, "/communities/abc/posts", `{"title": "t", "content": "c"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
