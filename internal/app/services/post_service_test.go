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

func newPostServiceFixture(t *testing.T) (PostService, *fakeUserStore, *fakeCommunityStore, *fakeMemberStore) {
	t.Helper()
	users := newFakeUserStore()
	communities := newFakeCommunityStore()
	members := newFakeMemberStore()
	posts := newFakePostStore(users)
	svc := NewPostService(posts, communities, members, users, newFakeFileStore(), zerolog.Nop())
	return svc, users, communities, members
}

func TestCreatePostRequiresMembership(t *testing.T) {
	svc, users, communities, _ := newPostServiceFixture(t)
	users.addUser(&models.User{ID: 5, Username: "outsider"})
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})

	_, err := svc.CreatePost(context.Background(), 1, 5, &dto.CreatePostRequest{Title: "hi", Content: "first"})
	assert.ErrorIs(t, err, apperrors.ErrNotCommunityMember)

	// nothing was written for the rejected author
	posts, err := svc.GetCommunityPosts(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreatePostUnknownCommunity(t *testing.T) {
	svc, users, _, _ := newPostServiceFixture(t)
	users.addUser(&models.User{ID: 5, Username: "alice"})

	_, err := svc.CreatePost(context.Background(), 99, 5, &dto.CreatePostRequest{Title: "hi", Content: "first"})
	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)
}

func TestCreatePostAsMember(t *testing.T) {
	svc, users, communities, members := newPostServiceFixture(t)
	users.addUser(&models.User{ID: 5, Username: "alice"})
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	require.NoError(t, members.Add(context.Background(), 1, 5))

	resp, err := svc.CreatePost(context.Background(), 1, 5, &dto.CreatePostRequest{Title: "welcome", Content: "hello all"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.CommunityID)
	assert.Equal(t, int64(5), resp.AuthorID)
	assert.Equal(t, "welcome", resp.Title)
	assert.Equal(t, "alice", resp.AuthorUsername)
}

func TestVoteCountsAccumulate(t *testing.T) {
	svc, users, communities, members := newPostServiceFixture(t)
	users.addUser(&models.User{ID: 5, Username: "alice"})
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	require.NoError(t, members.Add(context.Background(), 1, 5))

	post, err := svc.CreatePost(context.Background(), 1, 5, &dto.CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = svc.UpvotePost(context.Background(), post.ID)
	require.NoError(t, err)
	votes, err := svc.UpvotePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, votes.Upvotes)
	assert.Equal(t, 0, votes.Downvotes)

	votes, err = svc.DownvotePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, votes.Upvotes)
	assert.Equal(t, 1, votes.Downvotes)
}

func TestAddCommentWithoutMembership(t *testing.T) {
	svc, users, communities, members := newPostServiceFixture(t)
	users.addUser(&models.User{ID: 5, Username: "alice"})
	users.addUser(&models.User{ID: 6, Username: "bob"})
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	require.NoError(t, members.Add(context.Background(), 1, 5))

	post, err := svc.CreatePost(context.Background(), 1, 5, &dto.CreatePostRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	// commenting is open to any authenticated user, member or not
	comment, err := svc.AddComment(context.Background(), post.ID, 6, &dto.CreateCommentRequest{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "bob", comment.AuthorUsername)

	detail, err := svc.GetPostDetail(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice", detail.Comments[0].Content)
}
