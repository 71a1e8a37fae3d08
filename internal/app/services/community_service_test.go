package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

func newCommunityService(t *testing.T, communities *fakeCommunityStore, members *fakeMemberStore, files *fakeFileStore) CommunityService {
	t.Helper()
	return NewCommunityService(communities, members, files, newTestStorage(t, "http://localhost:8080/uploads"), zerolog.Nop())
}

func TestJoinCommunityIsIdempotent(t *testing.T) {
	communities := newFakeCommunityStore()
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	members := newFakeMemberStore()
	svc := newCommunityService(t, communities, members, newFakeFileStore())

	require.NoError(t, svc.JoinCommunity(context.Background(), 1, 9))
	require.NoError(t, svc.JoinCommunity(context.Background(), 1, 9))

	list, err := members.GetMembers(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	isMember, err := members.IsMember(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestJoinCommunityUnknown(t *testing.T) {
	svc := newCommunityService(t, newFakeCommunityStore(), newFakeMemberStore(), newFakeFileStore())

	err := svc.JoinCommunity(context.Background(), 42, 9)
	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)
}

func TestLeaveCommunity(t *testing.T) {
	communities := newFakeCommunityStore()
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	members := newFakeMemberStore()
	svc := newCommunityService(t, communities, members, newFakeFileStore())

	require.NoError(t, svc.JoinCommunity(context.Background(), 1, 9))
	require.NoError(t, svc.LeaveCommunity(context.Background(), 1, 9))

	isMember, err := members.IsMember(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestUploadImageCreatorOnly(t *testing.T) {
	communities := newFakeCommunityStore()
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	svc := newCommunityService(t, communities, newFakeMemberStore(), newFakeFileStore())

	header := newUploadHeader(t, "banner.jpg", "jpg bytes")
	_, err := svc.UploadImage(context.Background(), 1, 5, header)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUploadImageStoresPublicURL(t *testing.T) {
	communities := newFakeCommunityStore()
	communities.add(&models.Community{ID: 1, Name: "Go Circle", CreatorID: 2})
	files := newFakeFileStore()
	svc := newCommunityService(t, communities, newFakeMemberStore(), files)

	header := newUploadHeader(t, "banner.jpg", "jpg bytes")
	resp, err := svc.UploadImage(context.Background(), 1, 2, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.FileURL, "http://localhost:8080/uploads/communities/"), "got %q", resp.FileURL)

	stored, err := files.GetByID(context.Background(), resp.FileID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.FilePath, "communities/"), "got %q", stored.FilePath)
	assert.Equal(t, models.ResourceCommunityImage, stored.ResourceType)

	community, err := communities.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, community.ImageFileID)
	assert.Equal(t, resp.FileID, *community.ImageFileID)
}
