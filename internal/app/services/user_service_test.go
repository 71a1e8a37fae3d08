package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
	"github.com/unitycircles/backend/internal/pkg/filestorage"
)

// newUploadHeader builds a multipart file header the way gin would hand it to
// a controller, backed by an in-memory form.
func newUploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func newTestStorage(t *testing.T, baseURL string) *filestorage.LocalStorage {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir(), baseURL)
	require.NoError(t, err)
	return storage
}

func TestUploadProfilePictureStoresPublicURL(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(&models.User{ID: 7, Username: "alice"})
	files := newFakeFileStore()
	storage := newTestStorage(t, "http://localhost:8080/uploads")
	svc := NewUserService(users, files, storage, zerolog.Nop())

	header := newUploadHeader(t, "avatar.png", "png bytes")
	resp, err := svc.UploadProfilePicture(context.Background(), 7, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.FileURL, "http://localhost:8080/uploads/profiles/"), "got %q", resp.FileURL)
	assert.True(t, strings.HasSuffix(resp.FileURL, ".png"))

	stored, err := files.GetByID(context.Background(), resp.FileID)
	require.NoError(t, err)
	assert.Equal(t, resp.FileURL, stored.FileURL)
	assert.True(t, strings.HasPrefix(stored.FilePath, "profiles/"), "got %q", stored.FilePath)
	assert.Equal(t, models.ResourceProfilePicture, stored.ResourceType)

	// the URL must resolve back to a real file on disk
	physical := storage.GetFullPath(stored.FileURL)
	_, err = os.Stat(physical)
	require.NoError(t, err)

	// and deleting by URL must remove that file
	require.NoError(t, storage.DeleteFile(stored.FileURL))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))

	profile, err := users.GetProfileByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, profile.ProfilePhotoFileID)
	assert.Equal(t, resp.FileID, *profile.ProfilePhotoFileID)
}

func TestUpdateProfileRejectsOverlongName(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(&models.User{ID: 3, Username: "bob", FirstName: "Bob"})
	svc := NewUserService(users, newFakeFileStore(), newTestStorage(t, ""), zerolog.Nop())

	long := strings.Repeat("x", 101)
	_, err := svc.UpdateProfile(context.Background(), 3, &dto.UpdateProfileRequest{FirstName: &long})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// the stored name is untouched after the rejected update
	u, err := users.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Bob", u.FirstName)
}

func TestUpdateProfileInvalidRole(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(&models.User{ID: 3, Username: "bob"})
	svc := NewUserService(users, newFakeFileStore(), newTestStorage(t, ""), zerolog.Nop())

	role := "wizard"
	_, err := svc.UpdateProfile(context.Background(), 3, &dto.UpdateProfileRequest{Role: &role})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfileUpdatesFields(t *testing.T) {
	users := newFakeUserStore()
	users.addUser(&models.User{ID: 4, Username: "carol", Email: "old@example.com"})
	svc := NewUserService(users, newFakeFileStore(), newTestStorage(t, ""), zerolog.Nop())

	email := "Carol@Example.com"
	bio := "mentor in training"
	resp, err := svc.UpdateProfile(context.Background(), 4, &dto.UpdateProfileRequest{Email: &email, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", resp.Email)
	assert.Equal(t, "mentor in training", resp.Bio)
}
