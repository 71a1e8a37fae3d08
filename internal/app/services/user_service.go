package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
	"github.com/unitycircles/backend/internal/pkg/filestorage"
	"github.com/unitycircles/backend/internal/pkg/validation"
)

// UserService defines the interface for user and profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UploadProfilePicture(ctx context.Context, userID int64, file *multipart.FileHeader) (*dto.FileUploadResponse, error)
	ListUsers(ctx context.Context, requesterID int64) ([]dto.UserResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo UserStore
	fileRepo FileStore
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo UserStore,
	fileRepo FileStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		fileRepo: fileRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfileResponse(ctx, user, profile), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if !validation.IsValidEmail(email) {
			return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
		}
		user.Email = email
	}
	if req.FirstName != nil {
		if !validation.NewStringValidation(*req.FirstName).WithRequired(false).WithMaxLength(validation.NameMaxLength).Validate() {
			return nil, fmt.Errorf("%w: first name must be at most %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
		}
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if !validation.NewStringValidation(*req.LastName).WithRequired(false).WithMaxLength(validation.NameMaxLength).Validate() {
			return nil, fmt.Errorf("%w: last name must be at most %d characters", apperrors.ErrValidationFailed, validation.NameMaxLength)
		}
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Qualification != nil {
		profile.Qualification = *req.Qualification
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !models.IsValidRole(role) {
			return nil, fmt.Errorf("%w: invalid role", apperrors.ErrValidationFailed)
		}
		profile.Role = role
	}

	if err := s.userRepo.UpdateUserAndProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userID", userID).Msg("Profile updated")
	return s.buildProfileResponse(ctx, user, profile), nil
}

func (s *userServiceImpl) UploadProfilePicture(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.FileUploadResponse, error) {
	fileURL, err := s.storage.SaveFileWithPath(fileHeader, "profiles")
	if err != nil {
		return nil, fmt.Errorf("error saving profile picture: %w", err)
	}

	// the storage returns the public URL; keep the path relative to it
	relativePath := strings.TrimPrefix(fileURL, strings.TrimRight(s.storage.GetBaseURL(), "/"))
	relativePath = strings.TrimPrefix(relativePath, "/")

	file := &models.File{
		FileName:     fileHeader.Filename,
		FilePath:     relativePath,
		FileURL:      fileURL,
		FileSize:     fileHeader.Size,
		FileType:     fileHeader.Header.Get("Content-Type"),
		ResourceType: models.ResourceProfilePicture,
		UploadedBy:   userID,
	}
	fileID, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfilePhotoFileID(ctx, userID, &fileID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Int64("fileID", fileID).Msg("Profile picture uploaded")
	return &dto.FileUploadResponse{FileID: fileID, FileURL: file.FileURL}, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, requesterID int64) ([]dto.UserResponse, error) {
	users, err := s.userRepo.ListAllExcept(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	return responses, nil
}

func (s *userServiceImpl) buildProfileResponse(ctx context.Context, user *models.User, profile *models.Profile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		PhoneNumber:        profile.PhoneNumber,
		Qualification:      profile.Qualification,
		Interests:          profile.Interests,
		Role:               string(profile.Role),
		Bio:                profile.Bio,
		ProfilePhotoFileID: profile.ProfilePhotoFileID,
		LastLoginAt:        user.LastLoginAt,
		CreatedAt:          user.CreatedAt,
	}
	if profile.ProfilePhotoFileID != nil {
		if file, err := s.fileRepo.GetByID(ctx, *profile.ProfilePhotoFileID); err == nil {
			resp.ProfilePhotoURL = file.FileURL
		}
	}
	return resp
}
