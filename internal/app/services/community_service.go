package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/repositories"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
	"github.com/unitycircles/backend/internal/pkg/filestorage"
)

// CommunityService defines the interface for community operations
type CommunityService interface {
	GetAllCommunities(ctx context.Context, userID int64, search, category string, mine bool) ([]dto.CommunityResponse, error)
	CreateCommunity(ctx context.Context, userID int64, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error)
	GetCommunityByID(ctx context.Context, id, userID int64) (*dto.CommunityDetailResponse, error)
	JoinCommunity(ctx context.Context, id, userID int64) error
	LeaveCommunity(ctx context.Context, id, userID int64) error
	GetMembers(ctx context.Context, id int64) ([]dto.MemberResponse, error)
	UploadImage(ctx context.Context, id, userID int64, file *multipart.FileHeader) (*dto.FileUploadResponse, error)
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityRepo CommunityStore
	memberRepo    MemberStore
	fileRepo      FileStore
	storage       filestorage.FileStorage
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	communityRepo CommunityStore,
	memberRepo MemberStore,
	fileRepo FileStore,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		fileRepo:      fileRepo,
		storage:       storage,
		logger:        logger,
	}
}

func (s *communityServiceImpl) GetAllCommunities(ctx context.Context, userID int64, search, category string, mine bool) ([]dto.CommunityResponse, error) {
	if category != "" && !models.IsValidCategory(models.CommunityCategory(category)) {
		return nil, fmt.Errorf("%w: invalid category", apperrors.ErrValidationFailed)
	}

	filter := repositories.CommunityFilter{Search: search, Category: category}
	if mine {
		filter.MemberID = &userID
	}

	communities, counts, err := s.communityRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommunityResponse, 0, len(communities))
	for _, c := range communities {
		isMember, err := s.memberRepo.IsMember(ctx, c.ID, userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, s.buildCommunityResponse(ctx, c, counts[c.ID], isMember))
	}
	return responses, nil
}

func (s *communityServiceImpl) CreateCommunity(ctx context.Context, userID int64, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	category := models.CommunityCategory(req.Category)
	if req.Category == "" {
		category = models.CategoryOther
	}
	if !models.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: invalid category", apperrors.ErrValidationFailed)
	}

	community := &models.Community{
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		CreatorID:   userID,
	}
	if err := s.communityRepo.Create(ctx, community); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("communityID", community.ID).Int64("creatorID", userID).Msg("Community created")
	resp := s.buildCommunityResponse(ctx, community, 1, true)
	return &resp, nil
}

func (s *communityServiceImpl) GetCommunityByID(ctx context.Context, id, userID int64) (*dto.CommunityDetailResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	isMember := false
	memberResponses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		if m.UserID == userID {
			isMember = true
		}
		memberResponses = append(memberResponses, dto.MemberResponse{
			UserID:    m.UserID,
			Username:  m.User.Username,
			FirstName: m.User.FirstName,
			LastName:  m.User.LastName,
			JoinedAt:  m.JoinedAt,
		})
	}

	return &dto.CommunityDetailResponse{
		CommunityResponse: s.buildCommunityResponse(ctx, community, len(members), isMember),
		Members:           memberResponses,
	}, nil
}

func (s *communityServiceImpl) JoinCommunity(ctx context.Context, id, userID int64) error {
	if _, err := s.communityRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Add(ctx, id, userID)
}

func (s *communityServiceImpl) LeaveCommunity(ctx context.Context, id, userID int64) error {
	if _, err := s.communityRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Remove(ctx, id, userID)
}

func (s *communityServiceImpl) GetMembers(ctx context.Context, id int64) ([]dto.MemberResponse, error) {
	if _, err := s.communityRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.MemberResponse{
			UserID:    m.UserID,
			Username:  m.User.Username,
			FirstName: m.User.FirstName,
			LastName:  m.User.LastName,
			JoinedAt:  m.JoinedAt,
		})
	}
	return responses, nil
}

func (s *communityServiceImpl) UploadImage(ctx context.Context, id, userID int64, fileHeader *multipart.FileHeader) (*dto.FileUploadResponse, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if community.CreatorID != userID {
		return nil, apperrors.NewForbiddenError("only the community creator can change the image")
	}

	fileURL, err := s.storage.SaveFileWithPath(fileHeader, "communities")
	if err != nil {
		return nil, fmt.Errorf("error saving community image: %w", err)
	}

	relativePath := strings.TrimPrefix(fileURL, strings.TrimRight(s.storage.GetBaseURL(), "/"))
	relativePath = strings.TrimPrefix(relativePath, "/")

	file := &models.File{
		FileName:     fileHeader.Filename,
		FilePath:     relativePath,
		FileURL:      fileURL,
		FileSize:     fileHeader.Size,
		FileType:     fileHeader.Header.Get("Content-Type"),
		ResourceType: models.ResourceCommunityImage,
		UploadedBy:   userID,
	}
	fileID, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	if err := s.communityRepo.UpdateImageFileID(ctx, id, &fileID); err != nil {
		return nil, err
	}

	return &dto.FileUploadResponse{FileID: fileID, FileURL: file.FileURL}, nil
}

func (s *communityServiceImpl) buildCommunityResponse(ctx context.Context, c *models.Community, memberCount int, isMember bool) dto.CommunityResponse {
	resp := dto.CommunityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    string(c.Category),
		CreatorID:   c.CreatorID,
		MemberCount: memberCount,
		IsMember:    isMember,
		CreatedAt:   c.CreatedAt,
	}
	if c.ImageFileID != nil {
		if file, err := s.fileRepo.GetByID(ctx, *c.ImageFileID); err == nil {
			resp.ImageURL = file.FileURL
		}
	}
	return resp
}
