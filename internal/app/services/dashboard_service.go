package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/models/dto"
	"github.com/unitycircles/backend/internal/app/repositories"
)

const (
	recentPostLimit        = 5
	recommendedMentorLimit = 3
)

// DashboardService aggregates the user's landing page data
type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
}

// dashboardServiceImpl implements DashboardService
type dashboardServiceImpl struct {
	mentorRepo  *repositories.MentorRepository
	memberRepo  *repositories.MemberRepository
	messageRepo *repositories.MessageRepository
	meetingRepo *repositories.MeetingRepository
	postRepo    *repositories.PostRepository
	logger      zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	mentorRepo *repositories.MentorRepository,
	memberRepo *repositories.MemberRepository,
	messageRepo *repositories.MessageRepository,
	meetingRepo *repositories.MeetingRepository,
	postRepo *repositories.PostRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		mentorRepo:  mentorRepo,
		memberRepo:  memberRepo,
		messageRepo: messageRepo,
		meetingRepo: meetingRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	mentorsCount, err := s.mentorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	communitiesCount, err := s.memberRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	messagesCount, err := s.messageRepo.CountReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	meetingsCount, err := s.meetingRepo.CountScheduledForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentPosts, err := s.postRepo.GetRecentForUser(ctx, userID, recentPostLimit)
	if err != nil {
		return nil, err
	}
	recommended, err := s.mentorRepo.GetRecommended(ctx, recommendedMentorLimit)
	if err != nil {
		return nil, err
	}

	postResponses := make([]dto.PostResponse, 0, len(recentPosts))
	for _, p := range recentPosts {
		postResponses = append(postResponses, buildDashboardPost(p))
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			MentorsCount:     mentorsCount,
			CommunitiesCount: communitiesCount,
			MessagesCount:    messagesCount,
			MeetingsCount:    meetingsCount,
		},
		RecentPosts:        postResponses,
		RecommendedMentors: buildMentorResponses(recommended),
	}, nil
}

func buildDashboardPost(p *models.Post) dto.PostResponse {
	resp := dto.PostResponse{
		ID:          p.ID,
		CommunityID: p.CommunityID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Content:     p.Content,
		Upvotes:     p.Upvotes,
		Downvotes:   p.Downvotes,
		CreatedAt:   p.CreatedAt,
	}
	if p.Author != nil {
		resp.AuthorUsername = p.Author.Username
	}
	return resp
}
