package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	CommunityRepository  *CommunityRepository
	MemberRepository     *MemberRepository
	PostRepository       *PostRepository
	MessageRepository    *MessageRepository
	MeetingRepository    *MeetingRepository
	OnboardingRepository *OnboardingRepository
	MentorRepository     *MentorRepository
	FileRepository       *FileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		CommunityRepository:  NewCommunityRepository(db),
		MemberRepository:     NewMemberRepository(db),
		PostRepository:       NewPostRepository(db),
		MessageRepository:    NewMessageRepository(db),
		MeetingRepository:    NewMeetingRepository(db),
		OnboardingRepository: NewOnboardingRepository(db),
		MentorRepository:     NewMentorRepository(db),
		FileRepository:       NewFileRepository(db),
	}
}
