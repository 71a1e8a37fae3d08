package services

import (
	"context"
	"time"

	"github.com/unitycircles/backend/internal/app/models"
	"github.com/unitycircles/backend/internal/app/repositories"
	"github.com/unitycircles/backend/internal/pkg/apperrors"
)

// In-memory stand-ins for the pgx repositories, keeping the same lookup and
// uniqueness behavior the SQL layer enforces.

type fakeUserStore struct {
	users    map[int64]*models.User
	profiles map[int64]*models.Profile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int64]*models.User),
		profiles: make(map[int64]*models.Profile),
	}
}

func (f *fakeUserStore) addUser(u *models.User) {
	f.users[u.ID] = u
	f.profiles[u.ID] = &models.Profile{ID: u.ID, UserID: u.ID, Role: models.RoleStudent}
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetProfileByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return p, nil
}

func (f *fakeUserStore) UpdateUserAndProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	f.profiles[user.ID] = profile
	return nil
}

func (f *fakeUserStore) UpdateProfilePhotoFileID(_ context.Context, userID int64, fileID *int64) error {
	p, ok := f.profiles[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	p.ProfilePhotoFileID = fileID
	return nil
}

func (f *fakeUserStore) ListAllExcept(_ context.Context, userID int64) ([]*models.User, error) {
	var out []*models.User
	for id, u := range f.users {
		if id != userID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeFileStore struct {
	files  map[int64]*models.File
	nextID int64
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[int64]*models.File)}
}

func (f *fakeFileStore) Create(_ context.Context, file *models.File) (int64, error) {
	f.nextID++
	file.ID = f.nextID
	f.files[file.ID] = file
	return file.ID, nil
}

func (f *fakeFileStore) GetByID(_ context.Context, id int64) (*models.File, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return file, nil
}

type fakeCommunityStore struct {
	communities map[int64]*models.Community
	nextID      int64
}

func newFakeCommunityStore() *fakeCommunityStore {
	return &fakeCommunityStore{communities: make(map[int64]*models.Community)}
}

func (f *fakeCommunityStore) add(c *models.Community) {
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	}
	f.communities[c.ID] = c
}

func (f *fakeCommunityStore) Create(_ context.Context, community *models.Community) error {
	f.nextID++
	community.ID = f.nextID
	community.CreatedAt = time.Now()
	f.communities[community.ID] = community
	return nil
}

func (f *fakeCommunityStore) GetAll(_ context.Context, _ repositories.CommunityFilter) ([]*models.Community, map[int64]int, error) {
	var out []*models.Community
	for _, c := range f.communities {
		out = append(out, c)
	}
	return out, map[int64]int{}, nil
}

func (f *fakeCommunityStore) GetByID(_ context.Context, id int64) (*models.Community, error) {
	c, ok := f.communities[id]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}
	return c, nil
}

func (f *fakeCommunityStore) UpdateImageFileID(_ context.Context, communityID int64, fileID *int64) error {
	c, ok := f.communities[communityID]
	if !ok {
		return apperrors.ErrCommunityNotFound
	}
	c.ImageFileID = fileID
	return nil
}

// fakeMemberStore keeps membership as a set per community, so adding the same
// pair twice leaves a single row, mirroring the unique constraint upsert.
type fakeMemberStore struct {
	members map[int64]map[int64]time.Time
}

func newFakeMemberStore() *fakeMemberStore {
	return &fakeMemberStore{members: make(map[int64]map[int64]time.Time)}
}

func (f *fakeMemberStore) Add(_ context.Context, communityID, userID int64) error {
	if f.members[communityID] == nil {
		f.members[communityID] = make(map[int64]time.Time)
	}
	if _, ok := f.members[communityID][userID]; !ok {
		f.members[communityID][userID] = time.Now()
	}
	return nil
}

func (f *fakeMemberStore) Remove(_ context.Context, communityID, userID int64) error {
	delete(f.members[communityID], userID)
	return nil
}

func (f *fakeMemberStore) IsMember(_ context.Context, communityID, userID int64) (bool, error) {
	_, ok := f.members[communityID][userID]
	return ok, nil
}

func (f *fakeMemberStore) GetMembers(_ context.Context, communityID int64) ([]*models.CommunityMember, error) {
	var out []*models.CommunityMember
	for userID, joined := range f.members[communityID] {
		out = append(out, &models.CommunityMember{
			CommunityID: communityID,
			UserID:      userID,
			JoinedAt:    joined,
			User:        &models.User{ID: userID},
		})
	}
	return out, nil
}

type fakePostStore struct {
	posts    map[int64]*models.Post
	comments map[int64][]*models.PostComment
	users    *fakeUserStore
	nextID   int64
}

func newFakePostStore(users *fakeUserStore) *fakePostStore {
	return &fakePostStore{
		posts:    make(map[int64]*models.Post),
		comments: make(map[int64][]*models.PostComment),
		users:    users,
	}
}

func (f *fakePostStore) Create(_ context.Context, post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostStore) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	if author, ok := f.users.users[p.AuthorID]; ok {
		p.Author = author
	}
	return p, nil
}

func (f *fakePostStore) GetByCommunity(_ context.Context, communityID int64) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range f.posts {
		if p.CommunityID == communityID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostStore) GetCommentsByPost(_ context.Context, postID int64) ([]*models.PostComment, error) {
	return f.comments[postID], nil
}

func (f *fakePostStore) IncrementUpvotes(_ context.Context, postID int64) (int, int, error) {
	p, ok := f.posts[postID]
	if !ok {
		return 0, 0, apperrors.ErrPostNotFound
	}
	p.Upvotes++
	return p.Upvotes, p.Downvotes, nil
}

func (f *fakePostStore) IncrementDownvotes(_ context.Context, postID int64) (int, int, error) {
	p, ok := f.posts[postID]
	if !ok {
		return 0, 0, apperrors.ErrPostNotFound
	}
	p.Downvotes++
	return p.Upvotes, p.Downvotes, nil
}

func (f *fakePostStore) CreateComment(_ context.Context, comment *models.PostComment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	f.comments[comment.PostID] = append(f.comments[comment.PostID], comment)
	return nil
}

func (f *fakePostStore) IncrementCommentUpvotes(_ context.Context, commentID int64) (int, error) {
	for _, list := range f.comments {
		for _, c := range list {
			if c.ID == commentID {
				c.Upvotes++
				return c.Upvotes, nil
			}
		}
	}
	return 0, apperrors.ErrCommentNotFound
}

// fakeMessageStore appends messages in send order and filters threads with the
// same symmetric sender/receiver predicate the SQL query uses.
type fakeMessageStore struct {
	messages []*models.DirectMessage
	users    *fakeUserStore
	nextID   int64
}

func newFakeMessageStore(users *fakeUserStore) *fakeMessageStore {
	return &fakeMessageStore{users: users}
}

func (f *fakeMessageStore) Create(_ context.Context, message *models.DirectMessage) error {
	f.nextID++
	message.ID = f.nextID
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageStore) GetAllForUser(_ context.Context, userID int64) ([]*models.DirectMessage, error) {
	var out []*models.DirectMessage
	for _, m := range f.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, f.withUsers(m))
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetThread(_ context.Context, userID, otherID int64) ([]*models.DirectMessage, error) {
	var out []*models.DirectMessage
	for _, m := range f.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			out = append(out, f.withUsers(m))
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetConversationPartners(_ context.Context, userID int64) ([]*models.User, error) {
	seen := make(map[int64]bool)
	var out []*models.User
	for _, m := range f.messages {
		var partnerID int64
		switch userID {
		case m.SenderID:
			partnerID = m.ReceiverID
		case m.ReceiverID:
			partnerID = m.SenderID
		default:
			continue
		}
		if !seen[partnerID] {
			seen[partnerID] = true
			if u, ok := f.users.users[partnerID]; ok {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeMessageStore) withUsers(m *models.DirectMessage) *models.DirectMessage {
	if u, ok := f.users.users[m.SenderID]; ok {
		m.Sender = u
	}
	if u, ok := f.users.users[m.ReceiverID]; ok {
		m.Receiver = u
	}
	return m
}
