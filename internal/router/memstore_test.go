package router

import (
	"context"
	"sort"
	"sync"

	"declutter/internal/model"
	"declutter/internal/repository"
)

// memStore keeps every entity in memory and satisfies the four repository
// interfaces with the same ordering guarantees as the real backends.
type memStore struct {
	mu            sync.Mutex
	users         map[string]*model.User
	posts         []model.Post
	comments      []model.Comment
	notifications []model.Notification
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*model.User)}
}

type memUsers struct{ *memStore }
type memPosts struct{ *memStore }
type memComments struct{ *memStore }
type memNotifications struct{ *memStore }

func (s memUsers) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrDuplicate
	}
	if user.ID == "" {
		user.ID = model.NewID()
	}
	u := *user
	s.users[user.Email] = &u
	return nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s memUsers) UpdateProfileImage(_ context.Context, email, image string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.ProfileImage = &image
	out := *u
	return &out, nil
}

func (s memPosts) Create(_ context.Context, post *model.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == "" {
		post.ID = model.NewID()
	}
	s.posts = append(s.posts, *post)
	return nil
}

func (s memPosts) find(id string) (*model.Post, bool) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, true
		}
	}
	return nil, false
}

func (s memPosts) FindByID(_ context.Context, id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.find(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s memPosts) ListByEmail(_ context.Context, email string) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Post{}
	for i := len(s.posts) - 1; i >= 0; i-- {
		if s.posts[i].Email == email {
			out = append(out, s.posts[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s memPosts) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s memComments) Create(_ context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID == "" {
		comment.ID = model.NewID()
	}
	s.comments = append(s.comments, *comment)
	return nil
}

func (s memComments) ListByPost(_ context.Context, postID string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Comment{}
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s memNotifications) Create(_ context.Context, notification *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if notification.ID == "" {
		notification.ID = model.NewID()
	}
	n := *notification
	n.Post = nil
	s.notifications = append(s.notifications, n)
	return nil
}

func (s memNotifications) ListByRecipient(_ context.Context, email string) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Notification{}
	for i := len(s.notifications) - 1; i >= 0; i-- {
		n := s.notifications[i]
		if n.ToEmail != email {
			continue
		}
		if p, ok := memPosts(s).find(n.PostID); ok {
			n.Post = p
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
