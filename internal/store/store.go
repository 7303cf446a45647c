package store

import (
	"errors"
	"sync"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrEmailExists     = errors.New("email already exists")
)

// Store 是所有用户、职位和收藏的唯一数据源，
// 所有集合只允许通过 Store 自身的方法修改
type Store struct {
	mu        sync.RWMutex
	users     []*domain.User
	listings  []*domain.JobListing
	bookmarks []*domain.Bookmark
}

func NewStore() *Store {
	return &Store{
		users:     make([]*domain.User, 0),
		listings:  make([]*domain.JobListing, 0),
		bookmarks: make([]*domain.Bookmark, 0),
	}
}

func (s *Store) findUserLocked(id string) *domain.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) findListingIndexLocked(id string) int {
	for i, l := range s.listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}
