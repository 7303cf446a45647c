package store

import (
	"time"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/utils"
)

// CreateUser 创建用户并回填 ID 和时间戳，邮箱重复时返回 ErrEmailExists
func (s *Store) CreateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailExists
		}
	}

	for {
		user.ID = utils.GenerateEntityID("user")
		if s.findUserLocked(user.ID) == nil {
			break
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users = append(s.users, user)
	return nil
}

func (s *Store) GetUserByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findUserLocked(id); u != nil {
		return u, nil
	}
	return nil, ErrNotFound
}

func (s *Store) GetUserByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}
