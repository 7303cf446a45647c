package store

import (
	"time"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/utils"
)

func (s *Store) generateListingIDLocked() string {
	for {
		id := utils.GenerateEntityID("job")
		if s.findListingIndexLocked(id) < 0 {
			return id
		}
	}
}

// CreateListing 以 authorID 为职位所有者创建职位，
// ID 和时间戳由 Store 生成并回填到 listing 上
func (s *Store) CreateListing(authorID string, listing *domain.JobListing) error {
	if authorID == "" {
		return ErrUnauthenticated
	}
	if listing.MonthlySalary <= 0 {
		return ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserLocked(authorID) == nil {
		return ErrNotFound
	}

	now := time.Now()
	listing.ID = s.generateListingIDLocked()
	listing.UserID = authorID
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Skills == nil {
		listing.Skills = []string{}
	}

	// 新职位插入到最前面，集合本身保持最新优先的顺序
	s.listings = append([]*domain.JobListing{listing}, s.listings...)
	return nil
}

// UpdateListing 只应用 patch 中非 nil 的槽位。
// 补丁先在副本上应用并校验，通过后才整体替换，保证不会出现部分更新
func (s *Store) UpdateListing(id string, authorID string, role domain.Role, patch *domain.ListingPatch) (*domain.JobListing, error) {
	if authorID == "" {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findListingIndexLocked(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	current := s.listings[idx]
	if current.UserID != authorID && role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	next := *current
	if patch.CompanyName != nil {
		next.CompanyName = *patch.CompanyName
	}
	if patch.CompanyLogoURL != nil {
		next.CompanyLogoURL = *patch.CompanyLogoURL
	}
	if patch.Position != nil {
		next.Position = *patch.Position
	}
	if patch.MonthlySalary != nil {
		next.MonthlySalary = *patch.MonthlySalary
	}
	if patch.JobType != nil {
		next.JobType = *patch.JobType
	}
	if patch.WorkLocation != nil {
		next.WorkLocation = *patch.WorkLocation
	}
	if patch.Location != nil {
		next.Location = *patch.Location
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.AboutCompany != nil {
		next.AboutCompany = *patch.AboutCompany
	}
	if patch.Skills != nil {
		next.Skills = append([]string(nil), (*patch.Skills)...)
	}
	if patch.AdditionalInfo != nil {
		next.AdditionalInfo = *patch.AdditionalInfo
	}

	if next.MonthlySalary <= 0 {
		return nil, ErrValidation
	}

	next.UpdatedAt = time.Now()
	s.listings[idx] = &next
	return &next, nil
}

// DeleteListing 删除职位并级联删除所有引用它的收藏，
// 返回被级联删除的收藏，方便调用方通知收藏者
func (s *Store) DeleteListing(id string, authorID string, role domain.Role) ([]*domain.Bookmark, error) {
	if authorID == "" {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findListingIndexLocked(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	current := s.listings[idx]
	if current.UserID != authorID && role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	s.listings = append(s.listings[:idx], s.listings[idx+1:]...)

	removed := make([]*domain.Bookmark, 0)
	kept := make([]*domain.Bookmark, 0, len(s.bookmarks))
	for _, bm := range s.bookmarks {
		if bm.ListingID == id {
			removed = append(removed, bm)
		} else {
			kept = append(kept, bm)
		}
	}
	s.bookmarks = kept

	return removed, nil
}

// GetListingByID 是公开读取，不做权限检查
func (s *Store) GetListingByID(id string) (*domain.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.findListingIndexLocked(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	return s.listings[idx], nil
}

func (s *Store) ListByOwner(userID string) []*domain.JobListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.JobListing, 0)
	for _, l := range s.listings {
		if l.UserID == userID {
			owned = append(owned, l)
		}
	}
	return owned
}

// AllListings 返回集合的快照，供查询管线只读使用
func (s *Store) AllListings() []*domain.JobListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*domain.JobListing(nil), s.listings...)
}
