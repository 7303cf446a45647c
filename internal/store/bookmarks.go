package store

import (
	"time"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/utils"
)

func (s *Store) findBookmarkIndexLocked(userID string, listingID string) int {
	for i, bm := range s.bookmarks {
		if bm.UserID == userID && bm.ListingID == listingID {
			return i
		}
	}
	return -1
}

// ToggleBookmark 翻转 (userID, listingID) 的收藏状态，
// 返回翻转之后是否处于已收藏状态。连续调用两次会回到原始状态
func (s *Store) ToggleBookmark(userID string, listingID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findListingIndexLocked(listingID) < 0 {
		return false, ErrNotFound
	}

	if idx := s.findBookmarkIndexLocked(userID, listingID); idx >= 0 {
		s.bookmarks = append(s.bookmarks[:idx], s.bookmarks[idx+1:]...)
		return false, nil
	}

	bm := &domain.Bookmark{
		ID:        utils.GenerateEntityID("bm"),
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}
	s.bookmarks = append(s.bookmarks, bm)
	return true, nil
}

// IsBookmarked 只在当前用户自己的收藏范围内查询，
// 未登录时返回 false 而不是错误
func (s *Store) IsBookmarked(userID string, listingID string) bool {
	if userID == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findBookmarkIndexLocked(userID, listingID) >= 0
}

// SavedListings 按职位集合的原始顺序返回该用户收藏的职位
func (s *Store) SavedListings(userID string) []*domain.JobListing {
	if userID == "" {
		return []*domain.JobListing{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := make(map[string]struct{})
	for _, bm := range s.bookmarks {
		if bm.UserID == userID {
			saved[bm.ListingID] = struct{}{}
		}
	}

	listings := make([]*domain.JobListing, 0, len(saved))
	for _, l := range s.listings {
		if _, ok := saved[l.ID]; ok {
			listings = append(listings, l)
		}
	}
	return listings
}
