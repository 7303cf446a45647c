package query

import (
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
)

// TotalPages 向上取整，结果为 0 时表示没有可分页的内容
func TotalPages(total int, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate 返回第 page 页（从 1 开始）的窗口，
// 超出范围的页码返回空切片而不是错误
func Paginate(results []*domain.JobListing, page int, pageSize int) []*domain.JobListing {
	if page < 1 || pageSize <= 0 {
		return []*domain.JobListing{}
	}

	start := (page - 1) * pageSize
	if start >= len(results) {
		return []*domain.JobListing{}
	}

	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}
