package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
)

type SortOption string

const (
	SortNewest     SortOption = "newest"
	SortOldest     SortOption = "oldest"
	SortSalaryHigh SortOption = "salary-high"
	SortSalaryLow  SortOption = "salary-low"
)

func ParseSortOption(s string) (SortOption, error) {
	so := SortOption(s)
	switch so {
	case SortNewest, SortOldest, SortSalaryHigh, SortSalaryLow:
		return so, nil
	}
	return "", fmt.Errorf("未知的排序方式 %q", s)
}

// Filters 是一次查询的过滤配置，空集合或空字符串表示不限制，
// 薪资上下界为 nil 时表示对应方向无界
type Filters struct {
	JobTypes      []domain.JobType
	WorkLocations []domain.WorkLocation
	Location      string
	SalaryMin     *int64
	SalaryMax     *int64
}

func matchesSearch(l *domain.JobListing, query string) bool {
	if strings.Contains(strings.ToLower(l.Position), query) ||
		strings.Contains(strings.ToLower(l.CompanyName), query) ||
		strings.Contains(strings.ToLower(l.Description), query) {
		return true
	}
	for _, skill := range l.Skills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

// Apply 对职位集合依次执行搜索、过滤和排序，返回新的有序切片。
// 各个阶段的顺序是固定的，相同输入总是产生相同的输出；
// 输入集合本身不会被修改
func Apply(listings []*domain.JobListing, searchQuery string, filters Filters, sortOption SortOption) []*domain.JobListing {
	result := make([]*domain.JobListing, 0, len(listings))

	// 搜索：在职位名称、公司名称、描述和技能中做大小写无关的子串匹配
	if searchQuery != "" {
		query := strings.ToLower(searchQuery)
		for _, l := range listings {
			if matchesSearch(l, query) {
				result = append(result, l)
			}
		}
	} else {
		result = append(result, listings...)
	}

	// 工作类型过滤，空集合表示不限制
	if len(filters.JobTypes) > 0 {
		kept := result[:0]
		for _, l := range result {
			for _, jt := range filters.JobTypes {
				if l.JobType == jt {
					kept = append(kept, l)
					break
				}
			}
		}
		result = kept
	}

	// 办公方式过滤
	if len(filters.WorkLocations) > 0 {
		kept := result[:0]
		for _, l := range result {
			for _, wl := range filters.WorkLocations {
				if l.WorkLocation == wl {
					kept = append(kept, l)
					break
				}
			}
		}
		result = kept
	}

	// 工作地点子串过滤
	if filters.Location != "" {
		location := strings.ToLower(filters.Location)
		kept := result[:0]
		for _, l := range result {
			if strings.Contains(strings.ToLower(l.Location), location) {
				kept = append(kept, l)
			}
		}
		result = kept
	}

	// 薪资下界和上界，下界大于上界时自然得到空结果
	if filters.SalaryMin != nil {
		kept := result[:0]
		for _, l := range result {
			if l.MonthlySalary >= *filters.SalaryMin {
				kept = append(kept, l)
			}
		}
		result = kept
	}
	if filters.SalaryMax != nil {
		kept := result[:0]
		for _, l := range result {
			if l.MonthlySalary <= *filters.SalaryMax {
				kept = append(kept, l)
			}
		}
		result = kept
	}

	// 稳定排序，排序键相同的职位保持集合中的相对顺序
	switch sortOption {
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case SortSalaryHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].MonthlySalary > result[j].MonthlySalary
		})
	case SortSalaryLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].MonthlySalary < result[j].MonthlySalary
		})
	}

	return result
}
