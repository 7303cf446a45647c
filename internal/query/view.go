package query

import (
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
)

// View 把职位集合和一组查询参数绑定成一个可见结果视图。
// 重算是惰性的：连续修改多个输入只会在下一次读取时触发一次重算，
// 使用的永远是所有输入的最新值
type View struct {
	listings    []*domain.JobListing
	searchQuery string
	filters     Filters
	sortOption  SortOption
	page        int
	pageSize    int

	dirty   bool
	results []*domain.JobListing
}

func NewView(listings []*domain.JobListing, pageSize int) *View {
	return &View{
		listings:   listings,
		sortOption: SortNewest,
		page:       1,
		pageSize:   pageSize,
		dirty:      true,
	}
}

// SetListings 替换底层职位集合，不会重置页码
func (v *View) SetListings(listings []*domain.JobListing) {
	v.listings = listings
	v.dirty = true
}

// 修改搜索、过滤或排序中的任何一项都会把页码重置为 1，
// 页码只有相对于计算它的结果集才有意义
func (v *View) SetSearchQuery(query string) {
	v.searchQuery = query
	v.page = 1
	v.dirty = true
}

func (v *View) SetFilters(filters Filters) {
	v.filters = filters
	v.page = 1
	v.dirty = true
}

func (v *View) SetSortOption(sortOption SortOption) {
	v.sortOption = sortOption
	v.page = 1
	v.dirty = true
}

func (v *View) SetPage(page int) {
	v.page = page
}

func (v *View) Page() int {
	return v.page
}

func (v *View) recompute() {
	if !v.dirty {
		return
	}
	v.results = Apply(v.listings, v.searchQuery, v.filters, v.sortOption)
	v.dirty = false
}

// Results 返回当前页的职位窗口
func (v *View) Results() []*domain.JobListing {
	v.recompute()
	return Paginate(v.results, v.page, v.pageSize)
}

func (v *View) TotalPages() int {
	v.recompute()
	return TotalPages(len(v.results), v.pageSize)
}

func (v *View) TotalResults() int {
	v.recompute()
	return len(v.results)
}
