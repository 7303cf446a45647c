package query_test

import (
	"fmt"
	"testing"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/query"
)

func makeListings(n int) []*domain.JobListing {
	listings := make([]*domain.JobListing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, makeListing(fmt.Sprintf("job_%02d", i), 3000, i))
	}
	return listings
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := query.TotalPages(c.total, c.pageSize); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestPaginate_TwelveResultsPageSizeFive(t *testing.T) {
	results := makeListings(12)

	if got := query.TotalPages(len(results), 5); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}

	page1 := query.Paginate(results, 1, 5)
	if len(page1) != 5 {
		t.Errorf("page 1 has %d items, want 5", len(page1))
	}
	if page1[0].ID != "job_00" {
		t.Errorf("page 1 starts at %s, want job_00", page1[0].ID)
	}

	page3 := query.Paginate(results, 3, 5)
	if len(page3) != 2 {
		t.Errorf("page 3 has %d items, want 2", len(page3))
	}
	if page3[0].ID != "job_10" {
		t.Errorf("page 3 starts at %s, want job_10", page3[0].ID)
	}

	page4 := query.Paginate(results, 4, 5)
	if len(page4) != 0 {
		t.Errorf("page 4 has %d items, want empty slice", len(page4))
	}
}

func TestPaginate_InvalidPageYieldsEmpty(t *testing.T) {
	results := makeListings(3)

	if got := query.Paginate(results, 0, 5); len(got) != 0 {
		t.Errorf("page 0 returned %d items, want empty", len(got))
	}
	if got := query.Paginate(results, -1, 5); len(got) != 0 {
		t.Errorf("page -1 returned %d items, want empty", len(got))
	}
	if got := query.Paginate(results, 1, 0); len(got) != 0 {
		t.Errorf("pageSize 0 returned %d items, want empty", len(got))
	}
}
