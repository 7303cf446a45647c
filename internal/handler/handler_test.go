package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/config"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/handler"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
)

func newTestHandler(t *testing.T) (*handler.Handler, *store.Store, *domain.User) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Pagination.PageSize = 5

	st := store.NewStore()
	owner := &domain.User{Email: "owner@example.com", Name: "Owner", Role: domain.RoleUser}
	if err := st.CreateUser(owner); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	h, err := handler.NewHandler(cfg, st, nil, nil)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	h.RegisterRoutes()

	return h, st, owner
}

func seedListings(t *testing.T, st *store.Store, owner *domain.User, n int) []*domain.JobListing {
	t.Helper()
	listings := make([]*domain.JobListing, 0, n)
	for i := 0; i < n; i++ {
		l := &domain.JobListing{
			CompanyName:   "Acme",
			Position:      fmt.Sprintf("Engineer %d", i),
			MonthlySalary: int64(3000 + i*1000),
			JobType:       domain.JobTypeFullTime,
			WorkLocation:  domain.WorkLocationRemote,
			Location:      "Guangzhou",
			Description:   "build services",
			Skills:        []string{"Go"},
		}
		if err := st.CreateListing(owner.ID, l); err != nil {
			t.Fatalf("CreateListing: %v", err)
		}
		listings = append(listings, l)
	}
	return listings
}

func doRequest(t *testing.T, h *handler.Handler, method string, target string) handler.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("%s %s returned status %d", method, target, rec.Code)
	}

	resp := handler.Response{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestListListings_Pagination(t *testing.T) {
	h, st, owner := newTestHandler(t)
	seedListings(t, st, owner, 7)

	resp := doRequest(t, h, http.MethodGet, "/listings")
	if !resp.Success {
		t.Fatalf("response not successful: %s", resp.Message)
	}

	data := resp.Data.(map[string]any)
	if got := data["totalResults"].(float64); got != 7 {
		t.Errorf("totalResults = %v, want 7", got)
	}
	if got := data["totalPages"].(float64); got != 2 {
		t.Errorf("totalPages = %v, want 2", got)
	}
	if got := len(data["listings"].([]any)); got != 5 {
		t.Errorf("page 1 has %d listings, want 5", got)
	}

	resp = doRequest(t, h, http.MethodGet, "/listings?page=2")
	data = resp.Data.(map[string]any)
	if got := len(data["listings"].([]any)); got != 2 {
		t.Errorf("page 2 has %d listings, want 2", got)
	}

	resp = doRequest(t, h, http.MethodGet, "/listings?page=3")
	data = resp.Data.(map[string]any)
	if got := len(data["listings"].([]any)); got != 0 {
		t.Errorf("page 3 has %d listings, want 0", got)
	}
}

func TestListListings_FilterAndSortParams(t *testing.T) {
	h, st, owner := newTestHandler(t)
	seedListings(t, st, owner, 7) // 薪资 3000 ~ 9000

	resp := doRequest(t, h, http.MethodGet, "/listings?salaryMin=8000&sort=salary-low")
	data := resp.Data.(map[string]any)

	if got := data["totalResults"].(float64); got != 2 {
		t.Fatalf("totalResults = %v, want 2", got)
	}
	listings := data["listings"].([]any)
	first := listings[0].(map[string]any)
	if got := first["monthlySalary"].(float64); got != 8000 {
		t.Errorf("first listing salary = %v, want 8000 under salary-low sort", got)
	}
}

func TestListListings_SearchParam(t *testing.T) {
	h, st, owner := newTestHandler(t)
	seedListings(t, st, owner, 3)

	special := &domain.JobListing{
		CompanyName:   "Globex",
		Position:      "Frontend Developer",
		MonthlySalary: 6000,
		JobType:       domain.JobTypeContract,
		WorkLocation:  domain.WorkLocationHybrid,
		Location:      "Shenzhen",
		Description:   "web apps",
		Skills:        []string{"React"},
	}
	if err := st.CreateListing(owner.ID, special); err != nil {
		t.Fatalf("CreateListing: %v", err)
	}

	resp := doRequest(t, h, http.MethodGet, "/listings?q=react")
	data := resp.Data.(map[string]any)
	if got := data["totalResults"].(float64); got != 1 {
		t.Fatalf("totalResults = %v, want 1", got)
	}
}

func TestGetListing(t *testing.T) {
	h, st, owner := newTestHandler(t)
	listings := seedListings(t, st, owner, 1)

	resp := doRequest(t, h, http.MethodGet, "/listings/"+listings[0].ID)
	if !resp.Success {
		t.Fatalf("response not successful: %s", resp.Message)
	}

	resp = doRequest(t, h, http.MethodGet, "/listings/job_ghost")
	if resp.Success {
		t.Error("expected failure for unknown listing id")
	}
}
