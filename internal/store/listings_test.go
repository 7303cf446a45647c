package store_test

import (
	"errors"
	"testing"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *domain.User, *domain.User, *domain.User) {
	t.Helper()
	st := store.NewStore()

	alice := &domain.User{Email: "alice@example.com", Name: "Alice", Role: domain.RoleUser}
	bob := &domain.User{Email: "bob@example.com", Name: "Bob", Role: domain.RoleUser}
	admin := &domain.User{Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin}
	for _, u := range []*domain.User{alice, bob, admin} {
		if err := st.CreateUser(u); err != nil {
			t.Fatalf("CreateUser(%s): %v", u.Email, err)
		}
	}

	return st, alice, bob, admin
}

func newListing(salary int64) *domain.JobListing {
	return &domain.JobListing{
		CompanyName:   "Acme",
		Position:      "Backend Engineer",
		MonthlySalary: salary,
		JobType:       domain.JobTypeFullTime,
		WorkLocation:  domain.WorkLocationRemote,
		Location:      "Guangzhou",
		Description:   "build services",
		Skills:        []string{"Go", "PostgreSQL"},
	}
}

func mustCreateListing(t *testing.T, st *store.Store, owner *domain.User, salary int64) *domain.JobListing {
	t.Helper()
	listing := newListing(salary)
	if err := st.CreateListing(owner.ID, listing); err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	return listing
}

func strp(s string) *string { return &s }
func int64p(n int64) *int64 { return &n }

func TestCreateListing_FillsGeneratedFields(t *testing.T) {
	st, alice, _, _ := newTestStore(t)

	listing := mustCreateListing(t, st, alice, 5000)

	if listing.ID == "" {
		t.Error("ID was not generated")
	}
	if listing.UserID != alice.ID {
		t.Errorf("UserID = %s, want %s", listing.UserID, alice.ID)
	}
	if listing.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
	if listing.UpdatedAt.Before(listing.CreatedAt) {
		t.Error("UpdatedAt is before CreatedAt")
	}
}

func TestCreateListing_PrependsToCollection(t *testing.T) {
	st, alice, _, _ := newTestStore(t)

	first := mustCreateListing(t, st, alice, 3000)
	second := mustCreateListing(t, st, alice, 4000)

	all := st.AllListings()
	if len(all) != 2 {
		t.Fatalf("AllListings has %d items, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("store order = [%s %s], want newest first [%s %s]", all[0].ID, all[1].ID, second.ID, first.ID)
	}
}

func TestCreateListing_Unauthenticated(t *testing.T) {
	st, _, _, _ := newTestStore(t)

	err := st.CreateListing("", newListing(5000))
	if !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("err = %v, want ErrUnauthenticated", err)
	}
	if len(st.AllListings()) != 0 {
		t.Error("failed create must not mutate the collection")
	}
}

func TestCreateListing_UnknownAuthor(t *testing.T) {
	st, _, _, _ := newTestStore(t)

	err := st.CreateListing("user_ghost", newListing(5000))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateListing_NonPositiveSalary(t *testing.T) {
	st, alice, _, _ := newTestStore(t)

	for _, salary := range []int64{0, -100} {
		err := st.CreateListing(alice.ID, newListing(salary))
		if !errors.Is(err, store.ErrValidation) {
			t.Errorf("salary %d: err = %v, want ErrValidation", salary, err)
		}
	}
	if len(st.AllListings()) != 0 {
		t.Error("failed create must not mutate the collection")
	}
}

func TestUpdateListing_AppliesOnlyPopulatedSlots(t *testing.T) {
	st, alice, _, _ := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	updated, err := st.UpdateListing(listing.ID, alice.ID, alice.Role, &domain.ListingPatch{
		Position:      strp("Senior Backend Engineer"),
		MonthlySalary: int64p(8000),
	})
	if err != nil {
		t.Fatalf("UpdateListing: %v", err)
	}

	if updated.Position != "Senior Backend Engineer" {
		t.Errorf("Position = %s, want Senior Backend Engineer", updated.Position)
	}
	if updated.MonthlySalary != 8000 {
		t.Errorf("MonthlySalary = %d, want 8000", updated.MonthlySalary)
	}
	if updated.CompanyName != "Acme" {
		t.Errorf("CompanyName = %s, want unchanged Acme", updated.CompanyName)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("UpdatedAt is before CreatedAt")
	}
}

func TestUpdateListing_ForbiddenForNonOwner(t *testing.T) {
	st, alice, bob, _ := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	_, err := st.UpdateListing(listing.ID, bob.ID, bob.Role, &domain.ListingPatch{
		MonthlySalary: int64p(1),
	})
	if !errors.Is(err, store.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// 失败的更新不能留下任何改动
	got, err := st.GetListingByID(listing.ID)
	if err != nil {
		t.Fatalf("GetListingByID: %v", err)
	}
	if got.MonthlySalary != 5000 {
		t.Errorf("MonthlySalary = %d, listing changed after forbidden update", got.MonthlySalary)
	}
}

func TestUpdateListing_AdminMayUpdateAnyListing(t *testing.T) {
	st, alice, _, admin := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	updated, err := st.UpdateListing(listing.ID, admin.ID, admin.Role, &domain.ListingPatch{
		Location: strp("Shenzhen"),
	})
	if err != nil {
		t.Fatalf("UpdateListing as admin: %v", err)
	}
	if updated.Location != "Shenzhen" {
		t.Errorf("Location = %s, want Shenzhen", updated.Location)
	}
}

func TestUpdateListing_InvalidSalaryLeavesListingUnchanged(t *testing.T) {
	st, alice, _, _ := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	_, err := st.UpdateListing(listing.ID, alice.ID, alice.Role, &domain.ListingPatch{
		Position:      strp("Changed"),
		MonthlySalary: int64p(-1),
	})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	got, _ := st.GetListingByID(listing.ID)
	if got.Position != "Backend Engineer" {
		t.Errorf("Position = %s, partial mutation leaked", got.Position)
	}
}

func TestUpdateListing_NotFound(t *testing.T) {
	st, alice, _, _ := newTestStore(t)

	_, err := st.UpdateListing("job_ghost", alice.ID, alice.Role, &domain.ListingPatch{})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteListing_ForbiddenForNonOwner(t *testing.T) {
	st, alice, bob, _ := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	_, err := st.DeleteListing(listing.ID, bob.ID, bob.Role)
	if !errors.Is(err, store.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if _, err := st.GetListingByID(listing.ID); err != nil {
		t.Error("listing disappeared after forbidden delete")
	}
}

func TestDeleteListing_SecondDeleteFailsWithNotFound(t *testing.T) {
	st, alice, _, _ := newTestStore(t)
	listing := mustCreateListing(t, st, alice, 5000)

	if _, err := st.DeleteListing(listing.ID, alice.ID, alice.Role); err != nil {
		t.Fatalf("first delete: %v", err)
	}

	_, err := st.DeleteListing(listing.ID, alice.ID, alice.Role)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestListByOwner(t *testing.T) {
	st, alice, bob, _ := newTestStore(t)
	mine := mustCreateListing(t, st, alice, 3000)
	mustCreateListing(t, st, bob, 4000)
	mineToo := mustCreateListing(t, st, alice, 5000)

	owned := st.ListByOwner(alice.ID)
	if len(owned) != 2 {
		t.Fatalf("ListByOwner returned %d listings, want 2", len(owned))
	}
	// 保持集合顺序（最新优先）
	if owned[0].ID != mineToo.ID || owned[1].ID != mine.ID {
		t.Errorf("ListByOwner order = [%s %s], want [%s %s]", owned[0].ID, owned[1].ID, mineToo.ID, mine.ID)
	}
}
