package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/query"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
)

// parseFilters 从查询参数构建过滤配置，
// 非法的枚举值和数字直接忽略，列表接口没有错误路径
func parseFilters(r *http.Request) query.Filters {
	q := r.URL.Query()
	filters := query.Filters{
		Location: q.Get("location"),
	}

	for _, s := range q["jobType"] {
		if jt, err := domain.ParseJobType(s); err == nil {
			filters.JobTypes = append(filters.JobTypes, jt)
		}
	}
	for _, s := range q["workLocation"] {
		if wl, err := domain.ParseWorkLocation(s); err == nil {
			filters.WorkLocations = append(filters.WorkLocations, wl)
		}
	}

	if s := q.Get("salaryMin"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			filters.SalaryMin = &n
		}
	}
	if s := q.Get("salaryMax"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			filters.SalaryMax = &n
		}
	}

	return filters
}

func (h *Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sortOption := query.SortNewest
	if s := q.Get("sort"); s != "" {
		if so, err := query.ParseSortOption(s); err == nil {
			sortOption = so
		}
	}

	view := query.NewView(h.store.AllListings(), h.config.Pagination.PageSize)
	view.SetSearchQuery(q.Get("q"))
	view.SetFilters(parseFilters(r))
	view.SetSortOption(sortOption)
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		view.SetPage(page)
	}

	h.successResponse(w, r, "获取职位列表成功", struct {
		Listings     []*domain.JobListing `json:"listings"`
		Page         int                  `json:"page"`
		TotalPages   int                  `json:"totalPages"`
		TotalResults int                  `json:"totalResults"`
	}{
		Listings:     view.Results(),
		Page:         view.Page(),
		TotalPages:   view.TotalPages(),
		TotalResults: view.TotalResults(),
	})
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.store.GetListingByID(chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "职位不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取职位成功", listing)
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		CompanyName    string   `json:"companyName" validate:"required"`
		CompanyLogoURL string   `json:"companyLogoUrl" validate:"omitempty,url"`
		Position       string   `json:"position" validate:"required"`
		MonthlySalary  int64    `json:"monthlySalary" validate:"required,gt=0"`
		JobType        string   `json:"jobType" validate:"required,oneof=full-time part-time internship contract"`
		WorkLocation   string   `json:"workLocation" validate:"required,oneof=remote in-office hybrid"`
		Location       string   `json:"location" validate:"required"`
		Description    string   `json:"description" validate:"required"`
		AboutCompany   string   `json:"aboutCompany"`
		Skills         []string `json:"skills" validate:"required,min=1,dive,required"`
		AdditionalInfo string   `json:"additionalInfo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	listing := &domain.JobListing{
		CompanyName:    req.CompanyName,
		CompanyLogoURL: req.CompanyLogoURL,
		Position:       req.Position,
		MonthlySalary:  req.MonthlySalary,
		JobType:        domain.JobType(req.JobType),
		WorkLocation:   domain.WorkLocation(req.WorkLocation),
		Location:       req.Location,
		Description:    req.Description,
		AboutCompany:   req.AboutCompany,
		Skills:         req.Skills,
		AdditionalInfo: req.AdditionalInfo,
	}

	if err := h.store.CreateListing(user.ID, listing); err != nil {
		switch {
		case errors.Is(err, store.ErrUnauthenticated):
			h.errorResponse(w, r, "用户未登录")
		case errors.Is(err, store.ErrValidation):
			h.errorResponse(w, r, "薪资必须为正数")
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "发布者账号不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "职位发布成功", listing)
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		CompanyName    *string   `json:"companyName"`
		CompanyLogoURL *string   `json:"companyLogoUrl" validate:"omitempty,url"`
		Position       *string   `json:"position"`
		MonthlySalary  *int64    `json:"monthlySalary" validate:"omitempty,gt=0"`
		JobType        *string   `json:"jobType" validate:"omitempty,oneof=full-time part-time internship contract"`
		WorkLocation   *string   `json:"workLocation" validate:"omitempty,oneof=remote in-office hybrid"`
		Location       *string   `json:"location"`
		Description    *string   `json:"description"`
		AboutCompany   *string   `json:"aboutCompany"`
		Skills         *[]string `json:"skills" validate:"omitempty,min=1,dive,required"`
		AdditionalInfo *string   `json:"additionalInfo"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := &domain.ListingPatch{
		CompanyName:    req.CompanyName,
		CompanyLogoURL: req.CompanyLogoURL,
		Position:       req.Position,
		MonthlySalary:  req.MonthlySalary,
		Location:       req.Location,
		Description:    req.Description,
		AboutCompany:   req.AboutCompany,
		Skills:         req.Skills,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.JobType != nil {
		jt := domain.JobType(*req.JobType)
		patch.JobType = &jt
	}
	if req.WorkLocation != nil {
		wl := domain.WorkLocation(*req.WorkLocation)
		patch.WorkLocation = &wl
	}

	listing, err := h.store.UpdateListing(chi.URLParam(r, "id"), user.ID, user.Role, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "职位不存在")
		case errors.Is(err, store.ErrForbidden):
			h.errorResponse(w, r, "只能修改自己发布的职位")
		case errors.Is(err, store.ErrValidation):
			h.errorResponse(w, r, "薪资必须为正数")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "职位更新成功", listing)
}

func (h *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)
	id := chi.URLParam(r, "id")

	// 删除前先取出职位信息，级联通知邮件需要职位名称
	listing, err := h.store.GetListingByID(id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "职位不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	removed, err := h.store.DeleteListing(id, user.ID, user.Role)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "职位不存在")
		case errors.Is(err, store.ErrForbidden):
			h.errorResponse(w, r, "只能删除自己发布的职位")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 通知收藏了该职位的用户，通知失败不影响删除结果
	for _, bm := range removed {
		owner, err := h.store.GetUserByID(bm.UserID)
		if err != nil {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: "listing_removed",
			To:   owner.Email,
			Data: domain.ListingRemovedMailData{
				Name:        owner.Name,
				Position:    listing.Position,
				CompanyName: listing.CompanyName,
			},
		}
		if err := h.publishMail(mailMessage); err != nil {
			slog.Warn("无法发送职位下架通知", "email", owner.Email, "error", err)
		}
	}

	h.successResponse(w, r, "职位删除成功", nil)
}

func (h *Handler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)
	h.successResponse(w, r, "获取我发布的职位成功", h.store.ListByOwner(user.ID))
}
