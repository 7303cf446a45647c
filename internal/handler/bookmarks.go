package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
)

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)

	bookmarked, err := h.store.ToggleBookmark(user.ID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnauthenticated):
			h.errorResponse(w, r, "用户未登录")
		case errors.Is(err, store.ErrNotFound):
			h.errorResponse(w, r, "职位不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	msg := "已取消收藏"
	if bookmarked {
		msg = "收藏成功"
	}

	h.successResponse(w, r, msg, struct {
		Bookmarked bool `json:"bookmarked"`
	}{Bookmarked: bookmarked})
}

func (h *Handler) IsBookmarked(w http.ResponseWriter, r *http.Request) {
	// 通过 optionalAuth 进入，未登录时 user 为 nil，返回未收藏
	userID := ""
	if user, ok := r.Context().Value(CurrentUserCtx).(*domain.User); ok {
		userID = user.ID
	}

	h.successResponse(w, r, "获取收藏状态成功", struct {
		Bookmarked bool `json:"bookmarked"`
	}{Bookmarked: h.store.IsBookmarked(userID, chi.URLParam(r, "id"))})
}

func (h *Handler) GetSavedListings(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)
	h.successResponse(w, r, "获取收藏职位成功", h.store.SavedListings(user.ID))
}
