package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/config"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	store       *store.Store
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, st *store.Store, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		store:       st,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 职位相关，浏览是公开的，发布和修改需要登录
	h.Mux.Route("/listings", func(r chi.Router) {
		r.Get("/", h.ListListings)
		r.With(h.auth).Post("/", h.CreateListing)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetListing)
			// 收藏状态对未登录用户返回 false 而不是报错
			r.With(h.optionalAuth).Get("/bookmarked", h.IsBookmarked)
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Patch("/", h.UpdateListing)
				r.Delete("/", h.DeleteListing)
				r.Post("/bookmark", h.ToggleBookmark)
			})
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/my-info", h.GetMyInfo)
		r.Get("/my-listings", h.GetMyListings)
		r.Get("/bookmarks", h.GetSavedListings)
	})
}
