package seed

import (
	"log/slog"
	"math/rand"

	"github.com/sysu-ecnc-dev/job-board/backend/internal/config"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/store"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/utils"
)

// Seed 在开发环境启动时向内存 Store 填充随机用户和职位
func Seed(st *store.Store, cfg *config.Config) {
	userIDs := make([]string, 0, cfg.Seed.Users)

	userCnt := 0
	for i := 0; i < cfg.Seed.Users; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.UserPassword, cfg.Seed.EmailDomain)
		if err != nil {
			slog.Error("无法生成随机用户", slog.String("error", err.Error()))
			continue
		}

		if err := st.CreateUser(user); err != nil {
			slog.Error("无法插入随机用户", slog.String("error", err.Error()))
			continue
		}

		userIDs = append(userIDs, user.ID)
		userCnt++
	}

	listingCnt := 0
	for i := 0; i < cfg.Seed.Listings && len(userIDs) > 0; i++ {
		owner := userIDs[rand.Intn(len(userIDs))]
		listing := utils.GenerateRandomListing()

		if err := st.CreateListing(owner, listing); err != nil {
			slog.Error("无法插入随机职位", slog.String("error", err.Error()))
			continue
		}

		listingCnt++
	}

	slog.Info("测试数据填充完成", slog.Int("users", userCnt), slog.Int("listings", listingCnt))
}
