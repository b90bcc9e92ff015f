package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/modules/ai"
	"github.com/mindhaven/core/internal/modules/chat"
	"github.com/mindhaven/core/internal/modules/diary"
	"github.com/mindhaven/core/internal/modules/journal"
	"github.com/mindhaven/core/internal/modules/mood"
	"github.com/mindhaven/core/internal/modules/user"
	"github.com/mindhaven/core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(aiClient ai.Client) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group(apiPrefix)

	api.GET("/health", a.health)

	userSvc := user.NewService(a.db.Users)
	user.NewHandler(userSvc, a.cfg.CookieDomain, !a.cfg.IsDev()).RegisterRoutes(api, authMW)

	chat.NewHandler(chat.NewService(a.db.Users, aiClient)).RegisterRoutes(api, authMW)
	diary.NewHandler(diary.NewService(a.db.Diaries)).RegisterRoutes(api, authMW)
	journal.NewHandler(journal.NewService(a.db.Journals)).RegisterRoutes(api, authMW)
	mood.NewHandler(mood.NewService(a.db.Moods, aiClient)).RegisterRoutes(api, authMW)
}

func (a *App) health(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "ok",
		"uptime": time.Since(processStart).Truncate(time.Second).String(),
	})
}
