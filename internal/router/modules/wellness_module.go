package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindfuly/mindfuly/internal/container"
	handlers "github.com/mindfuly/mindfuly/internal/interface/http"
	"github.com/mindfuly/mindfuly/internal/interface/middleware"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

// WellnessModule exposes the mood and music endpoints that forward to the
// wellness upstream. Everything here requires a logged-in user.
type WellnessModule struct {
	Handler *handlers.WellnessHandler
	JWT     *helpers.JWTManager
}

func NewWellnessModule(h *handlers.WellnessHandler, jwt *helpers.JWTManager) *WellnessModule {
	return &WellnessModule{Handler: h, JWT: jwt}
}

func (m *WellnessModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/mood/log", m.Handler.LogMood)
		auth.POST("/music/session/log", m.Handler.LogSession)
		auth.GET("/music/playlists/focus", m.Handler.FocusPlaylists)
	}
}
