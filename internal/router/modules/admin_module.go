package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindfuly/mindfuly/internal/container"
	handlers "github.com/mindfuly/mindfuly/internal/interface/http"
	"github.com/mindfuly/mindfuly/internal/interface/middleware"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users", m.Handler.ListUsers)
		auth.GET("/users/search", m.Handler.SearchUsers)
	}
}
