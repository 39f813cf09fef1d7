package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/mindfuly/mindfuly/internal/interface/http"
)

// UsersModule exposes the legacy user endpoints at the engine root. Paths and
// response bodies stay exactly as the first client shipped them, so the
// existing mood and music services keep working unchanged.
type UsersModule struct {
	Handler *handlers.UsersHandler
}

func NewUsersModule(h *handlers.UsersHandler) *UsersModule {
	return &UsersModule{Handler: h}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.POST("/create_user", m.Handler.Create)
	users.GET("/", m.Handler.List)
	users.GET("/:name", m.Handler.GetByName)
	users.DELETE("/:id_or_name", m.Handler.Delete)
}
