package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/mindfuly/mindfuly/internal/application"
	"github.com/mindfuly/mindfuly/internal/domain/repository"
	"github.com/mindfuly/mindfuly/pkg/response"
)

// AdminHandler backs the admin dashboard: full user listing plus search.
type AdminHandler struct {
	Repo   repository.UserRepository
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewAdminHandler(repo repository.UserRepository, svc *userapp.Service, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Repo: repo, Svc: svc, Logger: logger}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("admin list users failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"tier":       u.Tier,
			"avatar_url": u.AvatarURL,
			"created_at": u.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"users": out}, "all users", gin.H{"total": len(out)})
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("user search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": hits}, "search results", gin.H{"count": len(hits)})
}
