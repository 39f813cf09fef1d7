package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
	"github.com/mindfuly/mindfuly/internal/domain/repository"
)

// UsersHandler serves the legacy user CRUD API consumed by the UI pages and
// sibling services. Wire shapes are part of the public contract: errors are
// {"detail": "..."} objects and records carry the stored password hash.
type UsersHandler struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUsersHandler(repo repository.UserRepository, logger *logrus.Logger) *UsersHandler {
	return &UsersHandler{Repo: repo, Logger: logger}
}

type userRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// The hash, never plaintext.
	HashedPassword string `json:"hashed_password"`
	Tier           int    `json:"tier"`
}

func toRecord(u *entity.User) userRecord {
	return userRecord{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		Tier:           u.Tier,
	}
}

type createUserRequest struct {
	// Accepted and ignored; the store assigns ids.
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
	// Historical field name: carries the signup plaintext, hashed server-side.
	HashedPassword string `json:"hashed_password" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Tier           int    `json:"tier"`
}

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func (h *UsersHandler) internalError(c *gin.Context, op string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(op)
	}
	detail(c, http.StatusInternalServerError, "Internal server error")
}

// Create handles POST /users/create_user.
func (h *UsersHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.Repo.Create(c.Request.Context(), req.Name, req.Email, req.HashedPassword, req.Tier)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			detail(c, http.StatusConflict, "User already exists")
			return
		}
		h.internalError(c, "create user failed", err)
		return
	}
	c.JSON(http.StatusCreated, toRecord(u))
}

// GetByName handles GET /users/:name.
func (h *UsersHandler) GetByName(c *gin.Context) {
	u, err := h.Repo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			detail(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "get user failed", err)
		return
	}
	c.JSON(http.StatusOK, toRecord(u))
}

// List handles GET /users/.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "list users failed", err)
		return
	}
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toRecord(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": records})
}

// Delete handles DELETE /users/:id_or_name. A numeric segment is treated as
// an id, anything else as a name.
func (h *UsersHandler) Delete(c *gin.Context) {
	key := c.Param("id_or_name")

	var err error
	if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
		err = h.Repo.DeleteByID(c.Request.Context(), id)
	} else {
		err = h.Repo.DeleteByName(c.Request.Context(), key)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			detail(c, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(c, "delete user failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
