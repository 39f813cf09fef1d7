package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuly/mindfuly/internal/domain/repository"
	"github.com/mindfuly/mindfuly/internal/infrastructure/memory"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

func newUsersRouter(repo repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUsersHandler(repo, nil)
	g := r.Group("/users")
	g.POST("/create_user", h.Create)
	g.GET("/", h.List)
	g.GET("/:name", h.GetByName)
	g.DELETE("/:id_or_name", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser_IgnoresClientID(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/users/create_user", map[string]any{
		"id": 69, "name": "name1", "email": "email2", "hashed_password": "pass3",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID             int64  `json:"id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		HashedPassword string `json:"hashed_password"`
		Tier           int    `json:"tier"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, int64(69), created.ID)
	assert.Equal(t, "name1", created.Name)
	assert.Equal(t, "email2", created.Email)
	assert.Equal(t, 1, created.Tier)

	u, err := repo.GetByName(context.Background(), "name1")
	require.NoError(t, err)
	assert.Equal(t, "name1", u.Name)
	assert.Equal(t, "email2", u.Email)
	assert.True(t, helpers.CompareHashAndPassword(u.HashedPassword, "pass3"))
	assert.False(t, helpers.CompareHashAndPassword(u.HashedPassword, "wrong"))
}

func TestCreateUser_DuplicateConflict(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/users/create_user", map[string]any{
		"name": "foo", "email": "fee", "hashed_password": "bass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users/create_user", map[string]any{
		"name": "foo", "email": "other", "hashed_password": "bass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"detail": "User already exists"}`, w.Body.String())

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateUser_MissingFields(t *testing.T) {
	r := newUsersRouter(memory.NewUserRepository())

	w := doJSON(t, r, http.MethodPost, "/users/create_user", map[string]any{
		"name": "foo",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadUser(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	created, err := repo.Create(context.Background(), "foo", "fee", "bass", 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/users/foo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(created.ID), got["id"])
	assert.Equal(t, "foo", got["name"])
	assert.Equal(t, "fee", got["email"])
	assert.Equal(t, created.HashedPassword, got["hashed_password"])
	assert.Equal(t, float64(1), got["tier"])
}

func TestReadUser_NotFound(t *testing.T) {
	r := newUsersRouter(memory.NewUserRepository())

	w := doJSON(t, r, http.MethodGet, "/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}

func TestListUsers(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	created, err := repo.Create(context.Background(), "foo", "fee", "bass", 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/users/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Users, 1)
	assert.Equal(t, float64(created.ID), got.Users[0]["id"])
	assert.Equal(t, "foo", got.Users[0]["name"])
}

func TestListUsers_Empty(t *testing.T) {
	r := newUsersRouter(memory.NewUserRepository())

	w := doJSON(t, r, http.MethodGet, "/users/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users": []}`, w.Body.String())
}

func TestDeleteUser_ByName(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	_, err := repo.Create(context.Background(), "foo", "fee", "bass", 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/users/foo", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Deleted user resolves to the canonical not-found detail.
	w = doJSON(t, r, http.MethodGet, "/users/foo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}

func TestDeleteUser_ByID(t *testing.T) {
	repo := memory.NewUserRepository()
	r := newUsersRouter(repo)

	created, err := repo.Create(context.Background(), "foo", "fee", "bass", 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete of the same id is a miss.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}

func TestDeleteUser_Nonexistent(t *testing.T) {
	r := newUsersRouter(memory.NewUserRepository())

	w := doJSON(t, r, http.MethodDelete, "/users/fakey", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}
