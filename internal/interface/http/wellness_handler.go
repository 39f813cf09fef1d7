package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/mindfuly/mindfuly/internal/application"
	"github.com/mindfuly/mindfuly/internal/domain/entity"
	"github.com/mindfuly/mindfuly/pkg/response"
	"github.com/mindfuly/mindfuly/pkg/validation"
)

// WellnessHandler proxies mood and music logging to the wellness sidecar.
type WellnessHandler struct {
	Svc    *userapp.WellnessService
	Logger *logrus.Logger
}

func NewWellnessHandler(svc *userapp.WellnessService, logger *logrus.Logger) *WellnessHandler {
	return &WellnessHandler{Svc: svc, Logger: logger}
}

type moodLogRequest struct {
	Username    string `json:"username" binding:"required"`
	MoodValue   int    `json:"mood_value" binding:"required,gte=1,lte=5"`
	EnergyLevel int    `json:"energy_level" binding:"required,gte=1,lte=10"`
	Notes       string `json:"notes"`
	Weather     string `json:"weather"`
}

type musicSessionRequest struct {
	Username        string  `json:"username" binding:"required"`
	TrackName       string  `json:"track_name" binding:"required"`
	ArtistName      string  `json:"artist_name" binding:"required"`
	DurationMinutes float64 `json:"duration_minutes" binding:"required,gte=0"`
	SessionType     string  `json:"session_type" binding:"required,oneof=mindful calm energy focus"`
}

func (h *WellnessHandler) LogMood(c *gin.Context) {
	var req moodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Svc.LogMood(c.Request.Context(), entity.MoodLog{
		Username:    req.Username,
		MoodValue:   req.MoodValue,
		EnergyLevel: req.EnergyLevel,
		Notes:       req.Notes,
		Weather:     req.Weather,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "failed to save mood log", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged": true}, "mood logged", nil)
}

func (h *WellnessHandler) LogSession(c *gin.Context) {
	var req musicSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Svc.LogSession(c.Request.Context(), entity.MusicSession{
		Username:        req.Username,
		TrackName:       req.TrackName,
		ArtistName:      req.ArtistName,
		DurationMinutes: req.DurationMinutes,
		SessionType:     req.SessionType,
	})
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "failed to log session", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged": true}, "session logged", nil)
}

func (h *WellnessHandler) FocusPlaylists(c *gin.Context) {
	playlists, err := h.Svc.FocusPlaylists(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "unable to load playlists", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"playlists": playlists}, "focus playlists", nil)
}
