package wellness

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
)

func TestLogMood_PostsJSON(t *testing.T) {
	var got entity.MoodLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/mood/log", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.LogMood(context.Background(), entity.MoodLog{
		Username:    "alice",
		MoodValue:   4,
		EnergyLevel: 7,
		Notes:       "focused",
		Weather:     "Sunny",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 4, got.MoodValue)
	assert.Equal(t, 7, got.EnergyLevel)
}

func TestLogSession_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spotify/session/log", r.URL.Path)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.LogSession(context.Background(), entity.MusicSession{
		Username:        "alice",
		TrackName:       "Deep Focus",
		ArtistName:      "Study Beats",
		DurationMinutes: 3,
		SessionType:     "calm",
	})
	assert.ErrorContains(t, err, "502")
}

func TestFocusPlaylists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spotify/playlists/focus", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"playlists": []map[string]string{
				{"name": "Deep Focus", "description": "Ambient Study Mix"},
				{"name": "Lo-Fi Beats", "description": "Chill concentration"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	got, err := c.FocusPlaylists(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Deep Focus", got[0].Name)
	assert.Equal(t, "Chill concentration", got[1].Description)
}

func TestFocusPlaylists_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FocusPlaylists(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.LogMood(context.Background(), entity.MoodLog{Username: "alice"})
	assert.Error(t, err)
}
