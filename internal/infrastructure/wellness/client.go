package wellness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
)

// Client talks to the wellness sidecar (mood logging and music
// sessions/playlists). Calls are fire-and-forget JSON over HTTP with a
// single attempt; callers decide how failures surface.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// LogMood forwards a mood entry to the mood-logging service.
func (c *Client) LogMood(ctx context.Context, m entity.MoodLog) error {
	return c.postJSON(ctx, "/mood/log", m)
}

// LogSession forwards a music session to the session-logging service.
func (c *Client) LogSession(ctx context.Context, s entity.MusicSession) error {
	return c.postJSON(ctx, "/spotify/session/log", s)
}

// FocusPlaylists fetches the curated focus playlists.
func (c *Client) FocusPlaylists(ctx context.Context) ([]entity.Playlist, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/spotify/playlists/focus", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wellness request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wellness status %d", res.StatusCode)
	}

	var parsed struct {
		Playlists []entity.Playlist `json:"playlists"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("wellness decode: %w", err)
	}
	return parsed.Playlists, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wellness request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("wellness status %d", res.StatusCode)
	}
	return nil
}
