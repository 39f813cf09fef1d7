package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
	"github.com/mindfuly/mindfuly/internal/infrastructure/wellness"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

const (
	focusPlaylistsKey = "wellness:playlists:focus"
	focusPlaylistsTTL = 10 * time.Minute
)

// WellnessService proxies mood and music calls to the wellness sidecar.
// There is no retry or backoff; a failed log is reported once and dropped.
// Redis is optional and only caches the playlist catalog.
type WellnessService struct {
	Client *wellness.Client
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewWellnessService(client *wellness.Client, rdb *redis.Client, logger *logrus.Logger) *WellnessService {
	return &WellnessService{Client: client, Redis: rdb, Logger: logger}
}

func (s *WellnessService) LogMood(ctx context.Context, m entity.MoodLog) error {
	if err := s.Client.LogMood(ctx, m); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", m.Username).Warn("mood log failed")
		}
		return err
	}
	return nil
}

func (s *WellnessService) LogSession(ctx context.Context, sess entity.MusicSession) error {
	if err := s.Client.LogSession(ctx, sess); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", sess.Username).Warn("session log failed")
		}
		return err
	}
	return nil
}

// FocusPlaylists returns the curated catalog, serving from the Redis cache
// when a fresh copy is available.
func (s *WellnessService) FocusPlaylists(ctx context.Context) ([]entity.Playlist, error) {
	if s.Redis != nil {
		var cached []entity.Playlist
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, focusPlaylistsKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	playlists, err := s.Client.FocusPlaylists(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if cErr := helpers.RedisSetJSON(ctx, s.Redis, focusPlaylistsKey, playlists, focusPlaylistsTTL); cErr != nil && s.Logger != nil {
			s.Logger.WithError(cErr).Warn("playlist cache write failed")
		}
	}
	return playlists, nil
}
