package entity

// MoodLog is the payload forwarded to the mood-logging service.
type MoodLog struct {
	Username    string `json:"username"`
	MoodValue   int    `json:"mood_value"`
	EnergyLevel int    `json:"energy_level"`
	Notes       string `json:"notes"`
	Weather     string `json:"weather"`
}

// MusicSession is the payload forwarded to the music-session service.
type MusicSession struct {
	Username        string  `json:"username"`
	TrackName       string  `json:"track_name"`
	ArtistName      string  `json:"artist_name"`
	DurationMinutes float64 `json:"duration_minutes"`
	SessionType     string  `json:"session_type"`
}

// Playlist is one curated entry returned by the music service.
type Playlist struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
