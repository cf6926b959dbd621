package player

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/mindful/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_player.go -package=mocks

// AmbientOutput plays the looping sound attached to a session.
type AmbientOutput interface {
	Play(sound entity.AmbientSound) error
	Pause()
	Resume()
	Stop()
}

// MusicLayer is the background music that runs independently of sessions.
type MusicLayer interface {
	IsPlaying() bool
	Pause()
	Play()
}

type PreferencesSource interface {
	Get() entity.UserPreferences
}

// SessionRecorder receives completed sessions.
type SessionRecorder interface {
	RecordSession(ctx context.Context, entryID uuid.UUID, duration int) (entity.SessionRecord, error)
}
