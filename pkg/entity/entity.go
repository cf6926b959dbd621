package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryFocus   Category = "focus"
	CategorySleep   Category = "sleep"
	CategoryAnxiety Category = "anxiety"
	CategoryMorning Category = "morning"
	CategoryCustom  Category = "custom"
)

var Categories = []Category{CategoryFocus, CategorySleep, CategoryAnxiety, CategoryMorning, CategoryCustom}

type AmbientSound string

const (
	SoundNone       AmbientSound = "none"
	SoundRain       AmbientSound = "rain"
	SoundWaves      AmbientSound = "waves"
	SoundForest     AmbientSound = "forest"
	SoundWhiteNoise AmbientSound = "white_noise"
)

var AmbientSounds = []AmbientSound{SoundNone, SoundRain, SoundWaves, SoundForest, SoundWhiteNoise}

// FileName returns the bundled asset name of the sound, empty for SoundNone.
func (s AmbientSound) FileName() string {
	switch s {
	case SoundRain:
		return "regen.mp3"
	case SoundWaves:
		return "meeresrauschen.mp3"
	case SoundForest:
		return "wald.mp3"
	case SoundWhiteNoise:
		return "weißes rauschen.mp3"
	default:
		return ""
	}
}

type MusicTrack string

const (
	TrackPeacefulPiano MusicTrack = "peaceful_piano"
	TrackAmbientGuitar MusicTrack = "ambient_guitar"
	TrackSingingBowl   MusicTrack = "singing_bowl"
)

var MusicTracks = []MusicTrack{TrackPeacefulPiano, TrackAmbientGuitar, TrackSingingBowl}

func (t MusicTrack) FileName() string {
	switch t {
	case TrackAmbientGuitar:
		return "ambient_guitar.mp3"
	case TrackSingingBowl:
		return "singing_bowl.mp3"
	default:
		return "peaceful_piano.mp3"
	}
}

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type MeditationEntry struct {
	ID                uuid.UUID    `json:"id" yaml:"-"`
	Title             string       `json:"title" yaml:"title"`
	Duration          int          `json:"duration" yaml:"duration"`
	Description       string       `json:"description" yaml:"description"`
	Category          Category     `json:"category" yaml:"category"`
	AmbientSound      AmbientSound `json:"ambient_sound" yaml:"ambient_sound"`
	Favorite          bool         `json:"favorite" yaml:"-"`
	CreatedAt         time.Time    `json:"created_at" yaml:"-"`
	LastUsedAt        *time.Time   `json:"last_used_at,omitempty" yaml:"-"`
	CompletedSessions int          `json:"completed_sessions" yaml:"-"`
	TotalTimeSpent    int          `json:"total_time_spent" yaml:"-"`
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type UserPreferences struct {
	NotificationsEnabled   bool         `json:"notifications_enabled"`
	DailyReminderTime      TimeOfDay    `json:"daily_reminder_time"`
	Theme                  Theme        `json:"theme"`
	HapticFeedback         bool         `json:"haptic_feedback"`
	AmbientSoundsEnabled   bool         `json:"ambient_sounds_enabled"`
	DefaultAmbientSound    AmbientSound `json:"default_ambient_sound"`
	DefaultSessionDuration int          `json:"default_session_duration"`
	AutoStartBreathing     bool         `json:"auto_start_breathing"`
	BackgroundMusicEnabled bool         `json:"background_music_enabled"`
	SelectedTrack          MusicTrack   `json:"selected_track"`
	BackgroundMusicVolume  float64      `json:"background_music_volume"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		NotificationsEnabled:   true,
		DailyReminderTime:      TimeOfDay{Hour: 8, Minute: 0},
		Theme:                  ThemeSystem,
		HapticFeedback:         true,
		AmbientSoundsEnabled:   true,
		DefaultAmbientSound:    SoundNone,
		DefaultSessionDuration: 300,
		AutoStartBreathing:     false,
		BackgroundMusicEnabled: true,
		SelectedTrack:          TrackPeacefulPiano,
		BackgroundMusicVolume:  0.5,
	}
}

type SessionRecord struct {
	ID        uuid.UUID `json:"id"`
	EntryID   uuid.UUID `json:"entry_id"`
	StartedAt time.Time `json:"started_at"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
}

type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IconRef     string     `json:"icon_ref"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type UserStatistics struct {
	SessionHistory       []SessionRecord `json:"session_history"`
	Achievements         []Achievement   `json:"achievements"`
	DailyGoalSeconds     int             `json:"daily_goal_seconds"`
	CurrentStreakDays    int             `json:"current_streak_days"`
	LongestStreakDays    int             `json:"longest_streak_days"`
	TotalMindfulSeconds  int             `json:"total_mindful_seconds"`
	LastSessionDate      *time.Time      `json:"last_session_date,omitempty"`
	PerEntrySessionCount map[string]int  `json:"per_entry_session_count"`
}

func DefaultStatistics() UserStatistics {
	return UserStatistics{
		SessionHistory:       []SessionRecord{},
		Achievements:         []Achievement{},
		DailyGoalSeconds:     600,
		PerEntrySessionCount: map[string]int{},
	}
}

// CompletionEvent is emitted by the session player when a session runs out or is ended as completed.
type CompletionEvent struct {
	EntryID        uuid.UUID
	ActualDuration int
}
