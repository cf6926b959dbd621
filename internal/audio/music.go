package audio

import (
	"errors"
	"log"
	"math"
	"sync"

	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

// MusicPlayer loops one background track at a time.
type MusicPlayer struct {
	assets *Assets
	device Device
	log    *logger.Logger

	mu      sync.Mutex
	stream  Stream
	track   entity.MusicTrack
	volume  float64
	playing bool
}

func NewMusicPlayer(assets *Assets, device Device, lg *logger.Logger) *MusicPlayer {
	if assets == nil || device == nil {
		log.Fatal("on music player provided nil dependencies")
	}
	return &MusicPlayer{
		assets: assets,
		device: device,
		log:    logger.OrNop(lg).With("component", "music"),
		volume: entity.DefaultPreferences().BackgroundMusicVolume,
	}
}

// PlayTrack replaces the current track. A missing file leaves the player stopped.
func (m *MusicPlayer) PlayTrack(track entity.MusicTrack, volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadTrackLocked(track, volume, true)
}

// Play resumes the current track if there is one.
func (m *MusicPlayer) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream == nil || m.playing {
		return
	}
	if err := m.stream.Play(); err != nil {
		m.log.Warn("resuming music failed", "error", err)
		return
	}
	m.playing = true
}

func (m *MusicPlayer) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream != nil {
		m.stream.Pause()
	}
	m.playing = false
}

func (m *MusicPlayer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *MusicPlayer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(v)
	if m.stream != nil {
		m.stream.SetVolume(m.volume)
	}
}

func (m *MusicPlayer) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *MusicPlayer) CurrentTrack() (entity.MusicTrack, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track, m.stream != nil
}

func (m *MusicPlayer) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// UpdatePlayback follows the music settings: stopped when disabled, otherwise the selected
// track at the selected volume. Paused music stays paused until Play, so a running session
// keeps the music held while settings change.
func (m *MusicPlayer) UpdatePlayback(prefs entity.UserPreferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !prefs.BackgroundMusicEnabled {
		m.stopLocked()
		return
	}
	track := prefs.SelectedTrack
	if track == "" {
		track = entity.MusicTracks[0]
	}
	if m.stream != nil && m.track == track {
		m.volume = clampVolume(prefs.BackgroundMusicVolume)
		m.stream.SetVolume(m.volume)
		return
	}
	start := m.stream == nil || m.playing
	if err := m.loadTrackLocked(track, prefs.BackgroundMusicVolume, start); err != nil {
		m.log.Warn("background music unavailable", "track", string(track), "error", err)
	}
}

// loadTrackLocked opens track in place of the current stream and starts it when start is set.
// must be called with m.mu held
func (m *MusicPlayer) loadTrackLocked(track entity.MusicTrack, volume float64, start bool) error {
	path, err := m.assets.Resolve(track.FileName())
	if err != nil {
		m.stopLocked()
		m.log.Warn("music track not found", "track", string(track), "file", track.FileName())
		return err
	}
	m.stopLocked()
	stream, err := m.device.Open(path, true)
	if err != nil {
		m.log.Error("opening music stream failed", "track", string(track), "error", err)
		return errors.New("opening music stream error: " + err.Error())
	}
	m.volume = clampVolume(volume)
	stream.SetVolume(m.volume)
	if !start {
		m.stream = stream
		m.track = track
		m.log.Info("music track loaded paused", "track", string(track), "volume", m.volume)
		return nil
	}
	if err := stream.Play(); err != nil {
		stream.Stop()
		m.log.Error("starting music failed", "track", string(track), "error", err)
		return errors.New("starting music error: " + err.Error())
	}
	m.stream = stream
	m.track = track
	m.playing = true
	m.log.Info("music playing", "track", string(track), "volume", m.volume)
	return nil
}

// must be called with m.mu held
func (m *MusicPlayer) stopLocked() {
	if m.stream != nil {
		m.stream.Stop()
	}
	m.stream = nil
	m.playing = false
}

func clampVolume(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return entity.DefaultPreferences().BackgroundMusicVolume
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
