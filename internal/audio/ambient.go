package audio

import (
	"errors"
	"log"
	"sync"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

// AmbientVolume is the playback volume of session sounds.
const AmbientVolume = 0.3

// AmbientPlayer loops the environmental sound of a session.
type AmbientPlayer struct {
	assets *Assets
	device Device
	log    *logger.Logger

	mu     sync.Mutex
	stream Stream
	sound  entity.AmbientSound
}

func NewAmbientPlayer(assets *Assets, device Device, lg *logger.Logger) *AmbientPlayer {
	if assets == nil || device == nil {
		log.Fatal("on ambient player provided nil dependencies")
	}
	return &AmbientPlayer{
		assets: assets,
		device: device,
		log:    logger.OrNop(lg).With("component", "ambient"),
	}
}

func (a *AmbientPlayer) Play(sound entity.AmbientSound) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	if sound == entity.SoundNone || sound == "" {
		return nil
	}
	path, err := a.assets.Resolve(sound.FileName())
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssetNotFound) {
			a.log.Warn("ambient sound not found", "sound", string(sound), "file", sound.FileName())
		}
		return err
	}
	stream, err := a.device.Open(path, true)
	if err != nil {
		a.log.Error("opening ambient stream failed", "sound", string(sound), "error", err)
		return errors.New("opening ambient stream error: " + err.Error())
	}
	stream.SetVolume(AmbientVolume)
	if err := stream.Play(); err != nil {
		stream.Stop()
		return errors.New("starting ambient sound error: " + err.Error())
	}
	a.stream = stream
	a.sound = sound
	a.log.Debug("ambient sound playing", "sound", string(sound))
	return nil
}

func (a *AmbientPlayer) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stream != nil {
		a.stream.Pause()
	}
}

func (a *AmbientPlayer) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stream == nil {
		return
	}
	if err := a.stream.Play(); err != nil {
		a.log.Warn("resuming ambient sound failed", "error", err)
	}
}

func (a *AmbientPlayer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

// Current returns the sound being played, SoundNone when idle.
func (a *AmbientPlayer) Current() entity.AmbientSound {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stream == nil {
		return entity.SoundNone
	}
	return a.sound
}

// must be called with a.mu held
func (a *AmbientPlayer) stopLocked() {
	if a.stream != nil {
		a.stream.Stop()
	}
	a.stream = nil
	a.sound = entity.SoundNone
}
