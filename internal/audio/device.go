package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/logger"
)

// Device is the audio output the players render to.
type Device interface {
	Open(path string, loop bool) (Stream, error)
}

type Stream interface {
	Play() error
	Pause()
	Stop()
	SetVolume(v float64)
}

// Assets resolves bundled sound files inside a directory.
type Assets struct {
	dir string
}

func NewAssets(dir string) *Assets {
	return &Assets{dir: dir}
}

func (a *Assets) Resolve(name string) (string, error) {
	if name == "" {
		return "", errorvalues.ErrAssetNotFound
	}
	path := filepath.Join(a.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errorvalues.ErrAssetNotFound
		}
		return "", errors.New("resolving asset error: " + err.Error())
	}
	if info.IsDir() {
		return "", errorvalues.ErrAssetNotFound
	}
	return path, nil
}

// SilentDevice renders nothing and only logs. It keeps the timing logic working where no
// audio output is available.
type SilentDevice struct {
	log *logger.Logger
}

func NewSilentDevice(lg *logger.Logger) *SilentDevice {
	return &SilentDevice{log: logger.OrNop(lg).With("component", "audio_device")}
}

func (d *SilentDevice) Open(path string, loop bool) (Stream, error) {
	d.log.Debug("stream opened", "path", path, "loop", loop)
	return &SilentStream{path: path, log: d.log}, nil
}

type SilentStream struct {
	path string
	log  *logger.Logger

	mu      sync.Mutex
	playing bool
	volume  float64
}

func (s *SilentStream) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
	s.log.Debug("stream playing", "path", s.path, "volume", s.volume)
	return nil
}

func (s *SilentStream) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

func (s *SilentStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

func (s *SilentStream) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
}

func (s *SilentStream) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

func (s *SilentStream) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}
