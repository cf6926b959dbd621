package player

import (
	"context"
	"log"
	"sync"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/clock"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

type Snapshot struct {
	Entry     entity.MeditationEntry
	State     State
	StartedAt time.Time
	Total     int
	Remaining int
	Elapsed   int
	Progress  float64
}

type Option func(*Player)

// WithTickInterval sets how often the player ticks by itself. Zero disables the internal
// ticker, the caller then drives the session with Tick.
func WithTickInterval(d time.Duration) Option {
	return func(p *Player) {
		p.interval = d
	}
}

func WithClock(clk clock.Clock) Option {
	return func(p *Player) {
		p.clock = clk
	}
}

// Player runs at most one meditation session at a time.
type Player struct {
	ambient  AmbientOutput
	music    MusicLayer
	prefs    PreferencesSource
	recorder SessionRecorder
	clock    clock.Clock
	log      *logger.Logger
	interval time.Duration

	mu          sync.Mutex
	state       State
	entry       entity.MeditationEntry
	startedAt   time.Time
	total       int
	remaining   int
	ambientOn   bool
	pausedMusic bool
	token       uint64
	ctx         context.Context
}

func New(ambient AmbientOutput, music MusicLayer, prefs PreferencesSource, recorder SessionRecorder, lg *logger.Logger, opts ...Option) *Player {
	if ambient == nil || music == nil || prefs == nil || recorder == nil {
		log.Fatal("on session player provided nil dependencies")
	}
	p := &Player{
		ambient:  ambient,
		music:    music,
		prefs:    prefs,
		recorder: recorder,
		clock:    clock.SystemClock{},
		log:      logger.OrNop(lg).With("component", "player"),
		interval: time.Second,
		state:    Idle,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins a session for entry. A session that is still running or paused must be ended first.
func (p *Player) Start(ctx context.Context, entry entity.MeditationEntry) error {
	p.mu.Lock()
	if p.state.Active() {
		p.mu.Unlock()
		return errorvalues.ErrSessionActive
	}
	p.entry = entry
	p.startedAt = p.clock.Now()
	p.total = max(entry.Duration, 0)
	p.remaining = p.total
	p.ambientOn = false
	p.pausedMusic = false
	p.ctx = context.WithoutCancel(ctx)
	p.state = Running

	if p.total == 0 {
		event, ctx := p.finish(true), p.ctx
		p.mu.Unlock()
		p.record(ctx, event)
		return nil
	}

	prefs := p.prefs.Get()
	if entry.AmbientSound != "" && entry.AmbientSound != entity.SoundNone && prefs.AmbientSoundsEnabled {
		if prefs.BackgroundMusicEnabled && p.music.IsPlaying() {
			p.music.Pause()
			p.pausedMusic = true
		}
		if err := p.ambient.Play(entry.AmbientSound); err != nil {
			p.log.Warn("ambient sound unavailable, continuing silently", "sound", string(entry.AmbientSound), "error", err)
		} else {
			p.ambientOn = true
		}
	}
	p.startTicking()
	p.log.Info("session started", "entry_id", entry.ID.String(), "duration", p.total)
	p.mu.Unlock()
	return nil
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return errorvalues.ErrInvalidTransition
	}
	p.token++
	if p.ambientOn {
		p.ambient.Pause()
	}
	p.state = Paused
	return nil
}

func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return errorvalues.ErrInvalidTransition
	}
	if p.ambientOn && p.prefs.Get().AmbientSoundsEnabled {
		p.ambient.Resume()
	}
	p.state = Running
	p.startTicking()
	return nil
}

func (p *Player) TogglePlayPause() error {
	switch p.State() {
	case Running:
		return p.Pause()
	case Paused:
		return p.Resume()
	default:
		return errorvalues.ErrNoActiveSession
	}
}

// Tick advances the running session by one second. Outside Running it does nothing.
func (p *Player) Tick() {
	p.mu.Lock()
	p.tickLocked(p.token)
}

func (p *Player) SkipForward(seconds int) {
	p.skip(-seconds)
}

func (p *Player) SkipBackward(seconds int) {
	p.skip(seconds)
}

// End stops the active session. Only a completed session is reported to the recorder.
func (p *Player) End(completed bool) error {
	p.mu.Lock()
	if !p.state.Active() {
		p.mu.Unlock()
		return errorvalues.ErrNoActiveSession
	}
	event, ctx := p.finish(completed), p.ctx
	p.mu.Unlock()
	p.record(ctx, event)
	return nil
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Entry:     p.entry,
		State:     p.state,
		StartedAt: p.startedAt,
		Total:     p.total,
		Remaining: p.remaining,
		Elapsed:   p.total - p.remaining,
		Progress:  p.progress(),
	}
}

// tickLocked expects p.mu held and releases it. It reports whether the ticker should keep going.
func (p *Player) tickLocked(token uint64) bool {
	if token != p.token || p.state != Running {
		p.mu.Unlock()
		return false
	}
	if p.remaining > 0 {
		p.remaining--
	}
	if p.remaining > 0 {
		p.mu.Unlock()
		return true
	}
	event, ctx := p.finish(true), p.ctx
	p.mu.Unlock()
	p.record(ctx, event)
	return false
}

func (p *Player) skip(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.Active() {
		return
	}
	p.remaining = min(max(p.remaining+delta, 0), p.total)
}

// must be called with p.mu held
func (p *Player) finish(completed bool) *entity.CompletionEvent {
	p.token++
	if p.ambientOn {
		p.ambient.Stop()
		p.ambientOn = false
	}
	if p.pausedMusic {
		p.music.Play()
		p.pausedMusic = false
	}
	elapsed := p.total - p.remaining
	if !completed {
		p.state = Abandoned
		p.log.Info("session abandoned", "entry_id", p.entry.ID.String(), "elapsed", elapsed)
		return nil
	}
	p.state = Completed
	p.log.Info("session completed", "entry_id", p.entry.ID.String(), "elapsed", elapsed)
	return &entity.CompletionEvent{EntryID: p.entry.ID, ActualDuration: elapsed}
}

func (p *Player) record(ctx context.Context, event *entity.CompletionEvent) {
	if event == nil {
		return
	}
	if _, err := p.recorder.RecordSession(ctx, event.EntryID, event.ActualDuration); err != nil {
		p.log.Error("recording session failed", "entry_id", event.EntryID.String(), "error", err)
	}
}

// must be called with p.mu held
func (p *Player) progress() float64 {
	if p.total == 0 {
		return 0
	}
	return 1 - float64(p.remaining)/float64(p.total)
}

// must be called with p.mu held
func (p *Player) startTicking() {
	p.token++
	if p.interval <= 0 {
		return
	}
	go p.run(p.token, p.interval)
}

func (p *Player) run(token uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		if !p.tickLocked(token) {
			return
		}
	}
}
