package breathing

import (
	"context"
	"log"
	"sync"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/logger"
)

// Frame is what the UI renders for the current moment of the exercise.
type Frame struct {
	Phase           Phase
	Instruction     string
	Scale           float64
	PhaseSeconds    int
	Cycle           int
	CyclesRemaining int
}

type Recorder interface {
	RecordBreathingSession(ctx context.Context, duration int) error
}

type Option func(*Exercise)

// WithTickInterval sets the period of the internal ticker. Zero leaves ticking to the caller.
func WithTickInterval(d time.Duration) Option {
	return func(e *Exercise) {
		e.interval = d
	}
}

// WithObserver registers fn to receive every phase change.
func WithObserver(fn func(Frame)) Option {
	return func(e *Exercise) {
		e.observer = fn
	}
}

// Exercise sequences a breathing pattern with a single one-second tick.
type Exercise struct {
	pattern  Pattern
	recorder Recorder
	log      *logger.Logger
	interval time.Duration
	observer func(Frame)

	mu        sync.Mutex
	running   bool
	elapsed   int
	remaining int
	frame     Frame
	token     uint64
	ctx       context.Context
}

func New(pattern Pattern, recorder Recorder, lg *logger.Logger, opts ...Option) (*Exercise, error) {
	if recorder == nil {
		log.Fatal("on breathing exercise provided nil recorder")
	}
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	e := &Exercise{
		pattern:   pattern,
		recorder:  recorder,
		log:       logger.OrNop(lg).With("component", "breathing"),
		interval:  time.Second,
		remaining: pattern.Cycles,
		ctx:       context.Background(),
	}
	e.frame = e.initialFrame()
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Exercise) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return errorvalues.ErrExerciseRunning
	}
	e.running = true
	e.elapsed = 0
	e.remaining = e.pattern.Cycles
	e.ctx = context.WithoutCancel(ctx)
	e.token++
	token := e.token
	e.frame = e.frameAt(0)
	frame := e.frame
	e.mu.Unlock()

	e.log.Info("breathing exercise started", "cycles", e.pattern.Cycles)
	e.emit(frame)
	if e.interval > 0 {
		go e.run(token, e.interval)
	}
	return nil
}

// Stop cancels the exercise and resets the display. Pending ticks of the cancelled run are dropped.
func (e *Exercise) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.token++
	e.running = false
	e.elapsed = 0
	e.frame = e.initialFrame()
	frame := e.frame
	e.mu.Unlock()

	e.log.Info("breathing exercise stopped")
	e.emit(frame)
}

// Tick advances the exercise by one second.
func (e *Exercise) Tick() {
	e.mu.Lock()
	e.tickLocked(e.token)
}

func (e *Exercise) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Exercise) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

func (e *Exercise) Pattern() Pattern {
	return e.pattern
}

// tickLocked expects e.mu held and releases it. It reports whether the ticker should keep going.
func (e *Exercise) tickLocked(token uint64) bool {
	if token != e.token || !e.running {
		e.mu.Unlock()
		return false
	}
	e.elapsed++
	cycle := e.pattern.CycleSeconds()
	if e.elapsed%cycle == 0 {
		e.remaining--
	}
	if e.remaining > 0 {
		prev := e.frame
		e.frame = e.frameAt(e.elapsed)
		frame := e.frame
		e.mu.Unlock()
		if frame != prev {
			e.emit(frame)
		}
		return true
	}

	e.token++
	e.running = false
	completed := e.pattern.Cycles
	duration := cycle * completed
	e.frame = Frame{
		Phase:       Finished,
		Instruction: Finished.Instruction(),
		Scale:       Finished.Scale(),
	}
	frame, ctx := e.frame, e.ctx
	e.mu.Unlock()

	e.log.Info("breathing exercise completed", "cycles", completed, "duration", duration)
	e.emit(frame)
	if err := e.recorder.RecordBreathingSession(ctx, duration); err != nil {
		e.log.Error("recording breathing session failed", "error", err)
	}
	return false
}

// must be called with e.mu held
func (e *Exercise) frameAt(elapsed int) Frame {
	cycle := e.pattern.CycleSeconds()
	phase, length := e.pattern.PhaseAt(elapsed % cycle)
	return Frame{
		Phase:           phase,
		Instruction:     phase.Instruction(),
		Scale:           phase.Scale(),
		PhaseSeconds:    length,
		Cycle:           e.pattern.Cycles - e.remaining + 1,
		CyclesRemaining: e.remaining,
	}
}

func (e *Exercise) initialFrame() Frame {
	return Frame{
		Phase:           Ready,
		Instruction:     Ready.Instruction(),
		Scale:           Ready.Scale(),
		CyclesRemaining: e.pattern.Cycles,
	}
}

func (e *Exercise) emit(frame Frame) {
	if e.observer != nil {
		e.observer(frame)
	}
}

func (e *Exercise) run(token uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		e.mu.Lock()
		if !e.tickLocked(token) {
			return
		}
	}
}
