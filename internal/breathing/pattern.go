package breathing

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/mindful/internal/error_values"
)

type Phase int

const (
	Ready Phase = iota
	Inhale
	HoldAfterInhale
	Exhale
	HoldAfterExhale
	Finished
)

func (p Phase) Instruction() string {
	switch p {
	case Inhale, Ready:
		return "Einatmen"
	case HoldAfterInhale, HoldAfterExhale:
		return "Halten"
	case Exhale:
		return "Ausatmen"
	default:
		return "Sehr gut! Übung beendet."
	}
}

// Scale is the size the breathing circle animates towards during the phase.
func (p Phase) Scale() float64 {
	switch p {
	case Inhale, HoldAfterInhale:
		return 1.5
	case Exhale, HoldAfterExhale:
		return 0.75
	default:
		return 1.0
	}
}

// Pattern durations are whole seconds.
type Pattern struct {
	Inhale          int `validate:"gt=0"`
	HoldAfterInhale int `validate:"gte=0"`
	Exhale          int `validate:"gt=0"`
	HoldAfterExhale int `validate:"gte=0"`
	Cycles          int `validate:"gt=0"`
}

func DefaultPattern() Pattern {
	return Pattern{Inhale: 4, HoldAfterInhale: 1, Exhale: 6, HoldAfterExhale: 1, Cycles: 10}
}

func (p Pattern) CycleSeconds() int {
	return p.Inhale + p.HoldAfterInhale + p.Exhale + p.HoldAfterExhale
}

// PhaseAt returns the phase at offset seconds into a cycle and the length of that phase.
func (p Pattern) PhaseAt(offset int) (Phase, int) {
	switch {
	case offset < p.Inhale:
		return Inhale, p.Inhale
	case offset < p.Inhale+p.HoldAfterInhale:
		return HoldAfterInhale, p.HoldAfterInhale
	case offset < p.Inhale+p.HoldAfterInhale+p.Exhale:
		return Exhale, p.Exhale
	default:
		return HoldAfterExhale, p.HoldAfterExhale
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func (p Pattern) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.Join(errorvalues.ErrValidation, err)
}
