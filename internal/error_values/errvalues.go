package errorvalues

import "errors"

var (
	ErrEntryNotFound     = errors.New("meditation entry doesn't exist")
	ErrValidation        = errors.New("validation error")
	ErrSessionActive     = errors.New("another session is already active")
	ErrNoActiveSession   = errors.New("no active session")
	ErrInvalidTransition = errors.New("operation not allowed in current state")
	ErrBlobNotFound      = errors.New("blob doesn't exist")
	ErrPermissionDenied  = errors.New("notification permission denied")
	ErrAssetNotFound     = errors.New("audio asset not found")
	ErrExerciseRunning   = errors.New("breathing exercise is already running")
)
