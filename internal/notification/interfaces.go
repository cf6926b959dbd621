package notification

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_notification.go -package=mocks

type Authorization int

const (
	NotDetermined Authorization = iota
	Authorized
	Denied
)

type Request struct {
	ID      string
	Title   string
	Body    string
	Trigger Trigger
}

// Center is the platform notification service.
type Center interface {
	AuthorizationStatus(ctx context.Context) (Authorization, error)
	// Asks the user for permission unless already decided, reports whether it is granted
	RequestAuthorization(ctx context.Context) (bool, error)
	// Adds request, replacing a pending one with the same id
	Add(ctx context.Context, req Request) error
	RemovePending(ctx context.Context, ids ...string) error
}
