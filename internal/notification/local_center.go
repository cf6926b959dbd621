package notification

import (
	"context"
	"sort"
	"sync"
	"time"
)

// LocalCenter is an in-process Center for headless runs. Permission is decided once by the
// grant flag passed to the constructor, the way a user answers the system prompt once.
type LocalCenter struct {
	mu      sync.Mutex
	grant   bool
	status  Authorization
	pending map[string]Request
}

func NewLocalCenter(grant bool) *LocalCenter {
	return &LocalCenter{
		grant:   grant,
		status:  NotDetermined,
		pending: make(map[string]Request),
	}
}

func (c *LocalCenter) AuthorizationStatus(ctx context.Context) (Authorization, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, nil
}

func (c *LocalCenter) RequestAuthorization(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == NotDetermined {
		c.status = Denied
		if c.grant {
			c.status = Authorized
		}
	}
	return c.status == Authorized, nil
}

func (c *LocalCenter) Add(ctx context.Context, req Request) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[req.ID] = req
	return nil
}

func (c *LocalCenter) RemovePending(ctx context.Context, ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.pending, id)
	}
	return nil
}

// Pending lists scheduled requests ordered by id.
func (c *LocalCenter) Pending() []Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Request, 0, len(c.pending))
	for _, req := range c.pending {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NextFire reports when the request with id fires next after now.
func (c *LocalCenter) NextFire(id string, now time.Time) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	req, ok := c.pending[id]
	if !ok {
		return time.Time{}, false
	}
	return req.Trigger.Next(now), true
}
