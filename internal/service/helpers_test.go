package service_test

import (
	"context"
	"sync"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// memoryBlobs keeps slots in a map and counts writes per slot.
type memoryBlobs struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	writes map[string]int
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{blobs: map[string][]byte{}, writes: map[string]int{}}
}

func (m *memoryBlobs) Get(ctx context.Context, slot string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.blobs[slot]
	if !ok {
		return nil, errorvalues.ErrBlobNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (m *memoryBlobs) Put(ctx context.Context, slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[slot] = append([]byte(nil), payload...)
	m.writes[slot]++
	return nil
}

func (m *memoryBlobs) Delete(ctx context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[slot]; !ok {
		return errorvalues.ErrBlobNotFound
	}
	delete(m.blobs, slot)
	return nil
}

func (m *memoryBlobs) Writes(slot string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[slot]
}

var testDay = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
