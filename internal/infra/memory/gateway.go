package memory

import (
	"context"
	"sync"
)

// Gateway keeps serialized collections in a process-local map. Useful for
// tests and the default demo mode.
type Gateway struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewGateway() *Gateway {
	return &Gateway{slots: make(map[string][]byte)}
}

func (g *Gateway) Load(_ context.Context, slot string) ([]byte, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.slots[slot]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (g *Gateway) Save(_ context.Context, slot string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	g.mu.Lock()
	g.slots[slot] = stored
	g.mu.Unlock()
	return nil
}
