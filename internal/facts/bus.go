// Package facts carries domain facts from the command layer to listeners.
package facts

import (
	"sync"

	"customerhub/internal/domain"
)

// Bus is an in-process domain.FactBus. Dispatch is synchronous and in
// publish order, so listeners see facts in the order behaviors succeeded.
type Bus struct {
	mu       sync.RWMutex
	handlers []domain.FactHandler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish dispatches a fact to every registered handler.
func (b *Bus) Publish(f domain.Fact) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()
	for _, h := range handlers {
		h(f)
	}
}

// Subscribe registers a handler for all facts.
func (b *Bus) Subscribe(h domain.FactHandler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}
