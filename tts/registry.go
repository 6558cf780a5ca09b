// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Factory constructs a Synthesizer on demand, so providers that need
// credentials are only built when selected.
type Factory func(ctx context.Context) (Synthesizer, error)

// Registry for synthesizer factories by provider name (e.g., "gemini", "silence").
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

// Register adds f under name, replacing any previous factory.
func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New builds the synthesizer registered under name.
func (r *Registry) New(ctx context.Context, name string) (Synthesizer, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProvider, name, r.Names())
	}

	s, err := f(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating %s synthesizer: %w", name, err)
	}
	return s, nil
}
