// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"context"
	"errors"
	"slices"
	"testing"
)

// mockSynthesizer is a test synthesizer implementation
type mockSynthesizer struct {
	name string
}

func (s *mockSynthesizer) Synthesize(context.Context, string, string) (*Speech, error) {
	return &Speech{Payload: "AAAA"}, nil
}

func factoryFor(s Synthesizer) Factory {
	return func(context.Context) (Synthesizer, error) { return s, nil }
}

func TestRegistry_RegisterAndNew(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	synth := &mockSynthesizer{name: "gemini"}

	registry.Register("gemini", factoryFor(synth))

	got, err := registry.New(context.Background(), "gemini")
	if err != nil {
		t.Fatalf("Registry.New() error = %v", err)
	}

	if got != synth {
		t.Error("Registry.New() returned different synthesizer instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for unknown provider")
	}

	_, err := registry.New(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("Registry.New() error = %v, want ErrUnknownProvider", err)
	}
}

func TestRegistry_FactoryError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("missing credentials")

	registry := NewRegistry()
	registry.Register("broken", func(context.Context) (Synthesizer, error) {
		return nil, errBoom
	})

	_, err := registry.New(context.Background(), "broken")
	if !errors.Is(err, errBoom) {
		t.Errorf("Registry.New() error = %v, want wrapped factory error", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("silence", factoryFor(&mockSynthesizer{}))
	registry.Register("gemini", factoryFor(&mockSynthesizer{}))

	if got, want := registry.Names(), []string{"gemini", "silence"}; !slices.Equal(got, want) {
		t.Errorf("Registry.Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockSynthesizer{name: "first"}
	second := &mockSynthesizer{name: "second"}

	registry.Register("gemini", factoryFor(first))
	registry.Register("gemini", factoryFor(second))

	got, err := registry.New(context.Background(), "gemini")
	if err != nil {
		t.Fatalf("Registry.New() error = %v", err)
	}

	if got != second {
		t.Error("Registry.New() did not return the overwritten synthesizer")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	synth := &mockSynthesizer{name: "test"}

	// Register concurrently
	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("provider", factoryFor(synth))
			done <- true
		}()
	}

	// Get concurrently
	for range 10 {
		go func() {
			_, _ = registry.Get("provider")
			_ = registry.Names()
			done <- true
		}()
	}

	// Wait for all goroutines
	for range 20 {
		<-done
	}

	got, err := registry.New(context.Background(), "provider")
	if err != nil {
		t.Fatalf("Registry.New() error = %v after concurrent operations", err)
	}
	if got != synth {
		t.Error("Registry returned wrong synthesizer after concurrent operations")
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if registry.factories == nil {
		t.Error("NewRegistry() did not initialize factories map")
	}

	if registry.mtx == nil {
		t.Error("NewRegistry() did not initialize mutex")
	}
}

func TestSynthesizerFunc(t *testing.T) {
	t.Parallel()

	var gotText, gotVoice string
	var s Synthesizer = SynthesizerFunc(func(_ context.Context, text, voiceID string) (*Speech, error) {
		gotText, gotVoice = text, voiceID
		return &Speech{Payload: "AAAA"}, nil
	})

	sp, err := s.Synthesize(context.Background(), "hello", "Puck")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if sp.Payload != "AAAA" || gotText != "hello" || gotVoice != "Puck" {
		t.Errorf("Synthesize() = %+v with (%q, %q)", sp, gotText, gotVoice)
	}
}
