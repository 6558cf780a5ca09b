// SPDX-License-Identifier: EPL-2.0

package tts

import "fmt"

// Gender of a prebuilt voice, as advertised by the service.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Voice is one selectable prebuilt voice. ID is what the service expects.
type Voice struct {
	ID          string
	Name        string
	Gender      Gender
	Description string
}

// DefaultPrompt is the sample sentence offered before the user types anything.
const DefaultPrompt = "The quick brown fox jumps over the lazy dog. Voice synthesis is truly fascinating."

// DefaultVoices returns the built-in voice list. The first entry is the default.
func DefaultVoices() []Voice {
	return []Voice{
		{ID: "Kore", Name: "Kore", Gender: Female, Description: "Calm, soothing, and clear."},
		{ID: "Puck", Name: "Puck", Gender: Male, Description: "Energetic, friendly, and somewhat informal."},
		{ID: "Charon", Name: "Charon", Gender: Male, Description: "Deep, authoritative, and serious."},
		{ID: "Fenrir", Name: "Fenrir", Gender: Male, Description: "Resonant, powerful, and intense."},
		{ID: "Zephyr", Name: "Zephyr", Gender: Female, Description: "Gentle, airy, and soft."},
	}
}

// Catalog is an ordered, read-only set of voices.
type Catalog struct {
	voices []Voice
	byID   map[string]int
}

// NewCatalog validates voices and builds a Catalog. Ids must be non-empty
// and unique.
func NewCatalog(voices []Voice) (*Catalog, error) {
	if len(voices) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		voices: append([]Voice(nil), voices...),
		byID:   make(map[string]int, len(voices)),
	}
	for i, v := range c.voices {
		if v.ID == "" {
			return nil, fmt.Errorf("voices[%d]: id is required", i)
		}
		if prev, ok := c.byID[v.ID]; ok {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateVoice, v.ID, prev, i)
		}
		if c.voices[i].Name == "" {
			c.voices[i].Name = v.ID
		}
		c.byID[v.ID] = i
	}

	return c, nil
}

// DefaultCatalog is NewCatalog(DefaultVoices()).
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(DefaultVoices())
	return c
}

// Voices returns a copy of the catalogue in order.
func (c *Catalog) Voices() []Voice {
	return append([]Voice(nil), c.voices...)
}

func (c *Catalog) Len() int { return len(c.voices) }

// Lookup finds a voice by id.
func (c *Catalog) Lookup(id string) (Voice, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Voice{}, false
	}
	return c.voices[i], true
}

// Resolve is Lookup with an ErrUnknownVoice error. The empty id selects Default.
func (c *Catalog) Resolve(id string) (Voice, error) {
	if id == "" {
		return c.Default(), nil
	}
	v, ok := c.Lookup(id)
	if !ok {
		return Voice{}, fmt.Errorf("%w: %q", ErrUnknownVoice, id)
	}
	return v, nil
}

// Default returns the first voice.
func (c *Catalog) Default() Voice { return c.voices[0] }
