// Package index holds the in-memory structures the reminder store keeps
// over its events: the authoritative ordered sequence plus the bounded and
// linked mirrors derived from it.
package index

import (
	"fmt"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/core/storage"
)

// Primary is the authoritative, growable, insertion-ordered sequence.
// Positions are 1-based.
type Primary struct {
	events []*v1.Event
}

func NewPrimary() *Primary {
	return &Primary{}
}

// Add appends evt to the end of the sequence.
func (p *Primary) Add(evt *v1.Event) {
	p.events = append(p.events, evt)
}

// Get returns the event at the 1-based position pos.
func (p *Primary) Get(pos int) (*v1.Event, error) {
	if pos <= 0 || pos > len(p.events) {
		return nil, fmt.Errorf("%w: position %d (size %d)", storage.ErrOutOfRange, pos, len(p.events))
	}
	return p.events[pos-1], nil
}

// RemoveAt detaches and returns the event at the 1-based position pos.
func (p *Primary) RemoveAt(pos int) (*v1.Event, error) {
	if pos <= 0 || pos > len(p.events) {
		return nil, fmt.Errorf("%w: position %d (size %d)", storage.ErrNotFound, pos, len(p.events))
	}
	evt := p.events[pos-1]
	copy(p.events[pos-1:], p.events[pos:])
	p.events[len(p.events)-1] = nil
	p.events = p.events[:len(p.events)-1]
	return evt, nil
}

// All returns a copy of the sequence.
func (p *Primary) All() []*v1.Event {
	out := make([]*v1.Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *Primary) Len() int { return len(p.events) }
