// Package reminder owns the reminder collection and every index kept over it.
package reminder

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/core/index"
	"github.com/aevon-lab/remindex/internal/core/storage"
)

// Options fixes the bounded structure sizes at construction time.
type Options struct {
	ArrayCapacity int
	QueueCapacity int
	UndoCapacity  int
}

// DefaultOptions mirrors the historical capacities: 100/100/50.
func DefaultOptions() Options {
	return Options{
		ArrayCapacity: index.DefaultArrayCapacity,
		QueueCapacity: index.DefaultQueueCapacity,
		UndoCapacity:  index.DefaultUndoCapacity,
	}
}

// Entry pairs an event with its 1-based primary store position.
type Entry struct {
	Position int
	Event    *v1.Event
}

// Coordinator is the sole mutator of the primary store and its secondary
// structures. It is not safe for concurrent use; Store serializes access.
//
// Removal only detaches an event from the primary store and parks it on
// the undo stack. The linked mirror, processing queue and date tree keep
// their references, and undo re-mirrors into all of them, so those
// structures can hold stale or duplicate entries.
type Coordinator struct {
	primary *index.Primary
	array   *index.BoundedArray
	linked  *index.LinkedList
	queue   *index.Ring[*v1.Event]
	tree    *index.DateTree
	undo    *index.Stack[*v1.Event]
}

func NewCoordinator(opts Options) *Coordinator {
	return &Coordinator{
		primary: index.NewPrimary(),
		array:   index.NewBoundedArray(opts.ArrayCapacity),
		linked:  index.NewLinkedList(),
		queue:   index.NewRing[*v1.Event](opts.QueueCapacity),
		tree:    index.NewDateTree(),
		undo:    index.NewStack[*v1.Event](opts.UndoCapacity),
	}
}

// Add creates a pending event and records it in every structure.
func (c *Coordinator) Add(title, description string, date time.Time) *v1.Event {
	evt := v1.NewEvent(title, description, date)
	c.primary.Add(evt)
	c.mirror(evt)
	return evt
}

// mirror copies evt into the secondary structures. The bounded array and
// the queue drop it silently once full.
func (c *Coordinator) mirror(evt *v1.Event) {
	if !c.array.Append(evt) {
		slog.Debug("Bounded array full, event not mirrored", "capacity", c.array.Cap())
	}
	c.linked.Append(evt)
	if !c.queue.Enqueue(evt) {
		slog.Debug("Processing queue full, event not enqueued", "capacity", c.queue.Cap())
	}
	c.tree.Insert(evt)
}

// MarkCompleted flips the completion flag of the event at the 1-based pos.
func (c *Coordinator) MarkCompleted(pos int) error {
	evt, err := c.primary.Get(pos)
	if err != nil {
		return fmt.Errorf("%w: position %d (size %d)", storage.ErrNotFound, pos, c.primary.Len())
	}
	evt.SetCompleted(true)
	return nil
}

// Remove detaches the event at the 1-based pos from the primary store and
// pushes it onto the undo stack. A full undo stack drops it silently.
func (c *Coordinator) Remove(pos int) (*v1.Event, error) {
	evt, err := c.primary.RemoveAt(pos)
	if err != nil {
		return nil, err
	}
	if !c.undo.Push(evt) {
		slog.Debug("Undo stack full, removal cannot be undone", "capacity", c.undo.Cap())
	}
	return evt, nil
}

// Undo restores the most recently removed event at the end of the primary
// store and re-mirrors it everywhere. ok is false when there is nothing to undo.
func (c *Coordinator) Undo() (*v1.Event, bool) {
	evt, ok := c.undo.Pop()
	if !ok {
		return nil, false
	}
	c.primary.Add(evt)
	c.mirror(evt)
	return evt, true
}

// ProcessNext pops the oldest event off the processing queue.
func (c *Coordinator) ProcessNext() (*v1.Event, bool) {
	return c.queue.Dequeue()
}

// ListByDateRange returns date-tree events with start <= date <= end,
// ascending by date.
func (c *Coordinator) ListByDateRange(start, end time.Time) []*v1.Event {
	start, end = v1.NormalizeDate(start), v1.NormalizeDate(end)
	var out []*v1.Event
	for _, evt := range c.tree.Sorted() {
		d := evt.Date()
		if !d.Before(start) && !d.After(end) {
			out = append(out, evt)
		}
	}
	return out
}

// Search matches keyword case-insensitively against title or description
// over the primary store. Each event instance appears at most once;
// distinct instances with equal fields are all kept.
func (c *Coordinator) Search(keyword string) []*v1.Event {
	needle := strings.ToLower(keyword)
	seen := make(map[*v1.Event]struct{})
	var out []*v1.Event
	for _, evt := range c.primary.All() {
		if !strings.Contains(strings.ToLower(evt.Title()), needle) &&
			!strings.Contains(strings.ToLower(evt.Description()), needle) {
			continue
		}
		if _, dup := seen[evt]; dup {
			continue
		}
		seen[evt] = struct{}{}
		out = append(out, evt)
	}
	return out
}

// Get returns the event at the 1-based primary store position.
func (c *Coordinator) Get(pos int) (*v1.Event, error) {
	return c.primary.Get(pos)
}

// Retrieve reads the 0-based index i through the linked mirror. It returns
// nil when i is out of range for the mirror.
func (c *Coordinator) Retrieve(i int) *v1.Event {
	evt, err := c.linked.Retrieve(i)
	if err != nil {
		return nil
	}
	return evt
}

// Events returns the primary store in order.
func (c *Coordinator) Events() []*v1.Event {
	return c.primary.All()
}

// Completed returns completed events with their current positions.
func (c *Coordinator) Completed() []Entry {
	var out []Entry
	for i, evt := range c.primary.All() {
		if evt.Completed() {
			out = append(out, Entry{Position: i + 1, Event: evt})
		}
	}
	return out
}

// FindByTitle does an exact, case-insensitive title lookup over the
// bounded array mirror.
func (c *Coordinator) FindByTitle(title string) (*v1.Event, bool) {
	slot := c.array.LinearSearchTitle(title)
	if slot < 0 {
		return nil, false
	}
	return c.array.At(slot), true
}

// FindByDate binary-searches the bounded array mirror for date. The mirror
// is bubble-sorted by date before every call.
func (c *Coordinator) FindByDate(date time.Time) (*v1.Event, bool) {
	slot := c.array.BinarySearchDate(date)
	if slot < 0 {
		return nil, false
	}
	return c.array.At(slot), true
}

// FirstOnDate looks date up in the date tree.
func (c *Coordinator) FirstOnDate(date time.Time) (*v1.Event, bool) {
	return c.tree.FindByDate(date)
}

// Count is the primary store size.
func (c *Coordinator) Count() int {
	return c.primary.Len()
}

// Stats reports structure sizes without mutating anything.
func (c *Coordinator) Stats() Stats {
	return Stats{
		Primary:       c.primary.Len(),
		Array:         c.array.Len(),
		ArrayCapacity: c.array.Cap(),
		Linked:        c.linked.Len(),
		Undo:          c.undo.Len(),
		UndoCapacity:  c.undo.Cap(),
		Queue:         c.queue.Len(),
		QueueCapacity: c.queue.Cap(),
		Tree:          c.tree.Len(),
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%d. %s", e.Position, e.Event.Title())
}
