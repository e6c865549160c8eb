package v1

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on every external surface.
const DateLayout = "2006-01-02"

// Event is a single dated reminder entry.
// Title, description and date are fixed at construction; only the
// completion flag changes afterwards. Events carry no identifier: two
// events are "the same" only when they are the same pointer.
type Event struct {
	title       string
	description string
	date        time.Time
	completed   bool
}

// NewEvent builds a pending event. The date is normalized to midnight UTC
// so that comparisons only ever look at the calendar day.
func NewEvent(title, description string, date time.Time) *Event {
	return &Event{
		title:       title,
		description: description,
		date:        NormalizeDate(date),
	}
}

func (e *Event) Title() string       { return e.title }
func (e *Event) Description() string { return e.description }
func (e *Event) Date() time.Time     { return e.date }
func (e *Event) Completed() bool     { return e.completed }

// SetCompleted sets the completion flag. The store only ever sets it to true.
func (e *Event) SetCompleted(done bool) { e.completed = done }

// String returns the canonical textual form.
func (e *Event) String() string {
	return fmt.Sprintf("Event{title='%s', description='%s', date=%s, completed=%t}",
		e.title, e.description, e.date.Format(DateLayout), e.completed)
}

// eventJSON is the wire shape. Field names are part of the public API.
type eventJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
}

// MarshalJSON renders the event with quotes and newlines escaped by encoding/json.
func (e *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		Title:       e.title,
		Description: e.description,
		Date:        e.date.Format(DateLayout),
		IsCompleted: e.completed,
	})
}

// UnmarshalJSON accepts the same shape MarshalJSON produces.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := ParseDate(raw.Date)
	if err != nil {
		return err
	}
	e.title = raw.Title
	e.description = raw.Description
	e.date = date
	e.completed = raw.IsCompleted
	return nil
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-MM-dd)", s)
	}
	return d, nil
}

// NormalizeDate drops the clock and zone from t, keeping its calendar day.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
