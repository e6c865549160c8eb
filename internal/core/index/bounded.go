package index

import (
	"strings"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
)

// DefaultArrayCapacity is the bounded mirror size used when none is configured.
const DefaultArrayCapacity = 100

// BoundedArray is a fixed-size mirror of the primary store. Once full it
// silently stops accepting events while the primary store keeps growing.
type BoundedArray struct {
	items []*v1.Event
	size  int
}

func NewBoundedArray(capacity int) *BoundedArray {
	if capacity <= 0 {
		capacity = DefaultArrayCapacity
	}
	return &BoundedArray{items: make([]*v1.Event, capacity)}
}

// Append reports false when the array is full.
func (b *BoundedArray) Append(evt *v1.Event) bool {
	if b.size == len(b.items) {
		return false
	}
	b.items[b.size] = evt
	b.size++
	return true
}

// At returns the event in slot i, or nil when i is outside the filled range.
func (b *BoundedArray) At(i int) *v1.Event {
	if i < 0 || i >= b.size {
		return nil
	}
	return b.items[i]
}

// LinearSearchTitle returns the slot of the first event whose title equals
// title ignoring case, or -1.
func (b *BoundedArray) LinearSearchTitle(title string) int {
	for i := 0; i < b.size; i++ {
		if strings.EqualFold(b.items[i].Title(), title) {
			return i
		}
	}
	return -1
}

// BinarySearchDate returns the slot of an event dated date, or -1.
// The array is re-sorted by date with a bubble sort before every search, so
// each call costs O(n²) and reorders the mirror in place.
func (b *BoundedArray) BinarySearchDate(date time.Time) int {
	b.sortByDate()
	date = v1.NormalizeDate(date)

	left, right := 0, b.size-1
	for left <= right {
		mid := left + (right-left)/2
		midDate := b.items[mid].Date()
		if midDate.Equal(date) {
			return mid
		}
		if midDate.Before(date) {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return -1
}

func (b *BoundedArray) sortByDate() {
	for i := 0; i < b.size-1; i++ {
		for j := 0; j < b.size-i-1; j++ {
			if b.items[j].Date().After(b.items[j+1].Date()) {
				b.items[j], b.items[j+1] = b.items[j+1], b.items[j]
			}
		}
	}
}

func (b *BoundedArray) Len() int { return b.size }
func (b *BoundedArray) Cap() int { return len(b.items) }
