package index

import (
	"fmt"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/core/storage"
)

const nilNode = -1

type listNode struct {
	event *v1.Event
	next  int
}

// LinkedList is a singly-linked list of events. Nodes live in an arena and
// link by slot index; unlinked slots go on a free list for reuse.
type LinkedList struct {
	nodes []listNode
	free  []int
	head  int
	tail  int
	size  int
}

func NewLinkedList() *LinkedList {
	return &LinkedList{head: nilNode, tail: nilNode}
}

// Append adds evt at the tail in O(1).
func (l *LinkedList) Append(evt *v1.Event) {
	slot := l.alloc(evt)
	if l.head == nilNode {
		l.head = slot
	} else {
		l.nodes[l.tail].next = slot
	}
	l.tail = slot
	l.size++
}

// Retrieve walks to the 0-based index i.
func (l *LinkedList) Retrieve(i int) (*v1.Event, error) {
	if i < 0 || i >= l.size {
		return nil, fmt.Errorf("%w: index %d (size %d)", storage.ErrOutOfRange, i, l.size)
	}
	cur := l.head
	for step := 0; step < i; step++ {
		cur = l.nodes[cur].next
	}
	return l.nodes[cur].event, nil
}

// RemoveAt unlinks the node at the 0-based index i. It reports false when
// i is invalid.
func (l *LinkedList) RemoveAt(i int) bool {
	if i < 0 || i >= l.size {
		return false
	}

	var removed int
	if i == 0 {
		removed = l.head
		l.head = l.nodes[removed].next
		if l.head == nilNode {
			l.tail = nilNode
		}
	} else {
		prev := l.head
		for step := 0; step < i-1; step++ {
			prev = l.nodes[prev].next
		}
		removed = l.nodes[prev].next
		l.nodes[prev].next = l.nodes[removed].next
		if removed == l.tail {
			l.tail = prev
		}
	}

	l.release(removed)
	l.size--
	return true
}

// Each visits events from head to tail until fn returns false.
func (l *LinkedList) Each(fn func(*v1.Event) bool) {
	for cur := l.head; cur != nilNode; cur = l.nodes[cur].next {
		if !fn(l.nodes[cur].event) {
			return
		}
	}
}

func (l *LinkedList) Len() int { return l.size }

func (l *LinkedList) alloc(evt *v1.Event) int {
	node := listNode{event: evt, next: nilNode}
	if n := len(l.free); n > 0 {
		slot := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[slot] = node
		return slot
	}
	l.nodes = append(l.nodes, node)
	return len(l.nodes) - 1
}

func (l *LinkedList) release(slot int) {
	l.nodes[slot] = listNode{next: nilNode}
	l.free = append(l.free, slot)
}
