package index

import (
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
)

type treeNode struct {
	event *v1.Event
	left  int
	right int
}

// DateTree is an unbalanced binary search tree keyed by event date.
// Dates strictly earlier than a node go left; equal or later go right.
// Nothing rebalances it, so monotonic inserts degrade it to a chain; all
// walks are iterative for that reason.
type DateTree struct {
	nodes []treeNode
	root  int
}

func NewDateTree() *DateTree {
	return &DateTree{root: nilNode}
}

// Insert places evt in O(depth).
func (t *DateTree) Insert(evt *v1.Event) {
	t.nodes = append(t.nodes, treeNode{event: evt, left: nilNode, right: nilNode})
	slot := len(t.nodes) - 1
	if t.root == nilNode {
		t.root = slot
		return
	}

	cur := t.root
	for {
		n := &t.nodes[cur]
		if evt.Date().Before(n.event.Date()) {
			if n.left == nilNode {
				n.left = slot
				return
			}
			cur = n.left
		} else {
			if n.right == nilNode {
				n.right = slot
				return
			}
			cur = n.right
		}
	}
}

// FindByDate returns the first event on the search path whose date equals
// date. With duplicate dates that is the one closest to the root, which is
// not necessarily the earliest inserted.
func (t *DateTree) FindByDate(date time.Time) (*v1.Event, bool) {
	date = v1.NormalizeDate(date)
	cur := t.root
	for cur != nilNode {
		n := t.nodes[cur]
		switch {
		case date.Equal(n.event.Date()):
			return n.event, true
		case date.Before(n.event.Date()):
			cur = n.left
		default:
			cur = n.right
		}
	}
	return nil, false
}

// Sorted returns every inserted event in ascending date order. The
// traversal restarts from the root on each call.
func (t *DateTree) Sorted() []*v1.Event {
	out := make([]*v1.Event, 0, len(t.nodes))
	stack := make([]int, 0, 16)
	cur := t.root
	for cur != nilNode || len(stack) > 0 {
		for cur != nilNode {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.nodes[cur].event)
		cur = t.nodes[cur].right
	}
	return out
}

func (t *DateTree) Len() int { return len(t.nodes) }
