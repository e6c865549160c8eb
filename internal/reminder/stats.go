package reminder

import (
	"github.com/shopspring/decimal"
)

// Stats is a point-in-time size report of every structure.
type Stats struct {
	Primary       int `json:"primary"`
	Array         int `json:"array"`
	ArrayCapacity int `json:"array_capacity"`
	Linked        int `json:"linked"`
	Undo          int `json:"undo"`
	UndoCapacity  int `json:"undo_capacity"`
	Queue         int `json:"queue"`
	QueueCapacity int `json:"queue_capacity"`
	Tree          int `json:"tree"`
}

// Utilization reports fill ratios of the bounded structures, rounded to
// four decimal places.
func (s Stats) Utilization() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"array": ratio(s.Array, s.ArrayCapacity),
		"queue": ratio(s.Queue, s.QueueCapacity),
		"undo":  ratio(s.Undo, s.UndoCapacity),
	}
}

func ratio(size, capacity int) decimal.Decimal {
	if capacity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(size)).
		DivRound(decimal.NewFromInt(int64(capacity)), 4)
}
