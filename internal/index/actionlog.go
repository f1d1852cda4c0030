package index

import "github.com/iho/fintrack/internal/domain"

// DefaultActionCapacity bounds the undo history when callers pass none.
const DefaultActionCapacity = 50

// ActionLog is a bounded LIFO of reversible mutation descriptors. Pushing
// past capacity evicts from the bottom, so only the most recent capacity
// actions stay undoable.
type ActionLog struct {
	actions  []domain.Action
	capacity int
}

// NewActionLog creates a log holding at most capacity actions.
func NewActionLog(capacity int) *ActionLog {
	if capacity <= 0 {
		capacity = DefaultActionCapacity
	}
	return &ActionLog{capacity: capacity}
}

// Push appends an action, dropping the oldest entry when full. Amortized
// O(1); the eviction shift is O(n).
func (l *ActionLog) Push(a domain.Action) {
	if len(l.actions) >= l.capacity {
		copy(l.actions, l.actions[1:])
		l.actions = l.actions[:len(l.actions)-1]
	}
	l.actions = append(l.actions, a)
}

// Pop removes and returns the most recent action. O(1).
func (l *ActionLog) Pop() (domain.Action, bool) {
	if len(l.actions) == 0 {
		return domain.Action{}, false
	}
	a := l.actions[len(l.actions)-1]
	l.actions = l.actions[:len(l.actions)-1]
	return a, true
}

// Peek returns the most recent action without removing it.
func (l *ActionLog) Peek() (domain.Action, bool) {
	if len(l.actions) == 0 {
		return domain.Action{}, false
	}
	return l.actions[len(l.actions)-1], true
}

// All returns the log most-recent-first.
func (l *ActionLog) All() []domain.Action {
	result := make([]domain.Action, 0, len(l.actions))
	for i := len(l.actions) - 1; i >= 0; i-- {
		result = append(result, l.actions[i])
	}
	return result
}

// Len returns the number of recorded actions.
func (l *ActionLog) Len() int {
	return len(l.actions)
}
