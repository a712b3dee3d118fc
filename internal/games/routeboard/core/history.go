package core

// DefaultHistoryCapacity is the maximum number of undoable steps.
const DefaultHistoryCapacity = 2048

// HistoryEntry is the pre-step state needed to undo one step.
type HistoryEntry struct {
	Occupancy [H][W]bool
	Collided  [H][W]bool
	Eaten     int
}

// History is a capped stack of pre-step entries.
// Once full, further pushes are dropped; the oldest entries are kept.
type History struct {
	entries  []HistoryEntry
	capacity int
}

// NewHistory creates an empty stack. Non-positive capacity uses the default.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Push appends e. Returns false if the stack is full and e was dropped.
func (h *History) Push(e HistoryEntry) bool {
	if len(h.entries) >= h.capacity {
		return false
	}
	h.entries = append(h.entries, e)
	return true
}

// Pop removes and returns the newest entry.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := len(h.entries) - 1
	e := h.entries[last]
	h.entries = h.entries[:last]
	return e, true
}

// Clear empties the stack.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cap returns the stack capacity.
func (h *History) Cap() int {
	return h.capacity
}
