package dashboard

import "sync"

// EventLog is a fixed-capacity ring of formatted move events.
// Once full, each insert evicts the oldest entry.
type EventLog struct {
	mu      sync.Mutex
	entries []string
	head    int // index of oldest entry
	size    int
}

// NewEventLog creates a log holding at most capacity entries
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{entries: make([]string, capacity)}
}

// Append records an event
func (l *EventLog) Append(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	capacity := len(l.entries)
	if l.size < capacity {
		l.entries[(l.head+l.size)%capacity] = entry
		l.size++
		return
	}
	l.entries[l.head] = entry
	l.head = (l.head + 1) % capacity
}

// Newest returns the entries newest-first
func (l *EventLog) Newest() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	capacity := len(l.entries)
	out := make([]string, 0, l.size)
	for i := l.size - 1; i >= 0; i-- {
		out = append(out, l.entries[(l.head+i)%capacity])
	}
	return out
}

// Len returns the number of stored entries
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// Cap returns the maximum number of entries
func (l *EventLog) Cap() int {
	return len(l.entries)
}
