package frame

import "github.com/tmarkov/physviz/internal/phys"

// Trail is a bounded history of past positions with ring-buffer
// semantics: appends evict the oldest entry once capacity is reached.
// Owned by one simulation instance and cleared on reset.
type Trail struct {
	buf   []phys.Vec2
	head  int
	count int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]phys.Vec2, capacity)}
}

// Push appends a position, evicting the oldest when full.
func (t *Trail) Push(p phys.Vec2) {
	t.buf[(t.head+t.count)%len(t.buf)] = p
	if t.count < len(t.buf) {
		t.count++
	} else {
		t.head = (t.head + 1) % len(t.buf)
	}
}

// Len returns the number of stored positions.
func (t *Trail) Len() int { return t.count }

// Cap returns the trail capacity.
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th stored position, oldest first.
func (t *Trail) At(i int) phys.Vec2 {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Clear drops all stored positions.
func (t *Trail) Clear() {
	t.head = 0
	t.count = 0
}
