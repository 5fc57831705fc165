package sim

import (
	"errors"
	"fmt"
)

const (
	// MinCapacity is the smallest accepted number of frames.
	MinCapacity = 1
	// MaxCapacity is the largest accepted number of frames.
	MaxCapacity = 10
)

// ErrCapacityOutOfRange is returned when a frame count is outside [MinCapacity, MaxCapacity].
var ErrCapacityOutOfRange = errors.New("memory size must be between 1 and 10")

// ValidateCapacity checks that capacity is a legal frame count.
func ValidateCapacity(capacity int) error {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return fmt.Errorf("capacity %d: %w", capacity, ErrCapacityOutOfRange)
	}
	return nil
}

// Frame is one physical memory slot. A zero Frame is empty.
type Frame struct {
	Page     int
	Occupied bool
}

// FrameSet is a fixed-capacity array of frames. Its length is set once by
// NewFrameSet and never changes.
type FrameSet struct {
	frames []Frame
}

// NewFrameSet creates a FrameSet with capacity empty slots.
// Panics if capacity is not positive; callers validate with ValidateCapacity.
func NewFrameSet(capacity int) *FrameSet {
	if capacity < 1 {
		panic(fmt.Sprintf("frame set capacity must be positive, got %d", capacity))
	}
	return &FrameSet{frames: make([]Frame, capacity)}
}

// Capacity returns the number of slots.
func (fs *FrameSet) Capacity() int {
	return len(fs.frames)
}

// Find returns the slot holding page, scanning slots in ascending order.
// Empty slots never match.
func (fs *FrameSet) Find(page int) (int, bool) {
	for slot, f := range fs.frames {
		if f.Occupied && f.Page == page {
			return slot, true
		}
	}
	return -1, false
}

// Place writes page into slot, returning the page it replaced, if any.
func (fs *FrameSet) Place(slot, page int) (evicted int, hadPage bool) {
	prev := fs.frames[slot]
	fs.frames[slot] = Frame{Page: page, Occupied: true}
	return prev.Page, prev.Occupied
}

// Occupied returns the resident pages in slot order, skipping empty slots.
func (fs *FrameSet) Occupied() []int {
	return occupiedPages(fs.frames)
}

func occupiedPages(frames []Frame) []int {
	pages := make([]int, 0, len(frames))
	for _, f := range frames {
		if f.Occupied {
			pages = append(pages, f.Page)
		}
	}
	return pages
}

// Slots returns a copy of every slot, empty ones included.
func (fs *FrameSet) Slots() []Frame {
	out := make([]Frame, len(fs.frames))
	copy(out, fs.frames)
	return out
}
