package sim

// unsetTimestamp marks a slot that has never been filled. It is lower than
// any reference index, so empty slots are always chosen before occupied ones.
const unsetTimestamp = -1

// LRUPolicy evicts the page whose last access is oldest. Each slot carries
// the index of the reference that last matched or filled it.
type LRUPolicy struct {
	frames     *FrameSet
	timestamps []int
}

// NewLRUPolicy creates an LRUPolicy with capacity empty frames.
func NewLRUPolicy(capacity int) *LRUPolicy {
	ts := make([]int, capacity)
	for i := range ts {
		ts[i] = unsetTimestamp
	}
	return &LRUPolicy{
		frames:     NewFrameSet(capacity),
		timestamps: ts,
	}
}

func (p *LRUPolicy) Name() string { return PolicyLRU }

func (p *LRUPolicy) Frames() *FrameSet { return p.frames }

// Access refreshes the timestamp of a resident page, or replaces the slot
// with the minimum timestamp. A hit never moves the page to another slot.
func (p *LRUPolicy) Access(index, page int) Access {
	if slot, ok := p.frames.Find(page); ok {
		p.timestamps[slot] = index
		return Access{Index: index, Page: page, Hit: true, Slot: slot}
	}

	victim := p.victim()
	evicted, didEvict := p.frames.Place(victim, page)
	p.timestamps[victim] = index

	return Access{
		Index:    index,
		Page:     page,
		Slot:     victim,
		Evicted:  evicted,
		DidEvict: didEvict,
	}
}

// victim scans left to right and keeps the first minimum; later slots win
// only with a strictly lower timestamp.
func (p *LRUPolicy) victim() int {
	victim := 0
	for slot := 1; slot < len(p.timestamps); slot++ {
		if p.timestamps[slot] < p.timestamps[victim] {
			victim = slot
		}
	}
	return victim
}

// Timestamps returns a copy of the per-slot last-access indices.
// Slots never filled report -1.
func (p *LRUPolicy) Timestamps() []int {
	out := make([]int, len(p.timestamps))
	copy(out, p.timestamps)
	return out
}
