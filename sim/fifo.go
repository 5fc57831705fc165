package sim

// FIFOPolicy evicts the page that has been resident longest, tracked by a
// circular cursor over the slots. Hits never move the cursor.
type FIFOPolicy struct {
	frames *FrameSet
	oldest int // next slot to fill
}

// NewFIFOPolicy creates a FIFOPolicy with capacity empty frames.
func NewFIFOPolicy(capacity int) *FIFOPolicy {
	return &FIFOPolicy{frames: NewFrameSet(capacity)}
}

func (p *FIFOPolicy) Name() string { return PolicyFIFO }

func (p *FIFOPolicy) Frames() *FrameSet { return p.frames }

// Access looks page up and, on a fault, overwrites the slot under the cursor
// and advances the cursor modulo capacity.
func (p *FIFOPolicy) Access(index, page int) Access {
	if slot, ok := p.frames.Find(page); ok {
		return Access{Index: index, Page: page, Hit: true, Slot: slot}
	}

	slot := p.oldest
	evicted, didEvict := p.frames.Place(slot, page)
	p.oldest = (p.oldest + 1) % p.frames.Capacity()

	return Access{
		Index:    index,
		Page:     page,
		Slot:     slot,
		Evicted:  evicted,
		DidEvict: didEvict,
	}
}
