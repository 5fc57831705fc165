package sim

import "fmt"

// Access describes how a policy handled one reference.
type Access struct {
	Index    int  // position of the reference in the sequence
	Page     int  // referenced page
	Hit      bool // page was already resident
	Slot     int  // slot that was matched (hit) or filled (fault)
	Evicted  int  // page that was overwritten; meaningful only if DidEvict
	DidEvict bool
}

// ReplacementPolicy replays references against its own FrameSet.
// Implementations are not safe for concurrent use; each run owns its policy.
type ReplacementPolicy interface {
	Name() string
	Access(index, page int) Access
	Frames() *FrameSet
}

const (
	PolicyFIFO = "fifo"
	PolicyLRU  = "lru"
)

// ValidReplacementPolicies is the set of recognized policy names, in report order.
var ValidReplacementPolicies = []string{PolicyFIFO, PolicyLRU}

// IsValidReplacementPolicy returns true if name is a recognized policy.
func IsValidReplacementPolicy(name string) bool {
	for _, p := range ValidReplacementPolicies {
		if p == name {
			return true
		}
	}
	return false
}

// NewReplacementPolicy creates a policy by name with capacity empty frames.
// Panics on unrecognized names or a capacity outside [MinCapacity, MaxCapacity].
func NewReplacementPolicy(name string, capacity int) ReplacementPolicy {
	if !IsValidReplacementPolicy(name) {
		panic(fmt.Sprintf("unknown replacement policy %q", name))
	}
	if err := ValidateCapacity(capacity); err != nil {
		panic(err.Error())
	}
	switch name {
	case PolicyFIFO:
		return NewFIFOPolicy(capacity)
	case PolicyLRU:
		return NewLRUPolicy(capacity)
	default:
		panic(fmt.Sprintf("unhandled replacement policy %q", name))
	}
}
