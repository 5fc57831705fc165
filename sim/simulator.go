package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/vmsim/pagesim/sim/trace"
)

// Simulate replays refs through policy in order and returns the fault count
// and final frame contents. If st is non-nil every access is recorded in it.
// The policy is consumed: its frames hold the final state afterwards.
func Simulate(policy ReplacementPolicy, refs []int, st *trace.SimulationTrace) Result {
	res := Result{
		Policy:     policy.Name(),
		References: len(refs),
	}

	for i, page := range refs {
		a := policy.Access(i, page)
		if a.Hit {
			res.Hits++
		} else {
			res.Faults++
			if a.DidEvict {
				logrus.Debugf("[%s ref %04d] fault: page %d evicts page %d from slot %d", res.Policy, i, page, a.Evicted, a.Slot)
			} else {
				logrus.Debugf("[%s ref %04d] fault: page %d fills empty slot %d", res.Policy, i, page, a.Slot)
			}
		}
		if st != nil {
			st.RecordAccess(toRecord(a))
		}
	}

	res.Frames = policy.Frames().Slots()
	return res
}

// SimulateFIFO runs the FIFO policy over refs with capacity frames.
func SimulateFIFO(refs []int, capacity int) Result {
	return Simulate(NewReplacementPolicy(PolicyFIFO, capacity), refs, nil)
}

// SimulateLRU runs the LRU policy over refs with capacity frames.
func SimulateLRU(refs []int, capacity int) Result {
	return Simulate(NewReplacementPolicy(PolicyLRU, capacity), refs, nil)
}

func toRecord(a Access) trace.AccessRecord {
	rec := trace.AccessRecord{
		Index: a.Index,
		Page:  a.Page,
		Hit:   a.Hit,
		Slot:  a.Slot,
	}
	if a.DidEvict {
		evicted := a.Evicted
		rec.Evicted = &evicted
	}
	return rec
}
