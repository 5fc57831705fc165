package sim

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Result is the outcome of replaying a reference sequence through one policy.
type Result struct {
	Policy     string  // policy name, e.g. "fifo"
	Faults     int     // number of page faults
	Hits       int     // number of references found resident
	References int     // length of the replayed sequence
	Frames     []Frame // final slots in slot order, empty ones included
}

// FinalMemory returns the resident pages in slot order, skipping empty slots.
func (r Result) FinalMemory() []int {
	return occupiedPages(r.Frames)
}

// Print writes the fault count and final memory state lines for this result.
func (r Result) Print(w io.Writer) {
	ids := make([]string, 0, len(r.Frames))
	for _, p := range r.FinalMemory() {
		ids = append(ids, strconv.Itoa(p))
	}
	_, _ = fmt.Fprintf(w, "%s: %d page faults.\n", strings.ToUpper(r.Policy), r.Faults)
	_, _ = fmt.Fprintf(w, "Final Memory State: %s\n", strings.Join(ids, " "))
}
