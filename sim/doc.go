// Package sim replays page reference sequences against a fixed set of
// physical frames and counts page faults.
//
// # Reading Guide
//
//   - frames.go: FrameSet, the fixed-capacity slot array with explicit empty slots
//   - policy.go: the ReplacementPolicy interface and the by-name factory
//   - fifo.go, lru.go: the two eviction policies
//   - simulator.go: the replay loop shared by every policy
//   - result.go: Result and its report lines
//
// Sub-packages:
//   - sim/reference/: loading reference sequences from files
//   - sim/trace/: per-reference decision records
//
// Every run owns its policy and frames; nothing is shared between runs, so
// FIFO and LRU can be replayed over the same read-only sequence.
package sim
