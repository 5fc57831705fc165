// Package trace provides per-reference decision recording for replacement-policy analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AccessRecord captures how a policy handled a single page reference.
type AccessRecord struct {
	Index   int  `yaml:"index"`
	Page    int  `yaml:"page"`
	Hit     bool `yaml:"hit"`
	Slot    int  `yaml:"slot"`
	Evicted *int `yaml:"evicted,omitempty"` // nil when no resident page was overwritten
}
