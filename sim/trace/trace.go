package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelAccesses captures every hit, fault and eviction.
	TraceLevelAccesses TraceLevel = "accesses"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelAccesses: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level    TraceLevel `yaml:"level"`
	Capacity int        `yaml:"capacity"`
}

// SimulationTrace collects access records during one policy run.
type SimulationTrace struct {
	Policy   string         `yaml:"policy"`
	Config   TraceConfig    `yaml:"config"`
	Accesses []AccessRecord `yaml:"accesses"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(policy string, config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Policy:   policy,
		Config:   config,
		Accesses: make([]AccessRecord, 0),
	}
}

// RecordAccess appends an access record.
func (st *SimulationTrace) RecordAccess(record AccessRecord) {
	st.Accesses = append(st.Accesses, record)
}
