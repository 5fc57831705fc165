package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vmsim/pagesim/sim/trace"
)

// TraceDocument is the YAML export of every policy run over one reference file.
type TraceDocument struct {
	Source   string      `yaml:"source"`
	Capacity int         `yaml:"capacity"`
	Runs     []TracedRun `yaml:"runs"`
}

// TracedRun pairs a policy's access records with their summary.
type TracedRun struct {
	Policy   string               `yaml:"policy"`
	Summary  *trace.TraceSummary  `yaml:"summary"`
	Accesses []trace.AccessRecord `yaml:"accesses"`
}

func newTraceDocument(source string, capacity int, traces []*trace.SimulationTrace) *TraceDocument {
	doc := &TraceDocument{
		Source:   source,
		Capacity: capacity,
		Runs:     make([]TracedRun, 0, len(traces)),
	}
	for _, st := range traces {
		doc.Runs = append(doc.Runs, TracedRun{
			Policy:   st.Policy,
			Summary:  trace.Summarize(st),
			Accesses: st.Accesses,
		})
	}
	return doc
}

// writeTrace marshals the traces to path on fs, or to fallback when path is empty.
// Stdout is reserved for the fault report.
func writeTrace(fs afero.Fs, fallback io.Writer, path, source string, capacity int, traces []*trace.SimulationTrace) error {
	data, err := yaml.Marshal(newTraceDocument(source, capacity, traces))
	if err != nil {
		return fmt.Errorf("marshaling trace: %w", err)
	}

	if path == "" {
		_, err = fallback.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing trace %s: %w", path, err)
	}
	logrus.Debugf("Wrote decision trace to '%s'", path)
	return nil
}
