// Package netio: YAML decoding into frozen netlists and vectors.
package netio

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatesim/logic"
	"github.com/katalvlaran/gatesim/netlist"
	"github.com/katalvlaran/gatesim/sim"
)

// ErrBadDocument indicates a YAML document that does not decode into the
// expected circuit or stimulus shape.
var ErrBadDocument = errors.New("netio: malformed document")

// circuitDoc mirrors the circuit YAML schema.
type circuitDoc struct {
	Name    string    `yaml:"name"`
	Inputs  []string  `yaml:"inputs"`
	Outputs []string  `yaml:"outputs"`
	Gates   []gateDoc `yaml:"gates"`
}

// gateDoc mirrors one gate entry.
type gateDoc struct {
	Type   string   `yaml:"type"`
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`
}

// stimulusDoc mirrors the stimulus YAML schema. Values arrive as scalar
// strings so both `A: 1` and `A: "U"` decode uniformly.
type stimulusDoc struct {
	Vectors []map[string]string `yaml:"vectors"`
}

// LoadCircuit decodes a circuit document and freezes it.
//
// Decode errors wrap ErrBadDocument; construction errors pass through the
// netlist sentinels (ErrMultipleDrivers, ErrArityMismatch, ErrUndriven,
// ...), and an unknown gate name surfaces logic.ErrBadGateType.
func LoadCircuit(r io.Reader) (*netlist.Netlist, error) {
	var doc circuitDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Gates) == 0 {
		return nil, fmt.Errorf("%w: no gates", ErrBadDocument)
	}

	b := netlist.NewBuilder()
	if err := b.DeclareInputs(doc.Inputs...); err != nil {
		return nil, err
	}
	if err := b.DeclareOutputs(doc.Outputs...); err != nil {
		return nil, err
	}
	for i, g := range doc.Gates {
		gt, err := logic.ParseGateType(g.Type)
		if err != nil {
			return nil, fmt.Errorf("gate %d (%q): %w", i, g.Type, err)
		}
		if err := b.AddGate(gt, g.Inputs, g.Output); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}

	return b.Freeze()
}

// LoadStimulus decodes a stimulus document into a vector sequence.
// Unknown value symbols surface logic.ErrBadValue with the offending net
// and position attached.
func LoadStimulus(r io.Reader) ([]sim.Vector, error) {
	var doc stimulusDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	vecs := make([]sim.Vector, 0, len(doc.Vectors))
	for i, raw := range doc.Vectors {
		vec := make(sim.Vector, len(raw))
		for name, sym := range raw {
			v, err := logic.ParseValue(sym)
			if err != nil {
				return nil, fmt.Errorf("vector %d, net %q: %w", i, name, err)
			}
			vec[name] = v
		}
		vecs = append(vecs, vec)
	}

	return vecs, nil
}

// resultDoc is the stable, sorted encoding of a simulation result.
type resultDoc struct {
	Engine      string            `yaml:"engine"`
	Final       map[string]string `yaml:"final"`
	Hazards     map[string]string `yaml:"hazards,omitempty"`
	Evaluations int64             `yaml:"evaluations"`
	Transitions int               `yaml:"transitions"`
}

// WriteResult encodes the result summary as YAML: engine, final outputs,
// the nets with a non-none hazard, the evaluation total, and the trace
// length. Maps encode with sorted keys, so output is deterministic.
func WriteResult(w io.Writer, res *sim.Result) error {
	doc := resultDoc{
		Engine:      res.Engine.String(),
		Final:       make(map[string]string, len(res.Final)),
		Evaluations: res.TotalEvals,
		Transitions: len(res.Trace),
	}
	for name, v := range res.Final {
		doc.Final[name] = v.String()
	}

	flagged := make([]string, 0, len(res.Hazards))
	for name, h := range res.Hazards {
		if h != sim.HazardNone {
			flagged = append(flagged, name)
		}
	}
	if len(flagged) > 0 {
		sort.Strings(flagged)
		doc.Hazards = make(map[string]string, len(flagged))
		for _, name := range flagged {
			doc.Hazards[name] = res.Hazards[name].String()
		}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
