// Package scenario loads shortest-path teaching scenarios from YAML or TOML files
// and turns them into a graph, a layout and a (start, end) pair.
//
// A scenario lists node positions in ID order and directed edges between them.
// An edge without an explicit cost gets the Euclidean distance between its
// endpoints, which is how the animated demo derived its costs.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/geometry"
)

var (
	// ErrUnknownFormat indicates a file extension or format name that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scenario: unknown format")

	// ErrInvalidScenario indicates a scenario that parses but cannot describe a run.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// Format names a serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Scenario is one graph plus the run to perform on it.
type Scenario struct {
	// Name identifies the scenario in listings and logs.
	Name string `yaml:"name" toml:"name" json:"name"`

	// Description is free text shown by the CLI.
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`

	// Start and End are node indexes into Nodes.
	Start int `yaml:"start" toml:"start" json:"start"`
	End   int `yaml:"end" toml:"end" json:"end"`

	// Nodes holds positions; the i-th entry becomes NodeID i.
	Nodes []geometry.Point `yaml:"nodes" toml:"nodes" json:"nodes"`

	// Edges are emitted in this order, which is also their relaxation order.
	Edges []EdgeSpec `yaml:"edges" toml:"edges" json:"edges"`
}

// EdgeSpec is one directed edge. A nil Cost means Euclidean.
type EdgeSpec struct {
	From int      `yaml:"from" toml:"from" json:"from"`
	To   int      `yaml:"to" toml:"to" json:"to"`
	Cost *float64 `yaml:"cost,omitempty" toml:"cost,omitempty" json:"cost,omitempty"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads, parses and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format and validates the result.
// Unknown fields are rejected in both formats.
func Parse(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("scenario: parse yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("scenario: parse toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("scenario: parse toml: unknown keys %v", extra)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Encode serializes s in the given format.
func Encode(s *Scenario, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("scenario: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("scenario: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, fmt.Errorf("scenario: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Validate checks that the scenario describes a runnable graph.
func (s *Scenario) Validate() error {
	n := len(s.Nodes)
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidScenario)
	}
	if s.Start < 0 || s.Start >= n {
		return fmt.Errorf("%w: start %d outside [0,%d)", ErrInvalidScenario, s.Start, n)
	}
	if s.End < 0 || s.End >= n {
		return fmt.Errorf("%w: end %d outside [0,%d)", ErrInvalidScenario, s.End, n)
	}
	for i, p := range s.Nodes {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: node %d position (%v, %v) must be finite", ErrInvalidScenario, i, p.X, p.Y)
		}
	}
	for i, e := range s.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d→%d) references a missing node", ErrInvalidScenario, i, e.From, e.To)
		}
		if e.Cost != nil && (*e.Cost < 0 || !finite(*e.Cost)) {
			return fmt.Errorf("%w: edge %d cost %v must be finite and non-negative", ErrInvalidScenario, i, *e.Cost)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Build materializes the scenario. Node i of the result is Nodes[i].
func (s *Scenario) Build() (*core.Graph, *geometry.Layout, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	g := core.NewGraph()
	l := geometry.NewLayout()
	for _, p := range s.Nodes {
		l.Set(g.AddNode(), p)
	}
	for i, e := range s.Edges {
		from, to := core.NodeID(e.From), core.NodeID(e.To)
		cost := geometry.Distance(s.Nodes[e.From], s.Nodes[e.To])
		if e.Cost != nil {
			cost = *e.Cost
		}
		if _, err := g.AddEdge(from, to, cost); err != nil {
			return nil, nil, fmt.Errorf("scenario: edge %d: %w", i, err)
		}
	}

	return g, l, nil
}

// StartID returns Start as a node ID.
func (s *Scenario) StartID() core.NodeID { return core.NodeID(s.Start) }

// EndID returns End as a node ID.
func (s *Scenario) EndID() core.NodeID { return core.NodeID(s.End) }

// FromGraph captures g and l as a scenario with explicit costs. Nodes without a
// position are placed at the origin.
func FromGraph(name string, g *core.Graph, l *geometry.Layout, start, end core.NodeID) *Scenario {
	s := &Scenario{Name: name, Start: int(start), End: int(end)}
	for i := 0; i < g.NodeCount(); i++ {
		p, _ := l.Position(core.NodeID(i))
		s.Nodes = append(s.Nodes, p)
	}
	for _, e := range g.Edges() {
		c := e.Cost
		s.Edges = append(s.Edges, EdgeSpec{From: int(e.From), To: int(e.To), Cost: &c})
	}

	return s
}
