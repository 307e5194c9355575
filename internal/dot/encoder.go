// Package dot renders games as Graphviz DOT text. It is a read-only adapter
// over the core query surface: nodes are states, edges are grouped labeled
// transitions, and dashed undirected edges mark each player's observation
// classes.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandell/mkbsc"
)

// LabelStyle selects how states are rendered.
type LabelStyle int

const (
	// LabelNice prints the full knowledge tuple, nested sets included.
	LabelNice LabelStyle = iota
	// LabelIsocheck prints only the consistent base, the most compact form.
	LabelIsocheck
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithoutEdgeLabels drops the joint-action labels from transitions.
func WithoutEdgeLabels() Option {
	return func(e *Encoder) { e.suppressEdges = true }
}

// WithoutObservations drops the dashed observation-class edges.
func WithoutObservations() Option {
	return func(e *Encoder) { e.skipObservations = true }
}

// WithLabelStyle selects the node label rendering.
func WithLabelStyle(style LabelStyle) Option {
	return func(e *Encoder) { e.labels = style }
}

// Encoder writes games as DOT digraphs.
type Encoder struct {
	suppressEdges    bool
	skipObservations bool
	labels           LabelStyle
}

// NewEncoder builds an encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes g to w in DOT format. The game is never mutated.
func (e *Encoder) Encode(w io.Writer, g *mkbsc.Game) error {
	var sb strings.Builder

	sb.WriteString("digraph {\n")
	sb.WriteString("\tnodesep=0.5;\n\tranksep=0.5;\n\tsplines=true;\n\n")

	states := g.States()
	ids := make(map[string]string, len(states))
	for i, s := range states {
		id := fmt.Sprintf("n%d", i)
		ids[s.Key()] = id
		fmt.Fprintf(&sb, "\t%s [label=%q];\n", id, e.label(s))
	}

	// Hidden entry arrow into the initial state.
	sb.WriteString("\n\thidden [shape=none, label=\"\"];\n")
	fmt.Fprintf(&sb, "\thidden -> %s;\n\n", ids[g.Initial().Key()])

	e.writeTransitions(&sb, g, ids)
	if !e.skipObservations {
		e.writeObservations(&sb, g, ids)
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// EncodeToBytes encodes and returns the result as bytes.
func (e *Encoder) EncodeToBytes(g *mkbsc.Game) ([]byte, error) {
	var buf strings.Builder
	if err := e.Encode(&buf, g); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

func (e *Encoder) label(s *mkbsc.State) string {
	if e.labels == LabelIsocheck {
		base := s.ConsistentBase()
		parts := make([]string, len(base))
		for i, k := range base {
			parts[i] = k.Atom()
		}
		return strings.Join(parts, ", ")
	}
	return s.String()
}

// writeTransitions collapses all transitions between the same pair of
// states into one edge carrying every joint-action label, "(-)" when the
// pair is connected under the whole alphabet.
func (e *Encoder) writeTransitions(sb *strings.Builder, g *mkbsc.Game, ids map[string]string) {
	type pair struct{ src, dst string }
	labels := make(map[pair][]string)
	var order []pair

	for _, t := range g.Transitions() {
		p := pair{t.Source.Key(), t.Target.Key()}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		labels[p] = append(labels[p], t.Action.String())
	}

	total := len(g.Alphabet().JointActions())
	for _, p := range order {
		var attrs []string
		if !e.suppressEdges {
			label := strings.Join(labels[p], ", ")
			if len(labels[p]) == total {
				label = "(-)"
			}
			attrs = append(attrs, fmt.Sprintf("label=%q", label))
		}
		if p.src == p.dst {
			attrs = append(attrs, "dir=back")
		}
		fmt.Fprintf(sb, "\t%s -> %s", ids[p.src], ids[p.dst])
		if len(attrs) > 0 {
			fmt.Fprintf(sb, " [%s]", strings.Join(attrs, ", "))
		}
		sb.WriteString(";\n")
	}
}

// writeObservations draws dashed undirected edges between every pair of
// states a player cannot tell apart, one color per player.
func (e *Encoder) writeObservations(sb *strings.Builder, g *mkbsc.Game, ids map[string]string) {
	sb.WriteString("\n")
	for player := 0; player < g.Players(); player++ {
		for _, class := range g.Partitioning(player).Classes() {
			members := class.States()
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					fmt.Fprintf(sb,
						"\t%s -> %s [style=dashed, arrowhead=none, label=\"~%d\", colorscheme=set19, color=%d];\n",
						ids[members[i].Key()], ids[members[j].Key()], player, player+1)
				}
			}
		}
	}
}
