package element

import "fmt"

// Source describes a quality injection at a node: the injection kind
// (CONCEN, MASS, FLOWPACED, SETPOINT), its strength, and the pattern
// gating when it is active.
type Source struct {
	Name       string
	Node       string
	SourceType string
	Strength   float64
	Pattern    *Pattern
}

// NewSource builds an injection source.
func NewSource(name, node, sourceType string, strength float64, pattern *Pattern) *Source {
	return &Source{
		Name:       name,
		Node:       node,
		SourceType: sourceType,
		Strength:   strength,
		Pattern:    pattern,
	}
}

// Equal reports value equality over node, type, strength, and pattern
// (by value). The name does not participate.
func (s *Source) Equal(o *Source) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Node != o.Node || s.SourceType != o.SourceType || s.Strength != o.Strength {
		return false
	}
	return s.Pattern.Equal(o.Pattern)
}

func (s *Source) String() string {
	return fmt.Sprintf("<Source: %q, node=%q, type=%q, strength=%v>",
		s.Name, s.Node, s.SourceType, s.Strength)
}
