// Package network is a minimal topology model of a water distribution
// network: named nodes (junctions, tanks, reservoirs), named links
// (pipes, pumps, valves), per-junction demand lists, and registries
// for patterns, curves, and injection sources. It exists to feed the
// security metrics with link topology and to carry the consumption
// signal model; it does not parse INP files or simulate anything.
package network

import (
	"fmt"

	"github.com/marisol/aquanet/element"
	"github.com/marisol/aquanet/types"
)

// Node is a named network node. Junctions carry a demand list;
// tanks and reservoirs do not.
type Node struct {
	Name    string
	Kind    types.NodeKind
	Demands *element.Demands
}

// Link is a named network link with its defined start→end
// orientation. Length is meaningful for pipes only.
type Link struct {
	Name      string
	Kind      types.LinkKind
	StartNode string
	EndNode   string
	Length    float64
}

// TimeOptions carries the simulation clock settings used for
// demand resampling and summaries. All values are seconds.
type TimeOptions struct {
	Duration      float64
	PatternStep   float64
	HydraulicStep float64
	QualityStep   float64
}

// Network holds nodes and links by name, preserving insertion order
// for deterministic iteration.
type Network struct {
	Name    string
	Options TimeOptions

	nodes     map[string]*Node
	nodeOrder []string
	links     map[string]*Link
	linkOrder []string

	patterns map[string]*element.Pattern
	curves   map[string]*element.Curve
	sources  map[string]*element.Source
}

// NewNetwork builds an empty network model.
func NewNetwork(name string) *Network {
	return &Network{
		Name:     name,
		nodes:    make(map[string]*Node),
		links:    make(map[string]*Link),
		patterns: make(map[string]*element.Pattern),
		curves:   make(map[string]*element.Curve),
		sources:  make(map[string]*element.Source),
	}
}

func (n *Network) addNode(node *Node) error {
	if _, dup := n.nodes[node.Name]; dup {
		return fmt.Errorf("node %q already exists", node.Name)
	}
	n.nodes[node.Name] = node
	n.nodeOrder = append(n.nodeOrder, node.Name)
	return nil
}

// AddJunction adds a consumption node with its demand list.
// A nil demand list is stored as an empty one.
func (n *Network) AddJunction(name string, demands *element.Demands) error {
	if demands == nil {
		demands = element.NewDemands()
	}
	return n.addNode(&Node{Name: name, Kind: types.Junction, Demands: demands})
}

// AddTank adds a storage node.
func (n *Network) AddTank(name string) error {
	return n.addNode(&Node{Name: name, Kind: types.Tank})
}

// AddReservoir adds a source node.
func (n *Network) AddReservoir(name string) error {
	return n.addNode(&Node{Name: name, Kind: types.Reservoir})
}

func (n *Network) addLink(link *Link) error {
	if _, dup := n.links[link.Name]; dup {
		return fmt.Errorf("link %q already exists", link.Name)
	}
	if _, ok := n.nodes[link.StartNode]; !ok {
		return fmt.Errorf("link %q start node %q does not exist", link.Name, link.StartNode)
	}
	if _, ok := n.nodes[link.EndNode]; !ok {
		return fmt.Errorf("link %q end node %q does not exist", link.Name, link.EndNode)
	}
	n.links[link.Name] = link
	n.linkOrder = append(n.linkOrder, link.Name)
	return nil
}

// AddPipe adds a pipe between two existing nodes.
// Length must be positive.
func (n *Network) AddPipe(name, start, end string, length float64) error {
	if length <= 0 {
		return fmt.Errorf("pipe %q length must be positive, got %v", name, length)
	}
	return n.addLink(&Link{Name: name, Kind: types.Pipe, StartNode: start, EndNode: end, Length: length})
}

// AddPump adds a pump between two existing nodes.
func (n *Network) AddPump(name, start, end string) error {
	return n.addLink(&Link{Name: name, Kind: types.Pump, StartNode: start, EndNode: end})
}

// AddValve adds a valve between two existing nodes.
func (n *Network) AddValve(name, start, end string) error {
	return n.addLink(&Link{Name: name, Kind: types.Valve, StartNode: start, EndNode: end})
}

// AddPattern registers a pattern by its name.
func (n *Network) AddPattern(p *element.Pattern) error {
	if _, dup := n.patterns[p.Name]; dup {
		return fmt.Errorf("pattern %q already exists", p.Name)
	}
	n.patterns[p.Name] = p
	return nil
}

// AddCurve registers a curve by its name.
func (n *Network) AddCurve(c *element.Curve) error {
	if _, dup := n.curves[c.Name]; dup {
		return fmt.Errorf("curve %q already exists", c.Name)
	}
	n.curves[c.Name] = c
	return nil
}

// AddSource registers an injection source by its name.
func (n *Network) AddSource(s *element.Source) error {
	if _, dup := n.sources[s.Name]; dup {
		return fmt.Errorf("source %q already exists", s.Name)
	}
	if _, ok := n.nodes[s.Node]; !ok {
		return fmt.Errorf("source %q node %q does not exist", s.Name, s.Node)
	}
	n.sources[s.Name] = s
	return nil
}

// Node returns a node by name.
func (n *Network) Node(name string) (*Node, error) {
	node, ok := n.nodes[name]
	if !ok {
		return nil, fmt.Errorf("no node %q in network", name)
	}
	return node, nil
}

// Link returns a link by name.
func (n *Network) Link(name string) (*Link, error) {
	link, ok := n.links[name]
	if !ok {
		return nil, fmt.Errorf("no link %q in network", name)
	}
	return link, nil
}

// Pattern returns a registered pattern by name.
func (n *Network) Pattern(name string) (*element.Pattern, error) {
	p, ok := n.patterns[name]
	if !ok {
		return nil, fmt.Errorf("no pattern %q in network", name)
	}
	return p, nil
}

// Nodes returns all nodes in insertion order.
func (n *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(n.nodeOrder))
	for _, name := range n.nodeOrder {
		out = append(out, n.nodes[name])
	}
	return out
}

// Links returns all links in insertion order.
func (n *Network) Links() []*Link {
	out := make([]*Link, 0, len(n.linkOrder))
	for _, name := range n.linkOrder {
		out = append(out, n.links[name])
	}
	return out
}

// Pipes returns all pipe links in insertion order.
func (n *Network) Pipes() []*Link {
	var out []*Link
	for _, name := range n.linkOrder {
		if link := n.links[name]; link.Kind == types.Pipe {
			out = append(out, link)
		}
	}
	return out
}

// PipeInfo exports pipe topology in the tabular form the extent
// metrics consume.
func (n *Network) PipeInfo() []types.LinkInfo {
	pipes := n.Pipes()
	out := make([]types.LinkInfo, len(pipes))
	for i, p := range pipes {
		out[i] = types.LinkInfo{
			Name:      p.Name,
			StartNode: p.StartNode,
			EndNode:   p.EndNode,
			Length:    p.Length,
		}
	}
	return out
}

// PipeLengths exports pipe name → length for the direct extent metric.
func (n *Network) PipeLengths() map[string]float64 {
	out := make(map[string]float64)
	for _, p := range n.Pipes() {
		out[p.Name] = p.Length
	}
	return out
}

func (n *Network) countNodes(kind types.NodeKind) int {
	ct := 0
	for _, node := range n.nodes {
		if node.Kind == kind {
			ct++
		}
	}
	return ct
}

func (n *Network) countLinks(kind types.LinkKind) int {
	ct := 0
	for _, link := range n.links {
		if link.Kind == kind {
			ct++
		}
	}
	return ct
}

// NumNodes returns the total node count.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumLinks returns the total link count.
func (n *Network) NumLinks() int { return len(n.links) }

// NumJunctions returns the junction count.
func (n *Network) NumJunctions() int { return n.countNodes(types.Junction) }

// NumTanks returns the tank count.
func (n *Network) NumTanks() int { return n.countNodes(types.Tank) }

// NumReservoirs returns the reservoir count.
func (n *Network) NumReservoirs() int { return n.countNodes(types.Reservoir) }

// NumPipes returns the pipe count.
func (n *Network) NumPipes() int { return n.countLinks(types.Pipe) }

// NumPumps returns the pump count.
func (n *Network) NumPumps() int { return n.countLinks(types.Pump) }

// NumValves returns the valve count.
func (n *Network) NumValves() int { return n.countLinks(types.Valve) }

// NumPatterns returns the registered pattern count.
func (n *Network) NumPatterns() int { return len(n.patterns) }

// NumSources returns the registered source count.
func (n *Network) NumSources() int { return len(n.sources) }

// TotalPipeLength returns the summed length of all pipes, in meters.
func (n *Network) TotalPipeLength() float64 {
	total := 0.0
	for _, p := range n.Pipes() {
		total += p.Length
	}
	return total
}
