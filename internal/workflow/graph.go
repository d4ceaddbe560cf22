package workflow

import "github.com/google/uuid"

// Node is a single typed node of a compiled workflow graph.
type Node struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
	Position   [2]float64     `json:"position"`
}

// Target is one endpoint of a connection: the target node's name, the
// connection type, and the input port index on the target.
type Target struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Output holds the outgoing connections of one node. Main is indexed by
// output port; the main path only ever uses port 0.
type Output struct {
	Main [][]Target `json:"main"`
}

// Graph is a compiled workflow: an ordered node list plus the connection
// map keyed by source node name.
type Graph struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Nodes       []Node            `json:"nodes"`
	Connections map[string]Output `json:"connections"`
	Tags        []string          `json:"tags,omitempty"`
}

// NewGraph returns an empty graph with a fresh identifier.
func NewGraph(name string) *Graph {
	return &Graph{
		ID:          uuid.NewString(),
		Name:        name,
		Connections: map[string]Output{},
	}
}

// AddNode appends a node, assigning it an identifier if it has none, and
// returns its name for chaining into Connect.
func (g *Graph) AddNode(n Node) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Parameters == nil {
		n.Parameters = map[string]any{}
	}
	g.Nodes = append(g.Nodes, n)
	return n.Name
}

// Connect wires an edge from one node's output port 0 to another node's
// input port 0, appending to the source's ordered target list.
func (g *Graph) Connect(from, to string) {
	out, ok := g.Connections[from]
	if !ok || len(out.Main) == 0 {
		out = Output{Main: [][]Target{{}}}
	}
	out.Main[0] = append(out.Main[0], Target{Node: to, Type: "main", Index: 0})
	g.Connections[from] = out
}

// Node returns the named node, if present.
func (g *Graph) Node(name string) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// NodeTypes returns the node type tags in node-list order.
func (g *Graph) NodeTypes() []string {
	out := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = n.Type
	}
	return out
}

// ConnectionCount returns the total number of edges in the graph.
func (g *Graph) ConnectionCount() int {
	count := 0
	for _, out := range g.Connections {
		for _, port := range out.Main {
			count += len(port)
		}
	}
	return count
}

// inboundCounts computes how many edges land on each node name.
func (g *Graph) inboundCounts() map[string]int {
	counts := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		counts[n.Name] = 0
	}
	for _, out := range g.Connections {
		for _, port := range out.Main {
			for _, t := range port {
				counts[t.Node]++
			}
		}
	}
	return counts
}
