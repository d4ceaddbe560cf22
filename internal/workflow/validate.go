package workflow

import "fmt"

// Validate checks structural well-formedness:
//
//   - the graph has at least one node and starts with a trigger
//   - the trigger has no inbound edges
//   - every other main-path node has at least one inbound edge
//   - the main path is acyclic
//   - error-handling nodes are unreachable from the main path
//
// Error-handling nodes are the ones reachable from an error-trigger node;
// they are exempt from the inbound-edge rule because the engine routes
// failures to them without explicit edges.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("graph %q has no nodes", g.Name)
	}

	first := g.Nodes[0]
	if !IsTrigger(first.Type) {
		return fmt.Errorf("graph %q does not start with a trigger node (got %q)", g.Name, first.Type)
	}

	inbound := g.inboundCounts()
	if inbound[first.Name] != 0 {
		return fmt.Errorf("trigger node %q has %d inbound edge(s)", first.Name, inbound[first.Name])
	}

	errorSide := g.errorSideNodes()

	for _, n := range g.Nodes[1:] {
		if _, onErrorSide := errorSide[n.Name]; onErrorSide {
			continue
		}
		if n.Type == TypeErrorTrigger {
			continue
		}
		if inbound[n.Name] == 0 {
			return fmt.Errorf("node %q is unreachable: no inbound edges", n.Name)
		}
	}

	for from, out := range g.Connections {
		if _, fromError := errorSide[from]; fromError {
			continue
		}
		if n, ok := g.Node(from); ok && n.Type == TypeErrorTrigger {
			continue
		}
		for _, port := range out.Main {
			for _, t := range port {
				if _, toError := errorSide[t.Node]; toError {
					return fmt.Errorf("main-path node %q connects into error-handling node %q", from, t.Node)
				}
			}
		}
	}

	if g.hasCycle() {
		return fmt.Errorf("graph %q contains a cycle", g.Name)
	}

	return nil
}

// errorSideNodes returns the names of all nodes reachable from an
// error-trigger node, excluding the error triggers themselves.
func (g *Graph) errorSideNodes() map[string]struct{} {
	out := make(map[string]struct{})
	for _, n := range g.Nodes {
		if n.Type != TypeErrorTrigger {
			continue
		}
		g.walk(n.Name, func(name string) {
			if name != n.Name {
				out[name] = struct{}{}
			}
		})
	}
	return out
}

// walk visits every node reachable from start, including start itself.
func (g *Graph) walk(start string, visit func(string)) {
	seen := map[string]struct{}{}
	stack := []string{start}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := seen[name]; done {
			continue
		}
		seen[name] = struct{}{}
		visit(name)
		for _, port := range g.Connections[name].Main {
			for _, t := range port {
				stack = append(stack, t.Node)
			}
		}
	}
}

// hasCycle runs a three-color depth-first search over the connection map.
func (g *Graph) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.Nodes))

	var visit func(name string) bool
	visit = func(name string) bool {
		color[name] = gray
		for _, port := range g.Connections[name].Main {
			for _, t := range port {
				switch color[t.Node] {
				case gray:
					return true
				case white:
					if visit(t.Node) {
						return true
					}
				}
			}
		}
		color[name] = black
		return false
	}

	for _, n := range g.Nodes {
		if color[n.Name] == white {
			if visit(n.Name) {
				return true
			}
		}
	}
	return false
}
