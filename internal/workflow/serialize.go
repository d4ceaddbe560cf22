package workflow

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serialize renders the graph as the portable JSON document consumed by the
// execution engine: `{"nodes": [...], "connections": {...}}` plus the graph
// metadata.
func Serialize(g *Graph) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize graph %q: %w", g.Name, err)
	}
	return string(data), nil
}

// Deserialize parses a serialized graph document. A payload that is not a
// JSON object fails fast with a structural error rather than being coerced.
func Deserialize(doc string) (*Graph, error) {
	trimmed := strings.TrimSpace(doc)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("workflow document must be a JSON object")
	}

	var g Graph
	if err := json.Unmarshal([]byte(trimmed), &g); err != nil {
		return nil, fmt.Errorf("failed to parse workflow document: %w", err)
	}
	if g.Connections == nil {
		g.Connections = map[string]Output{}
	}
	return &g, nil
}
