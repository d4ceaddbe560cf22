package compile

import (
	"context"
	"strings"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/model"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

// Builder compiles blueprints into workflow graphs. It is stateless and
// safe for concurrent use.
type Builder struct {
	opts Options
}

// New returns a builder with the given options.
func New(opts Options) *Builder {
	return &Builder{opts: opts.withDefaults()}
}

// Compile lowers the blueprint into its workflow graphs: the main graph,
// always, plus the supporting data-processing and monitoring graphs when
// the architecture calls for them. Compilation never fails; every
// unresolved case has a fallback node type.
func (b *Builder) Compile(ctx context.Context, bp *model.Blueprint, reqs []model.Requirement) []*workflow.Graph {
	logger := ctxlog.FromContext(ctx)

	graphs := []*workflow.Graph{b.buildMainGraph(bp, reqs)}

	if requiresDataProcessing(bp) {
		graphs = append(graphs, buildDataProcessingGraph(bp))
	}
	if requiresMonitoring(bp, reqs) {
		graphs = append(graphs, buildMonitoringGraph(bp))
	}

	for _, g := range graphs {
		logger.Debug("Compiled workflow graph",
			"graph", g.Name,
			"nodes", len(g.Nodes),
			"connections", g.ConnectionCount(),
		)
	}
	return graphs
}

// buildMainGraph assembles the main chain in strict construction order:
// trigger, optional validation, processing, integrations, notification.
// Each appended node is wired from the immediately preceding one through
// port 0, so the main path is always a linear chain.
func (b *Builder) buildMainGraph(bp *model.Blueprint, reqs []model.Requirement) *workflow.Graph {
	g := workflow.NewGraph(bp.Title)
	g.Tags = []string{bp.Domain, string(bp.Complexity)}

	cursor := newLayoutCursor(layoutMainY)

	trigger := selectTrigger(reqs)
	trigger.Position = cursor.next()
	prev := g.AddNode(trigger)

	if b.opts.SecurityLevel != SecurityBasic {
		validation := workflow.Node{
			Name:       "Input Validation",
			Type:       workflow.TypeFilter,
			Parameters: map[string]any{"mode": "strict", "onFail": "discard"},
			Position:   cursor.next(),
		}
		name := g.AddNode(validation)
		g.Connect(prev, name)
		prev = name
	}

	for _, node := range processingNodes(bp.Architecture) {
		node.Position = cursor.next()
		name := g.AddNode(node)
		g.Connect(prev, name)
		prev = name
	}

	for _, node := range integrationNodes(bp.Architecture.Integrations) {
		node.Position = cursor.next()
		name := g.AddNode(node)
		g.Connect(prev, name)
		prev = name
	}

	notify := workflow.Node{
		Name:       "Send Notification",
		Type:       workflow.TypeEmailSend,
		Parameters: map[string]any{"subject": bp.Title + ": run complete"},
		Position:   cursor.next(),
	}
	g.Connect(prev, g.AddNode(notify))

	if b.opts.IncludeErrorHandling {
		appendErrorHandling(g)
	}

	return g
}

// processingNodes builds one node per processor component, AI-flavored
// when the component name carries an AI marker. With no processor
// components at all, a single generic node stands in.
func processingNodes(arch model.Architecture) []workflow.Node {
	processors := arch.ComponentsOfType(model.ComponentProcessor)
	if len(processors) == 0 {
		return []workflow.Node{{
			Name:       "Process Data",
			Type:       workflow.TypeFunction,
			Parameters: map[string]any{"code": "return items;"},
		}}
	}

	nodes := make([]workflow.Node, 0, len(processors))
	for _, comp := range processors {
		nodeType := workflow.TypeFunction
		params := map[string]any{"notes": comp.Description}
		if hasAIMarker(comp.Name) {
			nodeType = workflow.TypeOpenAI
			params["operation"] = "classify"
		}
		nodes = append(nodes, workflow.Node{
			Name:       comp.Name,
			Type:       nodeType,
			Parameters: params,
		})
	}
	return nodes
}

// aiMarkers flag a processor component as AI-flavored. "ai" and "ml" are
// matched as whole words so that names like "Email Digest" stay generic.
var (
	aiMarkerWords      = []string{"ai", "ml", "gpt"}
	aiMarkerSubstrings = []string{"intelligen", "scoring", "machine learning"}
)

func hasAIMarker(name string) bool {
	lowered := strings.ToLower(name)
	for _, marker := range aiMarkerSubstrings {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	for _, word := range strings.Fields(lowered) {
		for _, marker := range aiMarkerWords {
			if word == marker {
				return true
			}
		}
	}
	return false
}

// appendErrorHandling adds the error-handler side path: an error trigger
// and an error notification, connected to each other but never to the main
// chain. The engine routes failures to the error trigger natively.
func appendErrorHandling(g *workflow.Graph) {
	cursor := newLayoutCursor(layoutErrorY)

	handler := workflow.Node{
		Name:       "Error Handler",
		Type:       workflow.TypeErrorTrigger,
		Parameters: map[string]any{},
		Position:   cursor.next(),
	}
	notify := workflow.Node{
		Name:       "Error Notification",
		Type:       workflow.TypeEmailSend,
		Parameters: map[string]any{"subject": g.Name + ": run failed"},
		Position:   cursor.next(),
	}

	from := g.AddNode(handler)
	g.Connect(from, g.AddNode(notify))
}
