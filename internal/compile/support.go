package compile

import (
	"strings"

	"github.com/arsalion01/blueprintgo/internal/model"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

// requiresDataProcessing holds when the architecture includes a storage
// component: something has to fill it on a schedule.
func requiresDataProcessing(bp *model.Blueprint) bool {
	return len(bp.Architecture.ComponentsOfType(model.ComponentStorage)) > 0
}

// monitoringKeywords mark an explicit monitoring request in requirements.
var monitoringKeywords = []string{"monitor", "uptime", "health check", "alert if", "sla"}

// requiresMonitoring holds when monitoring is explicitly requested or the
// architecture is large enough (more than three components) to warrant a
// health workflow.
func requiresMonitoring(bp *model.Blueprint, reqs []model.Requirement) bool {
	corpus := loweredCorpus(reqs)
	for _, kw := range monitoringKeywords {
		if strings.Contains(corpus, kw) {
			return true
		}
	}
	return len(bp.Architecture.Components) > 3
}

// buildDataProcessingGraph emits the fixed four-node batch shape:
// schedule trigger -> fetch -> batch transform -> status update.
func buildDataProcessingGraph(bp *model.Blueprint) *workflow.Graph {
	g := workflow.NewGraph(bp.Title + " - Data Processing")
	g.Tags = []string{bp.Domain, "data-processing"}

	cursor := newLayoutCursor(layoutMainY)

	prev := g.AddNode(workflow.Node{
		Name:       "Batch Schedule",
		Type:       workflow.TypeCron,
		Parameters: map[string]any{"cron": "0 2 * * *"},
		Position:   cursor.next(),
	})

	fetch := g.AddNode(workflow.Node{
		Name:       "Fetch Records",
		Type:       workflow.TypeHTTPRequest,
		Parameters: map[string]any{"method": "GET", "url": "https://example.com/api/records"},
		Position:   cursor.next(),
	})
	g.Connect(prev, fetch)

	transform := g.AddNode(workflow.Node{
		Name:       "Batch Transform",
		Type:       workflow.TypeFunction,
		Parameters: map[string]any{"code": "return items;"},
		Position:   cursor.next(),
	})
	g.Connect(fetch, transform)

	status := g.AddNode(workflow.Node{
		Name:       "Update Status",
		Type:       workflow.TypeHTTPRequest,
		Parameters: map[string]any{"method": "POST", "url": "https://example.com/api/status"},
		Position:   cursor.next(),
	})
	g.Connect(transform, status)

	return g
}

// buildMonitoringGraph emits the fixed two-node health shape:
// schedule trigger -> health check.
func buildMonitoringGraph(bp *model.Blueprint) *workflow.Graph {
	g := workflow.NewGraph(bp.Title + " - Monitoring")
	g.Tags = []string{bp.Domain, "monitoring"}

	cursor := newLayoutCursor(layoutMainY)

	prev := g.AddNode(workflow.Node{
		Name:       "Health Schedule",
		Type:       workflow.TypeCron,
		Parameters: map[string]any{"cron": "*/15 * * * *"},
		Position:   cursor.next(),
	})

	check := g.AddNode(workflow.Node{
		Name:       "Health Check",
		Type:       workflow.TypeHTTPRequest,
		Parameters: map[string]any{"method": "GET", "url": "https://example.com/health"},
		Position:   cursor.next(),
	})
	g.Connect(prev, check)

	return g
}
