package compile

import (
	"fmt"
	"strings"

	"github.com/arsalion01/blueprintgo/internal/model"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

// serviceNode is one row of the service resolution table.
type serviceNode struct {
	Type       string
	Parameters map[string]any
}

// serviceNodeTypes maps integration service names to their engine node
// types. Services without a row resolve to the generic http-request node.
var serviceNodeTypes = map[string]serviceNode{
	"slack":         {workflow.TypeSlack, map[string]any{"channel": "#automation"}},
	"stripe":        {workflow.TypeStripe, map[string]any{"resource": "charge"}},
	"shopify":       {workflow.TypeShopify, map[string]any{"resource": "order"}},
	"hubspot":       {workflow.TypeHubspot, map[string]any{"resource": "contact"}},
	"salesforce":    {workflow.TypeSalesforce, map[string]any{"resource": "lead"}},
	"mailchimp":     {workflow.TypeMailchimp, map[string]any{"resource": "member"}},
	"zendesk":       {workflow.TypeZendesk, map[string]any{"resource": "ticket"}},
	"google sheets": {workflow.TypeGoogleSheets, map[string]any{"operation": "append"}},
	"airtable":      {workflow.TypeAirtable, map[string]any{"operation": "create"}},
	"twilio":        {workflow.TypeTwilio, map[string]any{"resource": "sms"}},
	"postgres":      {workflow.TypePostgres, map[string]any{"operation": "insert"}},
	"jira":          {workflow.TypeJira, map[string]any{"resource": "issue"}},
}

// integrationNodes builds one node per integration spec, resolving each
// service against the table. The result is never empty: with no specs at
// all, a single generic http-request node stands in.
func integrationNodes(specs []model.IntegrationSpec) []workflow.Node {
	if len(specs) == 0 {
		return []workflow.Node{{
			Name:       "Service Call",
			Type:       workflow.TypeHTTPRequest,
			Parameters: map[string]any{"method": "POST", "url": "https://example.com/api"},
		}}
	}

	nodes := make([]workflow.Node, 0, len(specs))
	for _, spec := range specs {
		nodes = append(nodes, resolveService(spec))
	}
	return nodes
}

// resolveService maps one integration spec to its node. Unknown services
// fall back to a parameterized http-request call.
func resolveService(spec model.IntegrationSpec) workflow.Node {
	key := strings.ToLower(spec.Service)
	if row, ok := serviceNodeTypes[key]; ok {
		params := cloneParams(row.Parameters)
		params["purpose"] = spec.Purpose
		return workflow.Node{
			Name:       integrationNodeName(spec.Service),
			Type:       row.Type,
			Parameters: params,
		}
	}

	return workflow.Node{
		Name: integrationNodeName(spec.Service),
		Type: workflow.TypeHTTPRequest,
		Parameters: map[string]any{
			"method":  "POST",
			"url":     fmt.Sprintf("https://api.%s.example.com", key),
			"purpose": spec.Purpose,
		},
	}
}

// integrationNodeName renders a readable node name from a service name.
func integrationNodeName(service string) string {
	return titleCase(service) + " Integration"
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
