package blueprint

import (
	"strings"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// archetype is a fixed architecture template for one domain.
type archetype struct {
	Components   []model.Component
	DataFlow     []model.DataFlowStep
	Integrations []model.IntegrationSpec
	Security     []string
	Scalability  string
}

// archetypes maps domains to their architecture templates. Domains without
// an entry fall back to the generic archetype.
var archetypes = map[string]archetype{
	DomainEcommerce: {
		Components: []model.Component{
			{Name: "Order Intake", Type: model.ComponentTrigger, Description: "Receives order events from the storefront", NodeHints: []string{"webhook"}},
			{Name: "Order Validation", Type: model.ComponentProcessor, Description: "Checks order shape, stock, and fraud signals", DependsOn: []string{"Order Intake"}},
			{Name: "Payment Capture", Type: model.ComponentIntegrator, Description: "Confirms payment with the payment provider", DependsOn: []string{"Order Validation"}},
			{Name: "Inventory Sync", Type: model.ComponentIntegrator, Description: "Adjusts stock levels in the storefront", DependsOn: []string{"Payment Capture"}},
			{Name: "Order Archive", Type: model.ComponentStorage, Description: "Persists processed orders for reporting", DependsOn: []string{"Inventory Sync"}},
			{Name: "Customer Notification", Type: model.ComponentNotifier, Description: "Confirms the order to the customer and the team", DependsOn: []string{"Order Archive"}},
		},
		DataFlow: []model.DataFlowStep{
			{Name: "receive-order", Description: "Storefront posts the new order"},
			{Name: "validate", Description: "Order is validated and enriched"},
			{Name: "capture-payment", Description: "Payment is captured with the provider"},
			{Name: "sync-inventory", Description: "Stock levels are updated"},
			{Name: "notify", Description: "Customer and team are notified"},
		},
		Integrations: []model.IntegrationSpec{
			{Service: "shopify", Purpose: "Order events and inventory", AuthMethod: "api-key", RateLimit: "2 rps"},
			{Service: "stripe", Purpose: "Payment capture", AuthMethod: "api-key", RateLimit: "100 rps"},
			{Service: "slack", Purpose: "Team notifications", AuthMethod: "oauth2", RateLimit: "1 rps"},
		},
		Security: []string{
			"Verify webhook signatures on every order event",
			"Keep payment handling inside the provider's PCI scope",
			"Store service credentials in the engine credential vault",
		},
		Scalability: "Order intake is webhook-driven and stateless; bursts are absorbed by the engine queue and integrations are rate-limited per service.",
	},
	DomainSales: {
		Components: []model.Component{
			{Name: "Lead Capture", Type: model.ComponentTrigger, Description: "Receives new leads from forms and landing pages", NodeHints: []string{"webhook"}},
			{Name: "AI Lead Scoring", Type: model.ComponentProcessor, Description: "Scores leads on fit and intent", DependsOn: []string{"Lead Capture"}},
			{Name: "CRM Sync", Type: model.ComponentIntegrator, Description: "Upserts the scored lead into the CRM", DependsOn: []string{"AI Lead Scoring"}},
			{Name: "Rep Notification", Type: model.ComponentNotifier, Description: "Alerts the owning rep about hot leads", DependsOn: []string{"CRM Sync"}},
		},
		DataFlow: []model.DataFlowStep{
			{Name: "capture-lead", Description: "Form submission lands as a lead record"},
			{Name: "score", Description: "Lead is scored and segmented"},
			{Name: "sync-crm", Description: "CRM record is created or updated"},
			{Name: "alert-rep", Description: "Owning rep is notified"},
		},
		Integrations: []model.IntegrationSpec{
			{Service: "hubspot", Purpose: "CRM records", AuthMethod: "oauth2", RateLimit: "10 rps"},
			{Service: "slack", Purpose: "Rep alerts", AuthMethod: "oauth2", RateLimit: "1 rps"},
		},
		Security: []string{
			"Lead data is PII; restrict it to the CRM and the engine run log",
			"OAuth tokens rotated through the engine credential vault",
		},
		Scalability: "Lead volume is low-frequency; the scoring step is the only hot spot and can be batched if form traffic grows.",
	},
	DomainData: {
		Components: []model.Component{
			{Name: "Scheduled Fetch", Type: model.ComponentTrigger, Description: "Pulls source data on a fixed schedule", NodeHints: []string{"schedule"}},
			{Name: "Data Transformation", Type: model.ComponentProcessor, Description: "Cleans, joins, and reshapes the batch", DependsOn: []string{"Scheduled Fetch"}},
			{Name: "Warehouse Load", Type: model.ComponentStorage, Description: "Loads the transformed batch into the warehouse", DependsOn: []string{"Data Transformation"}},
			{Name: "Report Delivery", Type: model.ComponentNotifier, Description: "Publishes the refreshed report", DependsOn: []string{"Warehouse Load"}},
		},
		DataFlow: []model.DataFlowStep{
			{Name: "fetch", Description: "Source systems are queried on schedule"},
			{Name: "transform", Description: "Batch is validated and reshaped"},
			{Name: "load", Description: "Warehouse tables are refreshed"},
			{Name: "deliver", Description: "Stakeholders receive the report"},
		},
		Integrations: []model.IntegrationSpec{
			{Service: "postgres", Purpose: "Warehouse tables", AuthMethod: "basic", RateLimit: "n/a"},
			{Service: "google sheets", Purpose: "Report output", AuthMethod: "oauth2", RateLimit: "1 rps"},
		},
		Security: []string{
			"Read-only credentials for all source systems",
			"Row counts reconciled before the old report is replaced",
		},
		Scalability: "Batch size grows linearly with the source data; the schedule and batch window are the tuning knobs.",
	},
}

// genericArchetype is the fallback for unmatched domains.
var genericArchetype = archetype{
	Components: []model.Component{
		{Name: "Workflow Trigger", Type: model.ComponentTrigger, Description: "Starts the automation"},
		{Name: "Data Processing", Type: model.ComponentProcessor, Description: "Applies the business rules", DependsOn: []string{"Workflow Trigger"}},
		{Name: "Service Integration", Type: model.ComponentIntegrator, Description: "Exchanges data with the connected service", DependsOn: []string{"Data Processing"}},
		{Name: "Completion Notification", Type: model.ComponentNotifier, Description: "Reports the run result", DependsOn: []string{"Service Integration"}},
	},
	DataFlow: []model.DataFlowStep{
		{Name: "trigger", Description: "Automation starts"},
		{Name: "process", Description: "Business rules are applied"},
		{Name: "integrate", Description: "Connected service is updated"},
		{Name: "notify", Description: "Result is reported"},
	},
	Integrations: []model.IntegrationSpec{
		{Service: "http", Purpose: "Generic service calls", AuthMethod: "api-key", RateLimit: "n/a"},
	},
	Security: []string{
		"Service credentials kept in the engine credential vault",
	},
	Scalability: "Single linear workflow; scale by running multiple engine workers.",
}

// selectArchetype returns the architecture template for the domain, or the
// generic fallback.
func selectArchetype(domain string) archetype {
	if a, ok := archetypes[domain]; ok {
		return a
	}
	return genericArchetype
}

// buildArchitecture instantiates the selected archetype and folds in
// integration services mentioned by the requirements but absent from the
// template.
func buildArchitecture(a Analysis, reqs []model.Requirement) model.Architecture {
	arch := selectArchetype(a.Domain)

	out := model.Architecture{
		Components:   arch.Components,
		DataFlow:     arch.DataFlow,
		Integrations: arch.Integrations,
		Security:     arch.Security,
		Scalability:  arch.Scalability,
	}

	declared := make(map[string]struct{}, len(out.Integrations))
	for _, spec := range out.Integrations {
		declared[spec.Service] = struct{}{}
	}

	corpus := requirementCorpus(reqs)
	for _, svc := range mentionedServices(corpus) {
		if _, ok := declared[svc]; ok {
			continue
		}
		declared[svc] = struct{}{}
		out.Integrations = append(out.Integrations, model.IntegrationSpec{
			Service:    svc,
			Purpose:    "Requested in requirements",
			AuthMethod: "api-key",
			RateLimit:  "n/a",
		})
	}

	return out
}

// serviceVocabulary is the set of integration services recognized in
// requirement text.
var serviceVocabulary = []string{
	"slack", "stripe", "shopify", "hubspot", "salesforce", "mailchimp",
	"zendesk", "google sheets", "airtable", "twilio", "quickbooks",
	"notion", "jira", "postgres",
}

// mentionedServices returns the known services present in the corpus, in
// vocabulary order.
func mentionedServices(corpus string) []string {
	var out []string
	for _, svc := range serviceVocabulary {
		if strings.Contains(corpus, svc) {
			out = append(out, svc)
		}
	}
	return out
}
