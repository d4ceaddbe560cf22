package workflow

// Node type tags. The vocabulary is fixed: triggers, generic processing
// nodes, the generic integration fallback, and service-specific types.
const (
	TypeWebhook       = "webhook"
	TypeCron          = "cron"
	TypeEmailTrigger  = "email-trigger"
	TypeManualTrigger = "manual-trigger"
	TypeErrorTrigger  = "error-trigger"

	TypeFunction    = "function"
	TypeFilter      = "filter"
	TypeOpenAI      = "openai"
	TypeHTTPRequest = "http-request"
	TypeEmailSend   = "email-send"
)

// Service-specific node types emitted by the integration table.
const (
	TypeSlack        = "slack"
	TypeStripe       = "stripe"
	TypeShopify      = "shopify"
	TypeHubspot      = "hubspot"
	TypeSalesforce   = "salesforce"
	TypeMailchimp    = "mailchimp"
	TypeZendesk      = "zendesk"
	TypeGoogleSheets = "google-sheets"
	TypeAirtable     = "airtable"
	TypeTwilio       = "twilio"
	TypePostgres     = "postgres"
	TypeJira         = "jira"
)

// triggerTypes is the set of node types that start a graph.
var triggerTypes = map[string]struct{}{
	TypeWebhook:       {},
	TypeCron:          {},
	TypeEmailTrigger:  {},
	TypeManualTrigger: {},
	TypeErrorTrigger:  {},
}

// IsTrigger reports whether the node type starts a graph rather than
// continuing one.
func IsTrigger(nodeType string) bool {
	_, ok := triggerTypes[nodeType]
	return ok
}
