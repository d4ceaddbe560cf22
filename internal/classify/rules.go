package classify

import "github.com/arsalion01/blueprintgo/internal/model"

// intentRule binds a keyword set to an intent, the requirement category it
// implies, and a fixed confidence.
type intentRule struct {
	Intent     string
	Category   model.RequirementCategory
	Confidence float64
	Keywords   []string
}

// intentRules is evaluated in order; the first rule with any keyword hit
// wins. The sets are not mutually exclusive, so this priority order is part
// of the classification contract.
var intentRules = []intentRule{
	{
		Intent:     "ecommerce-automation",
		Category:   model.CategoryBusinessProcess,
		Confidence: 0.9,
		Keywords: []string{
			"order", "shop", "product", "inventory", "cart", "checkout",
			"payment", "e-commerce", "ecommerce", "fulfillment",
		},
	},
	{
		Intent:     "sales-automation",
		Category:   model.CategoryBusinessProcess,
		Confidence: 0.85,
		Keywords: []string{
			"lead", "crm", "sales", "pipeline", "deal", "prospect",
			"follow-up", "hubspot", "salesforce",
		},
	},
	{
		Intent:     "marketing-automation",
		Category:   model.CategoryBusinessProcess,
		Confidence: 0.85,
		Keywords: []string{
			"campaign", "email marketing", "newsletter", "social media",
			"content", "seo", "mailchimp", "audience",
		},
	},
	{
		Intent:     "support-automation",
		Category:   model.CategoryBusinessProcess,
		Confidence: 0.8,
		Keywords: []string{
			"support", "ticket", "helpdesk", "customer service", "chat",
			"zendesk", "faq", "complaint",
		},
	},
	{
		Intent:     "technical-integration",
		Category:   model.CategoryIntegrations,
		Confidence: 0.8,
		Keywords: []string{
			"api", "integration", "integrate", "webhook", "database",
			"sync", "connect", "endpoint",
		},
	},
	{
		Intent:     "scale-planning",
		Category:   model.CategoryScaleVolume,
		Confidence: 0.75,
		Keywords: []string{
			"volume", "scale", "per day", "per hour", "daily", "thousands",
			"millions", "concurrent", "high traffic",
		},
	},
}

// Fallback when no keyword set matches.
const (
	fallbackIntent     = "general-inquiry"
	fallbackConfidence = 0.5
)
