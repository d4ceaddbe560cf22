package classify

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// Trigger phrases for requirement extraction. Extraction runs independently
// of intent classification; one message can yield several requirements.
var (
	automationPhrases = []string{
		"automate", "automatically", "automation", "workflow",
		"every time", "whenever", "manual process", "manually",
		"repetitive", "save time",
	}

	integrationPhrases = []string{
		"integrate", "integration", "connect", "sync", "api", "webhook",
	}

	// knownServices also count as integration triggers on their own.
	knownServices = []string{
		"slack", "stripe", "shopify", "hubspot", "salesforce", "mailchimp",
		"zendesk", "google sheets", "airtable", "twilio", "quickbooks",
		"notion", "jira",
	}
)

// extractRequirements scans one message for automation and integration
// trigger phrases and emits the corresponding requirement records. The
// original (non-folded) message is kept as the answer text.
func extractRequirements(lowered, original string) []model.Requirement {
	var out []model.Requirement

	if hits := phraseHits(lowered, automationPhrases); len(hits) > 0 {
		out = append(out, model.Requirement{
			ID:         uuid.NewString(),
			Category:   model.CategoryBusinessProcess,
			Question:   "What process should be automated?",
			Answer:     original,
			Priority:   model.PriorityHigh,
			Confidence: 0.75,
			Tags:       hits,
		})
	}

	integrationHits := phraseHits(lowered, integrationPhrases)
	serviceHits := phraseHits(lowered, knownServices)
	if len(integrationHits)+len(serviceHits) > 0 {
		out = append(out, model.Requirement{
			ID:         uuid.NewString(),
			Category:   model.CategoryIntegrations,
			Question:   "Which systems need to be connected?",
			Answer:     original,
			Priority:   model.PriorityMedium,
			Confidence: 0.7,
			Tags:       append(integrationHits, serviceHits...),
		})
	}

	return out
}

// phraseHits returns the phrases present in the lowered text.
func phraseHits(lowered string, phrases []string) []string {
	var hits []string
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			hits = append(hits, p)
		}
	}
	return hits
}
