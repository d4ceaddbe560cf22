package blueprint

import (
	"strings"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// Analysis is the derived shape of the automation: its domain, complexity
// grade, integration surface, and expected data volume.
type Analysis struct {
	Domain           string
	Complexity       model.Complexity
	ComplexityScore  int
	IntegrationCount int
	DataVolume       string
}

// Automation domains. The zero requirement set resolves to DomainGeneral.
const (
	DomainEcommerce = "ecommerce"
	DomainSales     = "sales"
	DomainData      = "data"
	DomainSupport   = "support"
	DomainMarketing = "marketing"
	DomainGeneral   = "general"
)

// domainRule binds a keyword set to a domain label. Evaluated in priority
// order, first match wins.
type domainRule struct {
	Domain   string
	Keywords []string
}

var domainRules = []domainRule{
	{DomainEcommerce, []string{"order", "shop", "product", "e-commerce", "ecommerce", "cart", "checkout", "inventory", "fulfillment"}},
	{DomainSales, []string{"lead", "crm", "sales", "pipeline", "deal", "prospect"}},
	{DomainData, []string{"data", "report", "etl", "spreadsheet", "analytics", "warehouse", "dashboard"}},
	{DomainSupport, []string{"support", "ticket", "helpdesk", "customer service", "complaint"}},
	{DomainMarketing, []string{"campaign", "email", "newsletter", "social", "content"}},
}

// integrationKeywords is the vocabulary counted toward the integration
// surface. Each keyword counts at most once however often it appears.
var integrationKeywords = []string{
	"api", "webhook", "slack", "stripe", "shopify", "hubspot", "salesforce",
	"mailchimp", "zendesk", "google sheets", "airtable", "twilio",
	"quickbooks", "notion", "jira", "database", "crm", "email",
}

// Complexity signal keyword sets.
var (
	aiKeywords         = []string{"ai", "gpt", "machine learning", "intelligent", "llm", "ml model"}
	logicKeywords      = []string{"conditional", "branching", "approval", "multi-step", "complex logic", "decision"}
	complianceKeywords = []string{"gdpr", "hipaa", "compliance", "audit", "soc 2", "soc2", "pci"}
)

// Data volume keyword sets, scanned high tier first.
var (
	highVolumeKeywords   = []string{"millions", "high volume", "real-time", "thousands per"}
	mediumVolumeKeywords = []string{"thousands", "hundreds", "daily batch", "per day"}
)

// Analyze derives the automation's shape from the requirement set.
// Malformed requirements contribute nothing; an empty set yields the
// general/simple baseline.
func Analyze(reqs []model.Requirement) Analysis {
	corpus := requirementCorpus(reqs)

	a := Analysis{
		Domain:     classifyDomain(corpus),
		DataVolume: classifyVolume(corpus),
	}
	a.IntegrationCount = countDistinctHits(corpus, integrationKeywords)
	a.ComplexityScore = complexityScore(corpus, a.IntegrationCount)
	a.Complexity = gradeComplexity(a.ComplexityScore)
	return a
}

// requirementCorpus folds all well-formed requirement text into one
// lowercase string for keyword scanning.
func requirementCorpus(reqs []model.Requirement) string {
	var b strings.Builder
	for _, r := range reqs {
		if !r.WellFormed() {
			continue
		}
		b.WriteString(strings.ToLower(r.Answer))
		b.WriteByte(' ')
		for _, tag := range r.Tags {
			b.WriteString(strings.ToLower(tag))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// classifyDomain applies the ordered domain rules, first match wins.
func classifyDomain(corpus string) string {
	for _, rule := range domainRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(corpus, kw) {
				return rule.Domain
			}
		}
	}
	return DomainGeneral
}

// complexityScore is additive over the independent signals. Adding signal
// keywords can only raise it.
func complexityScore(corpus string, integrationCount int) int {
	score := 0
	if integrationCount > 5 {
		score += 2
	}
	if integrationCount > 2 {
		score++
	}
	if containsAny(corpus, aiKeywords) {
		score++
	}
	if containsAny(corpus, logicKeywords) {
		score++
	}
	if containsAny(corpus, complianceKeywords) {
		score += 2
	}
	return score
}

// gradeComplexity maps the additive score onto the complexity grades.
func gradeComplexity(score int) model.Complexity {
	switch {
	case score >= 5:
		return model.ComplexityEnterprise
	case score >= 3:
		return model.ComplexityComplex
	case score >= 2:
		return model.ComplexityModerate
	default:
		return model.ComplexitySimple
	}
}

func classifyVolume(corpus string) string {
	switch {
	case containsAny(corpus, highVolumeKeywords):
		return "high"
	case containsAny(corpus, mediumVolumeKeywords):
		return "medium"
	default:
		return "low"
	}
}

func countDistinctHits(corpus string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(corpus, kw) {
			count++
		}
	}
	return count
}

func containsAny(corpus string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(corpus, kw) {
			return true
		}
	}
	return false
}
