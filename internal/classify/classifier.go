package classify

import (
	"context"
	"strings"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/model"
)

// Result is the outcome of classifying one message.
type Result struct {
	Intent     string
	Category   model.RequirementCategory
	Confidence float64
	Extracted  []model.Requirement
}

// Classifier turns free-text messages into intents and requirements. It
// holds only its rule table and is safe for concurrent use; all mutable
// state lives on the conversation passed in.
type Classifier struct {
	rules []intentRule
}

// New returns a classifier with the standard rule table.
func New() *Classifier {
	return &Classifier{rules: intentRules}
}

// Classify resolves the message's intent, extracts any requirements it
// carries, records both on the conversation, and advances the conversation
// phase when warranted. It never fails: unmatched messages resolve to the
// general-inquiry fallback.
func (c *Classifier) Classify(ctx context.Context, message string, convo *model.Conversation) Result {
	logger := ctxlog.FromContext(ctx)
	lowered := strings.ToLower(message)

	result := Result{Intent: fallbackIntent, Confidence: fallbackConfidence}
	for _, rule := range c.rules {
		if matchesAny(lowered, rule.Keywords) {
			result.Intent = rule.Intent
			result.Category = rule.Category
			result.Confidence = rule.Confidence
			break
		}
	}

	result.Extracted = extractRequirements(lowered, message)

	convo.History = append(convo.History, model.Message{Role: "user", Text: message})
	for _, req := range result.Extracted {
		convo.Append(req)
	}

	c.advancePhase(convo, result)

	logger.Debug("Classified message",
		"intent", result.Intent,
		"confidence", result.Confidence,
		"extracted", len(result.Extracted),
		"phase", convo.Phase,
	)
	return result
}

// advancePhase applies the one-way phase transitions that classification
// can cause: discovery moves to requirements on the first recognized
// business-process utterance, and requirements moves to blueprint once the
// critical categories are sufficiently covered.
func (c *Classifier) advancePhase(convo *model.Conversation, result Result) {
	if convo.Phase == model.PhaseDiscovery {
		for _, req := range result.Extracted {
			if req.Category == model.CategoryBusinessProcess {
				convo.AdvanceTo(model.PhaseRequirements)
				break
			}
		}
	}
	if convo.Phase == model.PhaseRequirements && ReadyForBlueprint(convo.Requirements) {
		convo.AdvanceTo(model.PhaseBlueprint)
	}
}

// matchesAny reports whether any keyword occurs in the lowered text.
func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
