package compile

import (
	"strings"

	"github.com/arsalion01/blueprintgo/internal/model"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

// triggerRule binds trigger-selection keywords to a node type and its
// default parameters. Rules are evaluated in priority order:
// webhook > schedule > email; no hit falls back to the manual trigger.
type triggerRule struct {
	Type       string
	Keywords   []string
	Parameters map[string]any
}

var triggerRules = []triggerRule{
	{
		Type:       workflow.TypeWebhook,
		Keywords:   []string{"webhook", "real-time", "instant", "api call", "when a", "event"},
		Parameters: map[string]any{"path": "automation", "method": "POST"},
	},
	{
		Type:       workflow.TypeCron,
		Keywords:   []string{"schedule", "daily", "weekly", "hourly", "every day", "cron", "batch"},
		Parameters: map[string]any{"cron": "0 9 * * *"},
	},
	{
		Type:       workflow.TypeEmailTrigger,
		Keywords:   []string{"email arrives", "incoming email", "inbox", "when an email"},
		Parameters: map[string]any{"mailbox": "INBOX"},
	},
}

// selectTrigger picks the trigger node for the main graph by scanning the
// requirement text. Unmatched input gets the manual trigger.
func selectTrigger(reqs []model.Requirement) workflow.Node {
	corpus := loweredCorpus(reqs)

	for _, rule := range triggerRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(corpus, kw) {
				return workflow.Node{
					Name:       "Trigger",
					Type:       rule.Type,
					Parameters: cloneParams(rule.Parameters),
				}
			}
		}
	}

	return workflow.Node{Name: "Trigger", Type: workflow.TypeManualTrigger}
}

// loweredCorpus folds all well-formed requirement answers into one
// lowercase string.
func loweredCorpus(reqs []model.Requirement) string {
	var b strings.Builder
	for _, r := range reqs {
		if !r.WellFormed() {
			continue
		}
		b.WriteString(strings.ToLower(r.Answer))
		b.WriteByte(' ')
	}
	return b.String()
}

// cloneParams copies a parameter map so graph nodes never share storage
// with the rule tables.
func cloneParams(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
