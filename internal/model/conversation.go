package model

// Phase tracks how far a conversation has progressed through the pipeline.
// Phases only ever advance; a conversation never regresses to an earlier one.
type Phase string

const (
	PhaseDiscovery      Phase = "discovery"
	PhaseRequirements   Phase = "requirements"
	PhaseBlueprint      Phase = "blueprint"
	PhaseImplementation Phase = "implementation"
)

// phaseRank gives each phase a position so advancement can be enforced as
// strictly monotonic.
var phaseRank = map[Phase]int{
	PhaseDiscovery:      0,
	PhaseRequirements:   1,
	PhaseBlueprint:      2,
	PhaseImplementation: 3,
}

// Message is a single utterance in the conversation history.
type Message struct {
	Role string
	Text string
}

// Conversation owns the accumulated state of one requirements-gathering
// session: its phase, the ordered requirement list, free-form preferences,
// and the raw message history. It lives exactly as long as the conversation.
type Conversation struct {
	Phase        Phase
	Requirements []Requirement
	Preferences  map[string]string
	History      []Message
}

// NewConversation returns a conversation in the discovery phase.
func NewConversation() *Conversation {
	return &Conversation{
		Phase:       PhaseDiscovery,
		Preferences: map[string]string{},
	}
}

// Append records a requirement on the conversation. Malformed records are
// dropped silently so that classification keeps working on partial input.
// It reports whether the requirement was kept.
func (c *Conversation) Append(r Requirement) bool {
	if !r.WellFormed() {
		return false
	}
	c.Requirements = append(c.Requirements, r)
	return true
}

// AdvanceTo moves the conversation forward to the given phase. Attempts to
// move backwards are ignored, preserving the one-way phase machine.
func (c *Conversation) AdvanceTo(p Phase) {
	if phaseRank[p] > phaseRank[c.Phase] {
		c.Phase = p
	}
}

// HasCategory reports whether at least one requirement of the given category
// has been captured. Presence is set-based: repeats do not change the answer.
func (c *Conversation) HasCategory(cat RequirementCategory) bool {
	for _, r := range c.Requirements {
		if r.Category == cat {
			return true
		}
	}
	return false
}
