package model

// ComponentType is the closed set of roles a component can play in a
// synthesized architecture.
type ComponentType string

const (
	ComponentTrigger    ComponentType = "trigger"
	ComponentProcessor  ComponentType = "processor"
	ComponentIntegrator ComponentType = "integrator"
	ComponentStorage    ComponentType = "storage"
	ComponentNotifier   ComponentType = "notifier"
)

// Component is a single building block of the architecture. NodeHints carry
// the graph builder's target node types when the component maps to a known
// engine node.
type Component struct {
	Name        string
	Type        ComponentType
	Description string
	NodeHints   []string
	DependsOn   []string
}

// DataFlowStep describes one ordered hop of data through the architecture.
type DataFlowStep struct {
	Name        string
	Description string
}

// IntegrationSpec declares an external service dependency of the automation.
type IntegrationSpec struct {
	Service    string
	Purpose    string
	AuthMethod string
	RateLimit  string
}

// Architecture is the structured technical design derived from the
// requirement set. It is produced once per blueprint generation and is
// immutable afterward.
type Architecture struct {
	Components   []Component
	DataFlow     []DataFlowStep
	Integrations []IntegrationSpec
	Security     []string
	Scalability  string
}

// ComponentsOfType returns the components matching the given type, in
// declaration order.
func (a Architecture) ComponentsOfType(t ComponentType) []Component {
	var out []Component
	for _, c := range a.Components {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
