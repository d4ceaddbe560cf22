package catalog

// Template is a reusable, pre-authored automation pattern with its node
// graph already defined. Templates are immutable once loaded and owned
// exclusively by the Store.
type Template struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Subcategory  string
	Tags         []string
	Difficulty   int
	Nodes        []TemplateNode
	Connections  []TemplateConnection
	Variables    map[string]any
	Integrations []string
	Popularity   int
}

// TemplateNode is one pre-authored node of a template's graph.
type TemplateNode struct {
	Name       string
	Type       string
	Parameters map[string]any
	Position   [2]float64
}

// TemplateConnection is a directed edge between two template nodes.
type TemplateConnection struct {
	From string
	To   string
	Port int
}

// Template categories. The set is closed; the loader rejects anything else.
const (
	CategoryEcommerce       = "ecommerce"
	CategoryCRMSales        = "crm-sales"
	CategoryMarketing       = "marketing"
	CategoryCustomerSupport = "customer-support"
	CategoryDataProcessing  = "data-processing"
	CategoryFinance         = "finance"
	CategoryHR              = "hr"
	CategoryOperations      = "operations"
)

// templateCategories is the closed set of valid template categories.
var templateCategories = map[string]struct{}{
	CategoryEcommerce:       {},
	CategoryCRMSales:        {},
	CategoryMarketing:       {},
	CategoryCustomerSupport: {},
	CategoryDataProcessing:  {},
	CategoryFinance:         {},
	CategoryHR:              {},
	CategoryOperations:      {},
}

// ValidCategory reports whether c names a known template category.
func ValidCategory(c string) bool {
	_, ok := templateCategories[c]
	return ok
}
