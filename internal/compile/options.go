package compile

// Security levels. Anything above basic inserts the input-validation node
// right after the trigger.
const (
	SecurityBasic    = "basic"
	SecurityStandard = "standard"
	SecurityStrict   = "strict"
)

// Options configures one compilation run.
type Options struct {
	// SecurityLevel is one of basic, standard, or strict. Empty defaults to
	// standard.
	SecurityLevel string
	// IncludeErrorHandling appends the error-handler side path to the main
	// graph.
	IncludeErrorHandling bool
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.SecurityLevel == "" {
		o.SecurityLevel = SecurityStandard
	}
	return o
}
