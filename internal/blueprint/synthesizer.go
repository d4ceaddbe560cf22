package blueprint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/model"
)

// Synthesizer generates blueprints from requirement sets. It is stateless
// apart from the injected estimator and safe for concurrent use.
type Synthesizer struct {
	estimator Estimator
}

// New returns a synthesizer using the given estimator.
func New(estimator Estimator) *Synthesizer {
	if estimator == nil {
		panic("blueprint: estimator must not be nil")
	}
	return &Synthesizer{estimator: estimator}
}

// NewDefault returns a synthesizer with a time-seeded random estimator, as
// used by the CLI.
func NewDefault() *Synthesizer {
	return New(NewRandomEstimator(time.Now().UnixNano()))
}

// Generate synthesizes a full blueprint from the requirement set. It never
// fails: every lookup has a fallback, and an empty requirement set produces
// the generic simple blueprint.
func (s *Synthesizer) Generate(ctx context.Context, reqs []model.Requirement, cfg model.BlueprintConfig) *model.Blueprint {
	logger := ctxlog.FromContext(ctx)

	analysis := Analyze(reqs)
	logger.Debug("Requirement analysis complete",
		"domain", analysis.Domain,
		"complexity", analysis.Complexity,
		"integrations", analysis.IntegrationCount,
		"volume", analysis.DataVolume,
	)

	architecture := buildArchitecture(analysis, reqs)
	plan := buildPlan(analysis.Complexity, cfg.Timeline)

	totalHours := 0
	for _, phase := range plan {
		totalHours += phase.Hours()
	}

	cost := calculateCosts(totalHours)
	roi := calculateROI(cost, s.estimator.WeeklyHoursSaved(analysis))

	bp := &model.Blueprint{
		ID:           uuid.NewString(),
		Title:        blueprintTitle(analysis.Domain),
		Overview:     overview(analysis, cfg),
		BusinessCase: businessCase(roi),
		Domain:       analysis.Domain,
		Complexity:   analysis.Complexity,
		Architecture: architecture,
		Plan:         plan,
		Risks:        buildRiskAssessment(analysis),
		Metrics:      successMetrics(analysis, roi),
		Cost:         cost,
		ROI:          roi,
	}

	logger.Info("Blueprint generated",
		"id", bp.ID,
		"domain", bp.Domain,
		"complexity", bp.Complexity,
		"hours", totalHours,
		"overall_risk", bp.Risks.Overall,
	)
	return bp
}

// domainTitles gives each domain its headline; unmatched domains use the
// general one.
var domainTitles = map[string]string{
	DomainEcommerce: "E-commerce Order Automation",
	DomainSales:     "Sales Pipeline Automation",
	DomainData:      "Data Processing Automation",
	DomainSupport:   "Customer Support Automation",
	DomainMarketing: "Marketing Campaign Automation",
	DomainGeneral:   "Business Process Automation",
}

func blueprintTitle(domain string) string {
	if t, ok := domainTitles[domain]; ok {
		return t
	}
	return domainTitles[DomainGeneral]
}

func overview(a Analysis, cfg model.BlueprintConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A %s %s automation", a.Complexity, a.Domain)
	if cfg.Industry != "" {
		fmt.Fprintf(&b, " for the %s industry", cfg.Industry)
	}
	fmt.Fprintf(&b, ", connecting %d external service(s) at %s data volume.", a.IntegrationCount, a.DataVolume)
	return b.String()
}

func businessCase(roi model.ROIProjection) string {
	return fmt.Sprintf(
		"Replaces an estimated %.0f manual hours per week, worth %.0f/month at the standard rate; investment pays back in %d months.",
		roi.WeeklyHoursSaved, roi.MonthlySavings, roi.PaybackMonths,
	)
}

// successMetrics builds the measurable targets. The first metric is always
// the hours-saved figure so it stays consistent with the ROI projection.
func successMetrics(a Analysis, roi model.ROIProjection) []model.SuccessMetric {
	metrics := []model.SuccessMetric{
		{Name: "Manual hours replaced per week", Target: fmt.Sprintf("%.0f hours", roi.WeeklyHoursSaved), Timeframe: "90 days"},
		{Name: "Workflow success rate", Target: "99% of runs complete without manual intervention", Timeframe: "30 days"},
	}

	switch a.Domain {
	case DomainEcommerce:
		metrics = append(metrics, model.SuccessMetric{Name: "Order processing latency", Target: "Under 2 minutes from order to confirmation", Timeframe: "60 days"})
	case DomainSales:
		metrics = append(metrics, model.SuccessMetric{Name: "Lead response time", Target: "Hot leads routed within 5 minutes", Timeframe: "60 days"})
	case DomainData:
		metrics = append(metrics, model.SuccessMetric{Name: "Report freshness", Target: "Reports never older than one schedule interval", Timeframe: "30 days"})
	case DomainSupport:
		metrics = append(metrics, model.SuccessMetric{Name: "First-response time", Target: "Automated triage within 1 minute", Timeframe: "60 days"})
	}

	return metrics
}
