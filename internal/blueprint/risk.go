package blueprint

import "github.com/arsalion01/blueprintgo/internal/model"

// buildRiskAssessment applies the fixed risk rules: a technical risk for
// complex and enterprise builds, a user-adoption business risk always, and
// an operational risk once the integration surface passes three services.
func buildRiskAssessment(a Analysis) model.RiskAssessment {
	var risks []model.Risk

	if a.Complexity == model.ComplexityComplex || a.Complexity == model.ComplexityEnterprise {
		risks = append(risks, model.Risk{
			Description: "Workflow complexity exceeds what a single iteration can validate",
			Kind:        model.RiskTechnical,
			Impact:      4,
			Probability: 2,
			Mitigation:  "Stage delivery per subgraph and test each against recorded payloads",
		})
	}

	risks = append(risks, model.Risk{
		Description: "Team keeps using the manual process alongside the automation",
		Kind:        model.RiskBusiness,
		Impact:      3,
		Probability: 2,
		Mitigation:  "Include training in rollout and retire the manual path explicitly",
	})

	if a.IntegrationCount > 3 {
		risks = append(risks, model.Risk{
			Description: "A third-party service change breaks a connected step",
			Kind:        model.RiskOperational,
			Impact:      3,
			Probability: 3,
			Mitigation:  "Error-handling subgraph with alerting on every integration node",
		})
	}

	return model.RiskAssessment{
		Risks:   risks,
		Overall: overallLevel(risks),
	}
}

// overallLevel buckets the highest impact×probability score:
// ≥9 critical, ≥6 high, ≥3 medium, else low.
func overallLevel(risks []model.Risk) model.RiskLevel {
	highest := 0
	for _, r := range risks {
		if s := r.Score(); s > highest {
			highest = s
		}
	}
	switch {
	case highest >= 9:
		return model.RiskCritical
	case highest >= 6:
		return model.RiskHigh
	case highest >= 3:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
