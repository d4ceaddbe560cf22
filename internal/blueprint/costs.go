package blueprint

import (
	"math"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// Fixed cost-model constants. These are part of the estimate contract, not
// tunables: tests pin them, and the ROI numbers quoted to clients are only
// comparable because every blueprint uses the same rates.
const (
	hourlyRate            = 150.0
	infrastructureMonthly = 250.0
	maintenanceMonthly    = 500.0
)

// calculateCosts prices the plan: development hours at the fixed rate plus
// a year of infrastructure and maintenance.
func calculateCosts(developmentHours int) model.CostEstimate {
	development := float64(developmentHours) * hourlyRate
	return model.CostEstimate{
		DevelopmentHours:      developmentHours,
		HourlyRate:            hourlyRate,
		Development:           development,
		InfrastructureMonthly: infrastructureMonthly,
		MaintenanceMonthly:    maintenanceMonthly,
		FirstYearTotal:        development + 12*(infrastructureMonthly+maintenanceMonthly),
	}
}

// calculateROI projects savings from the estimated weekly hours saved:
// monthly savings at the fixed hourly rate, payback against the development
// cost, and the three-year return against three years of total cost.
func calculateROI(cost model.CostEstimate, weeklyHoursSaved float64) model.ROIProjection {
	monthlySavings := weeklyHoursSaved * 4 * hourlyRate

	paybackMonths := 0
	if monthlySavings > 0 {
		paybackMonths = int(math.Ceil(cost.Development / monthlySavings))
	}

	threeYearSavings := monthlySavings * 36
	threeYearCosts := cost.Development + 36*(cost.InfrastructureMonthly+cost.MaintenanceMonthly)

	threeYearROI := 0.0
	if threeYearCosts > 0 {
		threeYearROI = (threeYearSavings - threeYearCosts) / threeYearCosts * 100
	}

	return model.ROIProjection{
		WeeklyHoursSaved: weeklyHoursSaved,
		MonthlySavings:   monthlySavings,
		PaybackMonths:    paybackMonths,
		ThreeYearROI:     threeYearROI,
	}
}
