package blueprint

import (
	"math/rand"

	"github.com/arsalion01/blueprintgo/internal/model"
)

// Estimator supplies the placeholder time-savings figure that feeds the ROI
// projection. It is injected so tests can pin the value; the CLI uses the
// randomized implementation.
type Estimator interface {
	// WeeklyHoursSaved estimates the manual hours the automation saves per
	// week, given the analysis of the requirement set.
	WeeklyHoursSaved(a Analysis) float64
}

// FixedEstimator returns the same figure on every call.
type FixedEstimator struct {
	Hours float64
}

func (e FixedEstimator) WeeklyHoursSaved(Analysis) float64 {
	return e.Hours
}

// savingsRange is the sampling window per complexity grade.
var savingsRanges = map[model.Complexity][2]float64{
	model.ComplexitySimple:     {5, 10},
	model.ComplexityModerate:   {10, 20},
	model.ComplexityComplex:    {20, 35},
	model.ComplexityEnterprise: {35, 60},
}

// RandomEstimator samples a savings figure from a complexity-dependent
// range. It exists to make generated blueprints feel concrete; the spread
// is not a measurement.
type RandomEstimator struct {
	rng *rand.Rand
}

// NewRandomEstimator returns an estimator seeded for this process.
func NewRandomEstimator(seed int64) *RandomEstimator {
	return &RandomEstimator{rng: rand.New(rand.NewSource(seed))}
}

func (e *RandomEstimator) WeeklyHoursSaved(a Analysis) float64 {
	r, ok := savingsRanges[a.Complexity]
	if !ok {
		r = savingsRanges[model.ComplexitySimple]
	}
	return r[0] + e.rng.Float64()*(r[1]-r[0])
}
