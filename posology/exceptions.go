package posology

// Product ids that carry hard-coded scheduling behavior. The rules below come
// from the practitioners and change rarely, but they do change, so they live
// in an ExceptionRules value that can be swapped wholesale instead of being
// scattered through the calculator.
const (
	productMucopure     = 13
	productPermeaIntest = 25
)

// DelayOverride replaces the base delay of a product. Inherit keeps the
// caller-provided delay untouched while still marking the product as listed.
type DelayOverride struct {
	Days    int
	Inherit bool
}

// ExceptionRules holds every per-product scheduling exception. The outer bool
// keys of the maps are the cortisol-phase flag.
type ExceptionRules struct {
	// SecondUnitExceptions lists products whose second-unit decision does not
	// follow the phase tables.
	SecondUnitExceptions []int

	// SecondUnitAlways lists, per cortisol state and phase, the products that
	// always get a second unit.
	SecondUnitAlways map[bool]map[int][]int

	// DelayOverrides replaces the base delay for listed products.
	DelayOverrides map[bool]map[int]DelayOverride
}

// DefaultExceptionRules returns the exception tables currently in production.
func DefaultExceptionRules() *ExceptionRules {
	return &ExceptionRules{
		// 3: Labotix MB, 13: Mucopure, 19: Labotix Multifibre, 25: Permea Intest
		SecondUnitExceptions: []int{3, 13, 19, 25},
		SecondUnitAlways: map[bool]map[int][]int{
			false: {
				1: {11, 15, 16, 17},
				2: {11, 15, 16, 17},
			},
			true: {
				1: {3, 13, 15, 16, 17},
				2: {15, 16, 17},
			},
		},
		DelayOverrides: map[bool]map[int]DelayOverride{
			false: {
				10: {Days: 15},
			},
			true: {
				10: {Inherit: true},
			},
		},
	}
}

// NeedsSecondUnit decides whether the product consumes a second box during
// the cure. The exception products ignore the phase tables: Mucopure gets a
// second box only when Permea Intest is absent from the batch, the others
// when no cortisol phase runs and the product starts immediately.
func (r *ExceptionRules) NeedsSecondUnit(id, phase, delay int, cortisolPhase bool, batchIDs map[int]bool) bool {
	for _, exc := range r.SecondUnitExceptions {
		if exc != id {
			continue
		}
		if id == productMucopure {
			return !batchIDs[productPermeaIntest]
		}
		return !cortisolPhase && delay == 0
	}

	for _, always := range r.SecondUnitAlways[cortisolPhase][phase] {
		if always == id {
			return true
		}
	}
	return false
}

// DelayFor resolves the effective starting delay of a product. Phase-2
// products wait out the cortisol phase unless an override says otherwise.
func (r *ExceptionRules) DelayFor(id, phase, baseDelay int, cortisolPhase bool) int {
	if override, ok := r.DelayOverrides[cortisolPhase][id]; ok && !override.Inherit {
		return override.Days
	}
	if cortisolPhase && phase == 2 {
		return baseDelay + CortisolPhaseDurationDays
	}
	return baseDelay
}
