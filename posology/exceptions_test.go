package posology

import "testing"

func TestNeedsSecondUnit(t *testing.T) {
	rules := DefaultExceptionRules()

	tests := []struct {
		name          string
		id            int
		phase         int
		delay         int
		cortisolPhase bool
		batchIDs      map[int]bool
		expected      bool
	}{
		{"always-listed product, phase 1", 11, 1, 0, false, nil, true},
		{"always-listed product, phase 2", 11, 2, 0, false, nil, true},
		{"always-listed product dropped under cortisol", 11, 1, 0, true, nil, false},
		{"exception wins over cortisol listing", 3, 1, 0, true, nil, false},
		{"unlisted product", 7, 1, 0, false, nil, false},
		{"exception product starting immediately", 3, 1, 0, false, nil, true},
		{"exception product with a delay", 3, 1, 5, false, nil, false},
		{"mucopure alone", 13, 1, 0, false, map[int]bool{13: true}, true},
		{"mucopure with permea intest", 13, 1, 0, false, map[int]bool{13: true, 25: true}, false},
		{"permea intest starting immediately", 25, 2, 0, false, map[int]bool{25: true}, true},
		{"permea intest under cortisol", 25, 2, 0, true, map[int]bool{25: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.NeedsSecondUnit(tt.id, tt.phase, tt.delay, tt.cortisolPhase, tt.batchIDs)
			if got != tt.expected {
				t.Errorf("NeedsSecondUnit(%d, phase %d, delay %d, cortisol %v) = %v, expected %v",
					tt.id, tt.phase, tt.delay, tt.cortisolPhase, got, tt.expected)
			}
		})
	}
}

func TestDelayFor(t *testing.T) {
	rules := DefaultExceptionRules()

	tests := []struct {
		name          string
		id            int
		phase         int
		baseDelay     int
		cortisolPhase bool
		expected      int
	}{
		{"plain product keeps its delay", 2, 1, 3, false, 3},
		{"phase 2 waits out the cortisol phase", 2, 2, 0, true, 28},
		{"phase 2 delay adds up under cortisol", 2, 2, 5, true, 33},
		{"phase 2 without cortisol keeps its delay", 2, 2, 5, false, 5},
		{"phase 1 unaffected by cortisol", 2, 1, 3, true, 3},
		{"fixed override replaces the delay", 10, 1, 5, false, 15},
		{"inherit override keeps the delay", 10, 1, 5, true, 5},
		{"inherit override still shifts phase 2", 10, 2, 5, true, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.DelayFor(tt.id, tt.phase, tt.baseDelay, tt.cortisolPhase)
			if got != tt.expected {
				t.Errorf("DelayFor(%d, phase %d, delay %d, cortisol %v) = %d, expected %d",
					tt.id, tt.phase, tt.baseDelay, tt.cortisolPhase, got, tt.expected)
			}
		})
	}
}
