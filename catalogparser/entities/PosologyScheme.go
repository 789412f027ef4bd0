package entities

import "fmt"

// PosologyScheme defines a complete intake pattern for a product.
// A product can have multiple schemes (e.g. different phases of treatment);
// the first one is the primary scheme used by the calendar.
type PosologyScheme struct {
	Name          string           `json:"name,omitempty"`
	Order         int              `json:"order"`
	DurationValue int              `json:"duration_value"`
	DurationUnit  DurationUnit     `json:"duration_unit"`
	Instructions  string           `json:"instructions,omitempty"`
	Intakes       []PosologyIntake `json:"intakes"`
}

// TotalDailyQuantity sums the daily quantity over all intakes.
func (s *PosologyScheme) TotalDailyQuantity() float64 {
	var total float64
	for i := range s.Intakes {
		total += s.Intakes[i].DailyQuantity()
	}
	return total
}

// DayTime derives the calendar time slot for this scheme from its intakes:
// all-morning schemes land in the morning slot, all-evening in the evening
// slot, everything else (mixed, anytime, or a mixture) in the mixed slot.
func (s *PosologyScheme) DayTime() TimeSlot {
	if len(s.Intakes) == 0 {
		return SlotMixed
	}

	allMorning := true
	allEvening := true
	for i := range s.Intakes {
		if s.Intakes[i].TimeOfDay != TimeMorning {
			allMorning = false
		}
		if s.Intakes[i].TimeOfDay != TimeEvening {
			allEvening = false
		}
	}

	if allMorning {
		return SlotMorning
	}
	if allEvening {
		return SlotEvening
	}
	return SlotMixed
}

// Duration returns the scheme duration as display text, e.g. "2 Mois".
func (s *PosologyScheme) Duration() string {
	return fmt.Sprintf("%d %s", s.DurationValue, s.DurationUnit.Label())
}
