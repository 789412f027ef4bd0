package entities

import "testing"

func TestDailyQuantity(t *testing.T) {
	intake := PosologyIntake{Quantity: 0.5, Frequency: 3}
	if got := intake.DailyQuantity(); got != 1.5 {
		t.Errorf("Expected daily quantity 1.5, got %v", got)
	}
}

func TestUnitIcon(t *testing.T) {
	tests := []struct {
		unit     IntakeUnit
		quantity float64
		expected string
	}{
		{UnitCapsule, 1, "cure_calendar/images/capsules.svg"},
		{UnitCapsule, 2, "cure_calendar/images/capsules.svg"},
		{UnitDrop, 10, "cure_calendar/images/drop.svg"},
		{UnitML, 5, "cure_calendar/images/drop.svg"},
		{UnitDosette, 1, "cure_calendar/images/dosette.svg"},
		{UnitTablet, 1, ""},
	}

	for _, tt := range tests {
		intake := PosologyIntake{Unit: tt.unit, Quantity: tt.quantity}
		if got := intake.UnitIcon(); got != tt.expected {
			t.Errorf("UnitIcon for %s x%v: expected %q, got %q", tt.unit, tt.quantity, tt.expected, got)
		}
	}
}

func TestTimeOfDayPresentation(t *testing.T) {
	morning := PosologyIntake{TimeOfDay: TimeMorning}
	if morning.TimeOfDayLabel() != "Matin" {
		t.Errorf("Unexpected label: %q", morning.TimeOfDayLabel())
	}
	if morning.TimeOfDayColor() != "var(--primary-yellow, #FEFDF3)" {
		t.Errorf("Unexpected color: %q", morning.TimeOfDayColor())
	}
	if morning.TimeOfDayIcon() != "cure_calendar/images/morning.svg" {
		t.Errorf("Unexpected icon: %q", morning.TimeOfDayIcon())
	}
	if morning.TimeOfDayIconClass() != "legend__icon-svg--morning" {
		t.Errorf("Unexpected icon class: %q", morning.TimeOfDayIconClass())
	}

	evening := PosologyIntake{TimeOfDay: TimeEvening}
	if evening.TimeOfDayLabel() != "Soir" {
		t.Errorf("Unexpected label: %q", evening.TimeOfDayLabel())
	}

	mixed := PosologyIntake{TimeOfDay: TimeMixed}
	if mixed.TimeOfDayLabel() != "Matin et soir" {
		t.Errorf("Unexpected label: %q", mixed.TimeOfDayLabel())
	}
}
