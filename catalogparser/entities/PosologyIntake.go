package entities

// PosologyIntake is a single intake within a posology scheme.
// Example: "2 gélules le matin à jeun".
type PosologyIntake struct {
	Quantity  float64         `json:"quantity"`
	Unit      IntakeUnit      `json:"intake_unit"`
	TimeOfDay TimeOfDay       `json:"time_of_day"`
	Condition IntakeCondition `json:"intake_condition"`
	Frequency int             `json:"frequency"`
	Order     int             `json:"order"`
	Notes     string          `json:"notes,omitempty"`
}

// DailyQuantity is the quantity taken per day for this intake.
func (i *PosologyIntake) DailyQuantity() float64 {
	return float64(i.Frequency) * i.Quantity
}

// UnitIcon returns the SVG path for the intake unit.
func (i *PosologyIntake) UnitIcon() string {
	// Exception when the icon depends on unit and quantity
	if i.Unit == UnitCapsule && i.Quantity > 1 {
		return "cure_calendar/images/capsules.svg"
	}

	switch i.Unit {
	case UnitCapsule:
		return "cure_calendar/images/capsules.svg"
	case UnitDrop, UnitML:
		return "cure_calendar/images/drop.svg"
	case UnitDosette:
		return "cure_calendar/images/dosette.svg"
	}
	return ""
}

// UnitLabel returns the French label of the intake unit.
func (i *PosologyIntake) UnitLabel() string {
	return i.Unit.Label()
}

// TimeOfDayColor returns the background color used in the legend.
func (i *PosologyIntake) TimeOfDayColor() string {
	switch i.TimeOfDay {
	case TimeMorning:
		return "var(--primary-yellow, #FEFDF3)"
	case TimeEvening:
		return "var(--primary-blue, #EFFAFF)"
	case TimeMixed:
		return "var(--secondary-green, #EFFFF4)"
	}
	return ""
}

// TimeOfDayIcon returns the SVG path for the intake time of day.
func (i *PosologyIntake) TimeOfDayIcon() string {
	switch i.TimeOfDay {
	case TimeMorning:
		return "cure_calendar/images/morning.svg"
	case TimeEvening:
		return "cure_calendar/images/evening.svg"
	case TimeMixed:
		return "cure_calendar/images/morning_evening.svg"
	}
	return ""
}

// TimeOfDayIconClass returns the legend CSS class for the time of day icon.
func (i *PosologyIntake) TimeOfDayIconClass() string {
	switch i.TimeOfDay {
	case TimeMorning:
		return "legend__icon-svg--morning"
	case TimeEvening:
		return "legend__icon-svg--evening"
	case TimeMixed:
		return "legend__icon-svg--mixed"
	}
	return ""
}

// TimeOfDayLabel returns the French label for the time of day.
func (i *PosologyIntake) TimeOfDayLabel() string {
	return i.TimeOfDay.Label()
}
