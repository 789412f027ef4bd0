package entities

// DurationUnit is the unit of a posology scheme duration.
type DurationUnit string

const (
	DurationDays       DurationUnit = "DAYS"
	DurationWeeks      DurationUnit = "WEEKS"
	DurationMonths     DurationUnit = "MONTHS"
	DurationContinuous DurationUnit = "CONTINUOUS"
)

// Label returns the French display label for the duration unit.
func (d DurationUnit) Label() string {
	switch d {
	case DurationDays:
		return "Jour(s)"
	case DurationWeeks:
		return "Semaine(s)"
	case DurationMonths:
		return "Mois"
	case DurationContinuous:
		return "En continu"
	}
	return string(d)
}

// IntakeUnit is the dosage unit of a single intake.
type IntakeUnit string

const (
	UnitCapsule IntakeUnit = "CAPSULE"
	UnitTablet  IntakeUnit = "TABLET"
	UnitML      IntakeUnit = "ML"
	UnitDrop    IntakeUnit = "DROP"
	UnitDose    IntakeUnit = "DOSE"
	UnitDosette IntakeUnit = "DOSETTE"
	UnitSachet  IntakeUnit = "SACHET"
	UnitSpray   IntakeUnit = "SPRAY"
)

// Label returns the French display label for the intake unit.
func (u IntakeUnit) Label() string {
	switch u {
	case UnitCapsule:
		return "Gélule"
	case UnitTablet:
		return "Comprimé"
	case UnitML:
		return "ml"
	case UnitDrop:
		return "Capuchon"
	case UnitDose:
		return "Dose"
	case UnitDosette:
		return "Dosette"
	case UnitSachet:
		return "Sachet"
	case UnitSpray:
		return "Spray"
	}
	return string(u)
}

// IntakeCondition is a special condition attached to an intake.
type IntakeCondition string

const (
	ConditionAfterMeal IntakeCondition = "AFTER_MEAL"
	ConditionNone      IntakeCondition = "NO_CONDITION"
)

// Label returns the French display label for the intake condition.
func (c IntakeCondition) Label() string {
	switch c {
	case ConditionAfterMeal:
		return "Après le repas"
	case ConditionNone:
		return "Aucune condition"
	}
	return string(c)
}

// TimeOfDay is when a supplement should be taken.
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "MORNING"
	TimeEvening TimeOfDay = "EVENING"
	TimeMixed   TimeOfDay = "MIXED"
	TimeAnytime TimeOfDay = "ANYTIME"
)

// Label returns the French display label for the time of day.
func (t TimeOfDay) Label() string {
	switch t {
	case TimeMorning:
		return "Matin"
	case TimeEvening:
		return "Soir"
	case TimeMixed:
		return "Matin et soir"
	case TimeAnytime:
		return "N'importe quand"
	}
	return string(t)
}

// TimeSlot is the calendar grouping a product's row belongs to.
type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotEvening TimeSlot = "evening"
	SlotMixed   TimeSlot = "mixed"
)

// TimeSlots lists the slots in their display order.
var TimeSlots = []TimeSlot{SlotMorning, SlotEvening, SlotMixed}
