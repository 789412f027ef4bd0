package posology

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

// Scheduling constants, all in days. The calendar is laid out in 28-day
// months of four 7-day weeks.
const (
	DaysPerMonth              = 28
	MaxStartingDays           = 29
	MaxDaysBetweenProductUnit = 28
	CortisolPhaseDurationDays = 28

	// A unit boundary landing up to this many days past a month boundary is
	// pulled back onto it so the cure reads in whole months.
	MonthBoundaryAdjustmentWindow = 8

	// LastWeekToDisplay caps the rendered calendar length.
	LastWeekToDisplay = 12
)

var stripTags = regexp.MustCompile(`<[^>]*>`)

// ProductValidationError reports a catalog product unfit for scheduling.
type ProductValidationError struct {
	Label  string
	Reason string
}

func (e *ProductValidationError) Error() string {
	return fmt.Sprintf("produit %q invalide: %s", e.Label, e.Reason)
}

// cleanLabel strips catalog-editor markup and surrounding whitespace.
func cleanLabel(label string) string {
	return strings.TrimSpace(stripTags.ReplaceAllString(label, ""))
}

func validateProduct(p *entities.Product) error {
	label := cleanLabel(p.Label)
	if len(p.Schemes) == 0 {
		return &ProductValidationError{Label: label, Reason: "aucune posologie"}
	}
	scheme := &p.Schemes[0]
	if scheme.DurationValue <= 0 {
		return &ProductValidationError{Label: label, Reason: "durée de posologie invalide"}
	}
	if len(scheme.Intakes) == 0 {
		return &ProductValidationError{Label: label, Reason: "posologie sans prise"}
	}
	if scheme.TotalDailyQuantity() <= 0 {
		return &ProductValidationError{Label: label, Reason: "quantité journalière nulle"}
	}
	if p.Servings <= 0 {
		return &ProductValidationError{Label: label, Reason: "nombre de portions invalide"}
	}
	return nil
}

// snapToBoundary pulls a day offset back onto the nearest preceding boundary
// when it falls inside the adjustment window just past it.
func snapToBoundary(day, boundary int) int {
	if day >= boundary+1 && day < boundary+1+MonthBoundaryAdjustmentWindow {
		return boundary
	}
	return day
}

// NormalizeProducts computes the day-offset intervals of every product in the
// batch. The returned slice is sorted by first-unit start so rows render in
// chronological order; the sort is stable so catalog order breaks ties.
func NormalizeProducts(batch *entities.BatchInput, rules *ExceptionRules) ([]entities.NormalizedProduct, error) {
	if rules == nil {
		rules = DefaultExceptionRules()
	}

	batchIDs := make(map[int]bool, len(batch.Products))
	for i := range batch.Products {
		batchIDs[batch.Products[i].ID] = true
	}

	normalized := make([]entities.NormalizedProduct, 0, len(batch.Products))
	for i := range batch.Products {
		p := &batch.Products[i]
		if err := validateProduct(p); err != nil {
			return nil, err
		}

		scheme := &p.Schemes[0]
		totalDaily := scheme.TotalDailyQuantity()
		tdipu := int(math.Floor(float64(p.Servings) / totalDaily))

		pause := 0
		if tdipu < MaxStartingDays {
			pause = MaxDaysBetweenProductUnit - tdipu
		}

		delay := rules.DelayFor(p.ID, p.Phase, batch.Delays[p.ID], batch.CortisolPhase)
		secondUnit := rules.NeedsSecondUnit(p.ID, p.Phase, batch.Delays[p.ID], batch.CortisolPhase, batchIDs)

		firstUnitEnd := delay + tdipu
		if !secondUnit && firstUnitEnd >= MaxStartingDays &&
			firstUnitEnd < MaxStartingDays+MonthBoundaryAdjustmentWindow-1 {
			firstUnitEnd = DaysPerMonth
		}

		secondUnitStart := delay + pause + tdipu
		if secondUnitStart >= MaxStartingDays &&
			secondUnitStart < MaxStartingDays+MonthBoundaryAdjustmentWindow {
			secondUnitStart = MaxStartingDays
		}

		units := 1
		if secondUnit {
			units = 2
		}
		posologyEnd := tdipu*units + delay + pause
		for month := 1; month <= 3; month++ {
			posologyEnd = snapToBoundary(posologyEnd, DaysPerMonth*month)
		}

		normalized = append(normalized, entities.NormalizedProduct{
			ID:                       p.ID,
			ShopifyID:                p.ShopifyID,
			Label:                    cleanLabel(p.Label),
			Phase:                    p.Phase,
			Posology:                 scheme,
			BaseDelay:                batch.Delays[p.ID],
			Servings:                 p.Servings,
			Intake:                   &scheme.Intakes[0],
			TotalDailyQuantity:       totalDaily,
			TotalDailyIntakesPerUnit: tdipu,
			FirstUnitStart:           delay,
			FirstUnitEnd:             firstUnitEnd,
			SecondUnit:               secondUnit,
			SecondUnitStart:          secondUnitStart,
			PauseBetweenUnit:         pause,
			PosologyEnd:              posologyEnd,
		})
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].FirstUnitStart < normalized[j].FirstUnitStart
	})
	return normalized, nil
}

// Calculator answers cure-level timing questions over a normalized batch.
type Calculator struct {
	products              []entities.NormalizedProduct
	cortisolPhase         bool
	cortisolPhaseDuration int
}

// NewCalculator builds a calculator over an already-normalized batch.
func NewCalculator(products []entities.NormalizedProduct, cortisolPhase bool) (*Calculator, error) {
	if len(products) == 0 {
		return nil, errors.New("posology: empty product batch")
	}
	return &Calculator{
		products:              products,
		cortisolPhase:         cortisolPhase,
		cortisolPhaseDuration: CortisolPhaseDurationDays,
	}, nil
}

// Products returns the normalized batch in chronological order.
func (c *Calculator) Products() []entities.NormalizedProduct {
	return c.products
}

// CortisolPhase reports whether a cortisol phase precedes the cure.
func (c *Calculator) CortisolPhase() bool {
	return c.cortisolPhase
}

// CureEndDay is the last scheduled day across the whole batch.
func (c *Calculator) CureEndDay() int {
	end := 0
	for i := range c.products {
		end = max(end, c.products[i].PosologyEnd)
	}
	return end
}

// MicrobiotePhaseStart is the day the microbiote phase begins. With a
// cortisol phase running it is the earliest phase-2 start; without one, the
// earliest start overall.
func (c *Calculator) MicrobiotePhaseStart() int {
	start := math.MaxInt
	if c.cortisolPhase {
		for i := range c.products {
			if c.products[i].Phase == 2 {
				start = min(start, c.products[i].FirstUnitStart)
			}
		}
		if start != math.MaxInt {
			return start
		}
	}
	for i := range c.products {
		start = min(start, c.products[i].FirstUnitStart)
	}
	return start
}
