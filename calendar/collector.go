package calendar

import (
	"math"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/posology"
)

const daysPerWeek = 7

// ContentCollector is phase 1 of the pipeline: it evaluates every product's
// rule set against every week and stores the results in a ContentMap keyed by
// month, time slot, product id and week in month.
type ContentCollector struct {
	calculator *posology.Calculator
	products   []entities.NormalizedProduct
	contentMap entities.ContentMap
}

// NewContentCollector builds a collector over the normalized batch.
func NewContentCollector(calculator *posology.Calculator, products []entities.NormalizedProduct) *ContentCollector {
	return &ContentCollector{
		calculator: calculator,
		products:   products,
		contentMap: make(entities.ContentMap),
	}
}

// Collect evaluates every week of the cure and returns the filled map.
func (cc *ContentCollector) Collect() entities.ContentMap {
	totalWeeks := int(math.Ceil(float64(cc.calculator.CureEndDay()) / daysPerWeek))
	if totalWeeks > posology.LastWeekToDisplay {
		totalWeeks = posology.LastWeekToDisplay
	}

	for weekIndex := 0; weekIndex < totalWeeks; weekIndex++ {
		cc.processWeek(weekIndex)
	}
	return cc.contentMap
}

func (cc *ContentCollector) processWeek(weekIndex int) {
	monthIndex := weekIndex / 4
	weekInMonth := weekIndex % 4

	if cc.contentMap[monthIndex] == nil {
		cc.contentMap[monthIndex] = make(map[entities.TimeSlot]map[int]map[int][]entities.SegmentContent)
	}

	for i := range cc.products {
		cc.collectProductContent(&cc.products[i], weekIndex, monthIndex, weekInMonth)
	}
}

func (cc *ContentCollector) collectProductContent(product *entities.NormalizedProduct, weekIndex, monthIndex, weekInMonth int) {
	ctx := &WeekContext{
		Product:     product,
		WeekIndex:   weekIndex,
		WeekStart:   weekIndex * daysPerWeek,
		WeekEnd:     (weekIndex + 1) * daysPerWeek,
		IsFirstWeek: weekIndex%4 == 0,
		IsLastWeek:  weekIndex%4 == 3,
	}

	slot := product.Posology.DayTime()
	month := cc.contentMap[monthIndex]
	if month[slot] == nil {
		month[slot] = make(map[int]map[int][]entities.SegmentContent)
	}
	if month[slot][product.ID] == nil {
		month[slot][product.ID] = make(map[int][]entities.SegmentContent)
	}

	// A nil slice is stored too: it records "no content this week" so the
	// materializer can tell an evaluated empty week from a missing one.
	month[slot][product.ID][weekInMonth] = EvaluateRules(RulesFor(product), ctx)
}

// ActiveProducts returns, in batch order, the ids of products with content in
// at least one week of the month and slot. The batch order guarantees a
// stable row order across the month's weeks.
func (cc *ContentCollector) ActiveProducts(month int, slot entities.TimeSlot) []int {
	weeksByProduct := cc.contentMap[month][slot]
	if weeksByProduct == nil {
		return nil
	}

	var active []int
	for i := range cc.products {
		weeks, ok := weeksByProduct[cc.products[i].ID]
		if !ok {
			continue
		}
		for _, content := range weeks {
			if content != nil {
				active = append(active, cc.products[i].ID)
				break
			}
		}
	}
	return active
}

// Content returns the stored segments for a product and week, or nil.
func (cc *ContentCollector) Content(month int, slot entities.TimeSlot, productID, week int) []entities.SegmentContent {
	return cc.contentMap[month][slot][productID][week]
}
