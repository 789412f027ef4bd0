package calendar

import (
	"sort"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

// RowMaterializer is phase 2 of the pipeline: it turns the ContentMap into
// render-ready month structures, filtering out products with no content in a
// month and keeping every product on the same row index across the month's
// weeks.
type RowMaterializer struct {
	collector  *ContentCollector
	contentMap entities.ContentMap
}

// NewRowMaterializer builds a materializer over a collector.
func NewRowMaterializer(collector *ContentCollector) *RowMaterializer {
	return &RowMaterializer{collector: collector}
}

// Materialize runs the collector and returns the months in ascending order.
func (m *RowMaterializer) Materialize() []entities.MonthSummary {
	m.contentMap = m.collector.Collect()

	monthIndexes := make([]int, 0, len(m.contentMap))
	for monthIndex := range m.contentMap {
		monthIndexes = append(monthIndexes, monthIndex)
	}
	sort.Ints(monthIndexes)

	months := make([]entities.MonthSummary, 0, len(monthIndexes))
	for _, monthIndex := range monthIndexes {
		months = append(months, m.buildMonth(monthIndex))
	}
	return months
}

func (m *RowMaterializer) buildMonth(monthIndex int) entities.MonthSummary {
	numWeeks := m.weeksInMonth(monthIndex)

	activeProducts := make(map[entities.TimeSlot][]int, len(entities.TimeSlots))
	for _, slot := range entities.TimeSlots {
		activeProducts[slot] = m.collector.ActiveProducts(monthIndex, slot)
	}

	weeks := make([]entities.WeekSchedule, 0, numWeeks)
	for weekInMonth := 0; weekInMonth < numWeeks; weekInMonth++ {
		weeks = append(weeks, m.buildWeek(monthIndex, weekInMonth, activeProducts))
	}

	// The month's tables share a fixed height: the tallest week wins, and a
	// slot empty across the whole month is hidden in every week.
	var numLines entities.NumLines
	for _, slot := range entities.TimeSlots {
		maxRows := 0
		for w := range weeks {
			maxRows = max(maxRows, len(weeks[w].Slot(slot).Rows))
		}
		numLines.Set(slot, maxRows)
	}
	for w := range weeks {
		for _, slot := range entities.TimeSlots {
			weeks[w].Slot(slot).Enabled = numLines.Get(slot) > 0
		}
	}

	return entities.MonthSummary{
		Weeks:    weeks,
		NumLines: numLines,
	}
}

func (m *RowMaterializer) buildWeek(monthIndex, weekInMonth int, activeProducts map[entities.TimeSlot][]int) entities.WeekSchedule {
	globalWeekIndex := monthIndex*4 + weekInMonth

	return entities.WeekSchedule{
		Morning: m.buildTimeSlot(monthIndex, weekInMonth, entities.SlotMorning, activeProducts[entities.SlotMorning]),
		Evening: m.buildTimeSlot(monthIndex, weekInMonth, entities.SlotEvening, activeProducts[entities.SlotEvening]),
		Mixed:   m.buildTimeSlot(monthIndex, weekInMonth, entities.SlotMixed, activeProducts[entities.SlotMixed]),
		Display: entities.WeekDisplayOptions{
			TimeColumn:  weekInMonth == 0,
			TableHeader: monthIndex == 0,
		},
		Number: globalWeekIndex + 1,
	}
}

func (m *RowMaterializer) buildTimeSlot(monthIndex, weekInMonth int, slot entities.TimeSlot, activeProductIDs []int) entities.TimeSlotContent {
	rows := make([]*entities.LineContext, 0, len(activeProductIDs))
	isFirstWeek := weekInMonth == 0

	for _, productID := range activeProductIDs {
		content := m.collector.Content(monthIndex, slot, productID, weekInMonth)
		if len(content) > 0 {
			rows = append(rows, NewLineRenderer(content, isFirstWeek).Context())
		} else {
			// Placeholder row keeping the product on the same row index in
			// the other weeks of the month.
			rows = append(rows, nil)
		}
	}

	return entities.TimeSlotContent{
		// Provisional, fixed after all weeks are built.
		Enabled: true,
		Rows:    rows,
	}
}

// weeksInMonth is the count of weeks actually collected for a month, which
// may be less than 4 in the last month of a cure.
func (m *RowMaterializer) weeksInMonth(monthIndex int) int {
	maxWeek := -1
	for _, weeksByProduct := range m.contentMap[monthIndex] {
		for _, weeks := range weeksByProduct {
			for weekIndex := range weeks {
				maxWeek = max(maxWeek, weekIndex)
			}
		}
	}
	return maxWeek + 1
}
