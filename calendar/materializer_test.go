package calendar

import (
	"testing"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

func materializeProducts(t *testing.T, products []entities.NormalizedProduct) []entities.MonthSummary {
	t.Helper()

	cc := newTestCollector(t, products)
	return NewRowMaterializer(cc).Materialize()
}

func TestMaterializeMonthLayout(t *testing.T) {
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
	}
	months := materializeProducts(t, products)

	if len(months) != 1 {
		t.Fatalf("Expected 1 month, got %d", len(months))
	}

	month := months[0]
	if len(month.Weeks) != 4 {
		t.Fatalf("Expected 4 weeks, got %d", len(month.Weeks))
	}

	for w, week := range month.Weeks {
		if week.Number != w+1 {
			t.Errorf("Week %d: expected number %d, got %d", w, w+1, week.Number)
		}
		if week.Display.TimeColumn != (w == 0) {
			t.Errorf("Week %d: time column should show only in the first week", w)
		}
		if !week.Display.TableHeader {
			t.Errorf("Week %d: table header should show in the first month", w)
		}
	}
}

func TestMaterializeSecondMonthNumbering(t *testing.T) {
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 56),
	}
	months := materializeProducts(t, products)

	if len(months) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(months))
	}

	second := months[1]
	if second.Weeks[0].Number != 5 {
		t.Errorf("Expected week number 5, got %d", second.Weeks[0].Number)
	}
	if second.Weeks[0].Display.TableHeader {
		t.Error("Table header should only show in the first month")
	}
	if !second.Weeks[0].Display.TimeColumn {
		t.Error("Time column should show in the first week of every month")
	}
}

func TestMaterializeRowAlignment(t *testing.T) {
	// Product 2 starts in week 3; its row must exist as a placeholder in the
	// earlier weeks so product order stays stable down the month.
	late := renderableProduct(2, entities.TimeMorning, 21, 49)
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
		late,
	}
	months := materializeProducts(t, products)

	month := months[0]
	if month.NumLines.Morning != 2 {
		t.Fatalf("Expected 2 morning rows, got %d", month.NumLines.Morning)
	}

	for w, week := range month.Weeks {
		rows := week.Morning.Rows
		if len(rows) != 2 {
			t.Fatalf("Week %d: expected 2 rows, got %d", w, len(rows))
		}
		if rows[0] == nil {
			t.Errorf("Week %d: product 1 row should have content", w)
		}
		if w < 3 && rows[1] != nil {
			t.Errorf("Week %d: product 2 row should be a placeholder before its start", w)
		}
		if w == 3 && rows[1] == nil {
			t.Error("Week 3: product 2 row should have content")
		}
	}
}

func TestMaterializeHidesEmptySlots(t *testing.T) {
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
	}
	months := materializeProducts(t, products)

	month := months[0]
	if month.NumLines.Evening != 0 || month.NumLines.Mixed != 0 {
		t.Errorf("Expected empty evening and mixed slots, got %+v", month.NumLines)
	}

	for w, week := range month.Weeks {
		if !week.Morning.Enabled {
			t.Errorf("Week %d: morning slot should be enabled", w)
		}
		if week.Evening.Enabled {
			t.Errorf("Week %d: evening slot should be hidden", w)
		}
		if week.Mixed.Enabled {
			t.Errorf("Week %d: mixed slot should be hidden", w)
		}
	}
}

func TestMaterializeSlotActiveInMonthOnly(t *testing.T) {
	// A product ending in month 0 drops off the rows of month 1 entirely.
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
		renderableProduct(2, entities.TimeMorning, 0, 56),
	}
	months := materializeProducts(t, products)

	if len(months) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(months))
	}
	if months[0].NumLines.Morning != 2 {
		t.Errorf("Expected 2 morning rows in month 0, got %d", months[0].NumLines.Morning)
	}
	if months[1].NumLines.Morning != 1 {
		t.Errorf("Expected 1 morning row in month 1, got %d", months[1].NumLines.Morning)
	}
}
