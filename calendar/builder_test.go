package calendar

import (
	"testing"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/posology"
)

func TestBuildCalendarContext(t *testing.T) {
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
		renderableProduct(2, entities.TimeEvening, 0, 28),
	}
	calculator, err := posology.NewCalculator(products, false)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}

	builder := CalendarContextBuilder{
		Calculator: calculator,
		Products:   products,
		CartURL:    "https://symp.co/cure_cart?content=abc&client=4666",
	}
	context := builder.Build()

	if len(context.Months) != 1 {
		t.Errorf("Expected 1 month, got %d", len(context.Months))
	}
	if context.Text.Header["1"] != "Calendrier Symp" {
		t.Errorf("Unexpected header text: %q", context.Text.Header["1"])
	}
	if len(context.Text.Table.Header) != 7 {
		t.Errorf("Expected 7 day letters, got %d", len(context.Text.Table.Header))
	}
	if !context.Phase2.Enabled {
		t.Error("Phase 2 section should be enabled with a cart URL")
	}
	if context.Phase2.QRCode != builder.CartURL {
		t.Errorf("Expected the cart URL in the QR code field, got %q", context.Phase2.QRCode)
	}
}

func TestBuildWithoutCartURLDisablesPhase2(t *testing.T) {
	products := []entities.NormalizedProduct{
		renderableProduct(1, entities.TimeMorning, 0, 28),
	}
	calculator, err := posology.NewCalculator(products, false)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}

	builder := CalendarContextBuilder{Calculator: calculator, Products: products}
	context := builder.Build()

	if context.Phase2.Enabled {
		t.Error("Phase 2 section should be disabled without a cart URL")
	}
}

func TestBuildLegendDeduplicates(t *testing.T) {
	capsuleMorning := renderableProduct(1, entities.TimeMorning, 0, 28)
	capsuleMorningBis := renderableProduct(2, entities.TimeMorning, 0, 28)

	dropEvening := renderableProduct(3, entities.TimeEvening, 0, 28)
	dropEvening.Intake.Unit = entities.UnitDrop

	calculator, err := posology.NewCalculator([]entities.NormalizedProduct{
		capsuleMorning, capsuleMorningBis, dropEvening,
	}, false)
	if err != nil {
		t.Fatalf("NewCalculator failed: %v", err)
	}

	builder := CalendarContextBuilder{
		Calculator: calculator,
		Products:   calculator.Products(),
	}
	context := builder.Build()

	if len(context.Legend.Unit) != 2 {
		t.Fatalf("Expected 2 deduplicated unit entries, got %d", len(context.Legend.Unit))
	}
	if context.Legend.Unit[0].Label != "Gélule" {
		t.Errorf("Expected first unit entry Gélule, got %q", context.Legend.Unit[0].Label)
	}
	if context.Legend.Unit[1].Label != "Capuchon" {
		t.Errorf("Expected second unit entry Capuchon, got %q", context.Legend.Unit[1].Label)
	}

	if len(context.Legend.Time) != 2 {
		t.Fatalf("Expected 2 deduplicated time entries, got %d", len(context.Legend.Time))
	}
	if context.Legend.Time[0].Label != "Matin" || context.Legend.Time[1].Label != "Soir" {
		t.Errorf("Unexpected time entries: %+v", context.Legend.Time)
	}
	if context.Legend.Time[0].BgColor == "" || context.Legend.Time[0].Icon.Src == "" {
		t.Errorf("Time entry missing icon or color: %+v", context.Legend.Time[0])
	}
}
