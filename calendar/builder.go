package calendar

import (
	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/posology"
)

// CalendarContextBuilder orchestrates the two-phase pipeline and assembles
// the final context: collected content, materialized rows, the legend and the
// phase-2 reorder section.
type CalendarContextBuilder struct {
	Calculator *posology.Calculator
	Products   []entities.NormalizedProduct
	CartURL    string
}

// Build runs the pipeline and returns the complete calendar context.
func (b *CalendarContextBuilder) Build() *entities.CalendarContext {
	collector := NewContentCollector(b.Calculator, b.Products)
	months := NewRowMaterializer(collector).Materialize()

	return &entities.CalendarContext{
		Text:   Text,
		Months: months,
		Legend: b.buildLegend(),
		Phase2: entities.Phase2Section{
			QRCode:  b.CartURL,
			Enabled: b.CartURL != "",
		},
	}
}

// buildLegend collects the legend entries, deduplicated in batch order: unit
// entries by icon and label, time entries by time of day.
func (b *CalendarContextBuilder) buildLegend() entities.Legend {
	var legend entities.Legend

	seenUnits := make(map[string]bool)
	seenTimes := make(map[entities.TimeOfDay]bool)

	for i := range b.Products {
		intake := b.Products[i].Intake

		unitKey := intake.UnitIcon() + "\x00" + intake.UnitLabel()
		if !seenUnits[unitKey] {
			seenUnits[unitKey] = true
			legend.Unit = append(legend.Unit, entities.LegendUnitEntry{
				Icon:  intake.UnitIcon(),
				Label: intake.UnitLabel(),
			})
		}

		if !seenTimes[intake.TimeOfDay] {
			seenTimes[intake.TimeOfDay] = true
			legend.Time = append(legend.Time, entities.LegendTimeEntry{
				Icon: entities.LegendIcon{
					Src:   intake.TimeOfDayIcon(),
					Class: intake.TimeOfDayIconClass(),
				},
				Label:   intake.TimeOfDayLabel(),
				BgColor: intake.TimeOfDayColor(),
			})
		}
	}
	return legend
}
