package calendar

import "github.com/symplab/cure-calendar-api/catalogparser/entities"

// Text is the static French display copy of the calendar. The numbered keys
// follow the template's line breaks.
var Text = entities.CalendarText{
	Header: map[string]string{
		"1": "Calendrier Symp",
	},
	Table: entities.CalendarTableText{
		Header: []string{"L", "M", "M", "J", "V", "S", "D"},
	},
	Line: entities.CalendarLineText{
		Stop:    "Arrêter",
		Restart: "Reprendre",
	},
	Legend: entities.CalendarLegendText{
		Title:     "Légende",
		UnitTitle: "Prise",
	},
	Phase2: map[string]string{
		"1": "Afin de commencer la",
		"2": "phase 2",
		"3": "de votre cure, veuillez scanner le code QR ci-dessus",
	},
}
