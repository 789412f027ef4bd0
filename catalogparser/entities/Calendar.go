package entities

// RenderedText is a segment label with its resolved CSS class and inline style.
type RenderedText struct {
	Value   string `json:"value"`
	Class   string `json:"class"`
	Style   string `json:"style,omitempty"`
	Enabled bool   `json:"enabled"`
}

// RenderedSegment is a segment with its resolved class and inline geometry.
type RenderedSegment struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Class string        `json:"class"`
	Style string        `json:"style,omitempty"`
	Text  *RenderedText `json:"text,omitempty"`
}

// ContainerStyle is the inline style of a row container.
type ContainerStyle struct {
	PaddingLeft string `json:"padding_left"`
}

// LineContext is one render-ready row of a week table.
type LineContext struct {
	Container ContainerStyle    `json:"container"`
	Contents  []RenderedSegment `json:"contents"`
}

// TimeSlotContent holds the rows of one time slot within a week. A nil row is
// a placeholder keeping products aligned to the same row index across the
// weeks of a month.
type TimeSlotContent struct {
	Enabled bool           `json:"enabled"`
	Rows    []*LineContext `json:"rows"`
}

// WeekDisplayOptions controls the visual rendering of a week table.
type WeekDisplayOptions struct {
	TimeColumn  bool `json:"time_column"`
	TableHeader bool `json:"table_header"`
}

// WeekSchedule is all time slots for a single week.
type WeekSchedule struct {
	Morning TimeSlotContent    `json:"morning"`
	Evening TimeSlotContent    `json:"evening"`
	Mixed   TimeSlotContent    `json:"mixed"`
	Display WeekDisplayOptions `json:"display"`
	Number  int                `json:"number"`
}

// Slot returns the addressed time slot of the week.
func (w *WeekSchedule) Slot(slot TimeSlot) *TimeSlotContent {
	switch slot {
	case SlotMorning:
		return &w.Morning
	case SlotEvening:
		return &w.Evening
	default:
		return &w.Mixed
	}
}

// NumLines is the row count needed for each time slot of a month. It fixes
// the table height across the month's weeks.
type NumLines struct {
	Morning int `json:"morning"`
	Evening int `json:"evening"`
	Mixed   int `json:"mixed"`
}

// Get returns the line count of the addressed slot.
func (n *NumLines) Get(slot TimeSlot) int {
	switch slot {
	case SlotMorning:
		return n.Morning
	case SlotEvening:
		return n.Evening
	default:
		return n.Mixed
	}
}

// Set stores the line count of the addressed slot.
func (n *NumLines) Set(slot TimeSlot, count int) {
	switch slot {
	case SlotMorning:
		n.Morning = count
	case SlotEvening:
		n.Evening = count
	default:
		n.Mixed = count
	}
}

// MonthSummary is the month data with weeks and consolidated line counts.
type MonthSummary struct {
	Weeks    []WeekSchedule `json:"weeks"`
	NumLines NumLines       `json:"num_lines"`
}

// LegendUnitEntry is one deduplicated intake-unit icon in the legend.
type LegendUnitEntry struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// LegendIcon is an icon reference with its CSS class.
type LegendIcon struct {
	Src   string `json:"src"`
	Class string `json:"class"`
}

// LegendTimeEntry is one deduplicated time-of-day entry in the legend.
type LegendTimeEntry struct {
	Icon    LegendIcon `json:"icon"`
	Label   string     `json:"label"`
	BgColor string     `json:"bg_color"`
}

// Legend groups the deduplicated unit and time-of-day entries.
type Legend struct {
	Unit []LegendUnitEntry `json:"unit"`
	Time []LegendTimeEntry `json:"time"`
}

// Phase2Section carries the reorder link for the second treatment phase. The
// rendering layer turns QRCode into an actual QR image.
type Phase2Section struct {
	QRCode  string `json:"qr_code"`
	Enabled bool   `json:"enabled"`
}

// CalendarTableText holds the day-of-week header letters.
type CalendarTableText struct {
	Header []string `json:"header"`
}

// CalendarLineText holds the line action labels.
type CalendarLineText struct {
	Stop    string `json:"stop"`
	Restart string `json:"restart"`
}

// CalendarLegendText holds the legend titles.
type CalendarLegendText struct {
	Title     string `json:"title"`
	UnitTitle string `json:"unit_title"`
}

// CalendarText is the static display text block of the calendar.
type CalendarText struct {
	Header map[string]string  `json:"header"`
	Table  CalendarTableText  `json:"table"`
	Line   CalendarLineText   `json:"line"`
	Legend CalendarLegendText `json:"legend"`
	Phase2 map[string]string  `json:"phase_2"`
}

// CalendarContext is the complete outbound structure consumed by the
// template/PDF rendering layer.
type CalendarContext struct {
	Text   CalendarText   `json:"text"`
	Months []MonthSummary `json:"months"`
	Legend Legend         `json:"legend"`
	Phase2 Phase2Section  `json:"phase_2"`
}
