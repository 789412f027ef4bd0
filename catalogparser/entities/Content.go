package entities

// TextType identifies the kind of label attached to a segment.
type TextType int

const (
	TextDefault TextType = iota
	TextProductLabel
	TextRestartProduct
	TextStopProduct
	TextPause
	TextFinishProduct
)

// ContentType identifies the visual treatment of a segment.
type ContentType int

const (
	ContentCell ContentType = iota
	ContentGreenLine
	ContentRedLine
	ContentArrow
	ContentPause
)

// TextContent is a label attached to a segment. Enabled may be cleared during
// resolution when the segment is too narrow to hold the text.
type TextContent struct {
	Value   string   `json:"value"`
	Type    TextType `json:"type"`
	Enabled bool     `json:"enabled"`
}

// SegmentType carries the CSS-class treatment and the inline-geometry
// treatment of a segment separately.
type SegmentType struct {
	CSS    ContentType `json:"css"`
	Inline ContentType `json:"inline"`
}

// SegmentContent is a single positioned span within a week row.
// Invariant: 0 <= Start < 7, Start < End <= 7.
type SegmentContent struct {
	Start   int                `json:"start"`
	End     int                `json:"end"`
	Product *NormalizedProduct `json:"product,omitempty"`
	Text    *TextContent       `json:"text,omitempty"`
	Type    SegmentType        `json:"type"`
}

// ContentMap stores collected week content keyed by
// month -> time slot -> product id -> week in month (0-3).
// A nil segment slice is an explicit "no content for this week".
type ContentMap map[int]map[TimeSlot]map[int]map[int][]SegmentContent
