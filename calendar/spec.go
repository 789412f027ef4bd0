package calendar

import (
	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

const defaultMinWidthForText = 2

// WeekContext is everything a rule predicate or a content expression can look
// at: the normalized product plus the week-relative fields.
type WeekContext struct {
	Product     *entities.NormalizedProduct
	WeekIndex   int
	WeekStart   int
	WeekEnd     int
	IsFirstWeek bool
	IsLastWeek  bool
}

// DayExpr is a day offset that is either a literal or computed per week.
type DayExpr interface {
	days(ctx *WeekContext) int
}

// Days is a literal day offset.
type Days int

func (d Days) days(*WeekContext) int { return int(d) }

// DayFn computes a day offset from the week context.
type DayFn func(ctx *WeekContext) int

func (f DayFn) days(ctx *WeekContext) int { return f(ctx) }

// TextFn computes the label of a segment per week. Returning nil means no
// label this week.
type TextFn func(ctx *WeekContext) *entities.TextContent

// TypeExpr is a content type that is either fixed or computed per week.
type TypeExpr interface {
	contentType(ctx *WeekContext) entities.ContentType
}

// FixedType is a literal content type.
type FixedType entities.ContentType

func (t FixedType) contentType(*WeekContext) entities.ContentType {
	return entities.ContentType(t)
}

// TypeFn computes a content type from the week context.
type TypeFn func(ctx *WeekContext) entities.ContentType

func (f TypeFn) contentType(ctx *WeekContext) entities.ContentType { return f(ctx) }

// ContentSpec describes one segment a rule wants to emit. Start, End, Text
// and CSS may depend on the week context; Resolve pins them down.
type ContentSpec struct {
	Start   DayExpr
	End     DayExpr
	Product *entities.NormalizedProduct
	Text    TextFn
	CSS     TypeExpr

	// MinWidthForText overrides the minimum cell width a label needs to
	// render. Zero means the default of 2 days.
	MinWidthForText int
}

// Resolve computes the concrete segment for the given week. Degenerate or
// out-of-bounds intervals resolve to nil rather than erroring; a label on a
// segment too narrow to hold it is kept but disabled.
func (s *ContentSpec) Resolve(ctx *WeekContext) *entities.SegmentContent {
	start := s.Start.days(ctx)
	end := s.End.days(ctx)

	if start == end || end <= 0 || start < 0 || start >= 7 || start > end {
		return nil
	}

	var text *entities.TextContent
	if s.Text != nil {
		if t := s.Text(ctx); t != nil {
			minWidth := s.MinWidthForText
			if minWidth == 0 {
				minWidth = defaultMinWidthForText
			}
			t.Enabled = t.Enabled && end-start >= minWidth
			text = t
		}
	}

	return &entities.SegmentContent{
		Start:   start,
		End:     end,
		Product: s.Product,
		Text:    text,
		Type: entities.SegmentType{
			CSS:    s.CSS.contentType(ctx),
			Inline: entities.ContentCell,
		},
	}
}
