package calendar

import (
	"fmt"
	"strings"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

var contentTypeClass = map[entities.ContentType]string{
	entities.ContentGreenLine: "line-green",
	entities.ContentRedLine:   "line-red",
	entities.ContentArrow:     "line-green line-arrow-green",
	entities.ContentPause:     "pause-line__dashed",
}

var textTypeClass = map[entities.TextType]string{
	entities.TextProductLabel:   "product-label--layout product-label",
	entities.TextRestartProduct: "line-container__restart",
	entities.TextStopProduct:    "line-container__stop",
	entities.TextPause:          "pause-container__text pause-text",
	entities.TextFinishProduct:  "cell-content__container--text-finish",
}

// LineRenderer turns one row of resolved segments into CSS classes and inline
// geometry. All widths are expressed in sevenths of the row width plus a one
// pixel gutter per cell; the first week of a month reserves a time-label
// column, which shrinks the base cell width.
type LineRenderer struct {
	baseWidth string
	contents  []entities.SegmentContent
}

// NewLineRenderer builds a renderer for one row. timeCol is true in the first
// week of a month.
func NewLineRenderer(contents []entities.SegmentContent, timeCol bool) *LineRenderer {
	baseWidth := "var(--cell-width)"
	if timeCol {
		baseWidth = "calc( 6 * var(--cell-width) / 7)"
	}
	return &LineRenderer{baseWidth: baseWidth, contents: contents}
}

// Context returns the render-ready row.
func (r *LineRenderer) Context() *entities.LineContext {
	rendered := make([]entities.RenderedSegment, 0, len(r.contents))
	for i := range r.contents {
		rendered = append(rendered, r.renderSegment(i))
	}

	return &entities.LineContext{
		Container: entities.ContainerStyle{
			PaddingLeft: r.paddingLeft(r.contents[0].Start),
		},
		Contents: rendered,
	}
}

func (r *LineRenderer) renderSegment(index int) entities.RenderedSegment {
	seg := &r.contents[index]

	segment := entities.RenderedSegment{
		Start: seg.Start,
		End:   seg.End,
		Class: contentTypeClass[seg.Type.CSS],
	}
	if seg.Type.Inline == entities.ContentCell {
		segment.Style = joinStyles(r.width(seg), r.marginLeft(index))
	}

	if seg.Text != nil {
		text := entities.RenderedText{
			Value:   seg.Text.Value,
			Enabled: seg.Text.Enabled,
		}
		if seg.Text.Enabled {
			text.Class = textTypeClass[seg.Text.Type]
			text.Style = r.textStyle(seg)
		}
		segment.Text = &text
	}
	return segment
}

func (r *LineRenderer) textStyle(seg *entities.SegmentContent) string {
	switch seg.Text.Type {
	case entities.TextStopProduct:
		return r.marginRight(seg.End)
	case entities.TextRestartProduct:
		return r.preventTextOverflow(seg.Start)
	case entities.TextPause, entities.TextFinishProduct:
		return r.centerPosition(seg.Start, seg.End)
	}
	return ""
}

func (r *LineRenderer) width(seg *entities.SegmentContent) string {
	return fmt.Sprintf("width: calc(%s * ( -1 * %d + %d) + %dpx - %dpx)",
		r.baseWidth, seg.Start, seg.End, seg.End, seg.Start)
}

// marginLeft spaces a segment from its predecessor. Abutting segments get no
// margin.
func (r *LineRenderer) marginLeft(index int) string {
	if index == 0 {
		return ""
	}
	gap := r.contents[index].Start - r.contents[index-1].End
	if gap <= 0 {
		return ""
	}
	return fmt.Sprintf("margin-left: calc(%s * %d + %dpx)", r.baseWidth, gap, gap)
}

func (r *LineRenderer) marginRight(end int) string {
	return fmt.Sprintf("margin-right: calc((%s * (7 - %d)) + %dpx)",
		r.baseWidth, end, 7-end)
}

func (r *LineRenderer) paddingLeft(start int) string {
	return fmt.Sprintf("padding-left: calc(%d * calc(%s + 1px))", start, r.baseWidth)
}

// centerPosition places a label at the midpoint of its segment.
func (r *LineRenderer) centerPosition(start, end int) string {
	midpoint := (start + end) / 2
	return fmt.Sprintf("left: calc(%s * %.1f + %dpx); transform: translateX(-50%%)",
		r.baseWidth, float64(start+end)/2, midpoint)
}

// preventTextOverflow keeps a restart label inside the row when its segment
// starts in the last columns.
func (r *LineRenderer) preventTextOverflow(start int) string {
	if start >= 6 {
		return "right: 1px"
	}
	return r.paddingLeft(start)
}

func joinStyles(styles ...string) string {
	var parts []string
	for _, style := range styles {
		if style != "" {
			parts = append(parts, style)
		}
	}
	return strings.Join(parts, "; ")
}
