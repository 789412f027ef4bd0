package calendar

import (
	"testing"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
)

func cellSegment(start, end int, css entities.ContentType, text *entities.TextContent) entities.SegmentContent {
	return entities.SegmentContent{
		Start: start,
		End:   end,
		Text:  text,
		Type: entities.SegmentType{
			CSS:    css,
			Inline: entities.ContentCell,
		},
	}
}

func TestRenderSegmentGeometry(t *testing.T) {
	contents := []entities.SegmentContent{
		cellSegment(0, 2, entities.ContentGreenLine, nil),
		cellSegment(3, 7, entities.ContentRedLine, nil),
	}

	ctx := NewLineRenderer(contents, false).Context()

	if ctx.Container.PaddingLeft != "padding-left: calc(0 * calc(var(--cell-width) + 1px))" {
		t.Errorf("Unexpected container padding: %q", ctx.Container.PaddingLeft)
	}
	if len(ctx.Contents) != 2 {
		t.Fatalf("Expected 2 rendered segments, got %d", len(ctx.Contents))
	}

	first := ctx.Contents[0]
	if first.Class != "line-green" {
		t.Errorf("Unexpected class: %q", first.Class)
	}
	expectedStyle := "width: calc(var(--cell-width) * ( -1 * 0 + 2) + 2px - 0px)"
	if first.Style != expectedStyle {
		t.Errorf("Expected style %q, got %q", expectedStyle, first.Style)
	}

	second := ctx.Contents[1]
	if second.Class != "line-red" {
		t.Errorf("Unexpected class: %q", second.Class)
	}
	// One day of gap between the segments becomes a margin
	expectedStyle = "width: calc(var(--cell-width) * ( -1 * 3 + 7) + 7px - 3px); margin-left: calc(var(--cell-width) * 1 + 1px)"
	if second.Style != expectedStyle {
		t.Errorf("Expected style %q, got %q", expectedStyle, second.Style)
	}
}

func TestRenderAbuttingSegmentsGetNoMargin(t *testing.T) {
	contents := []entities.SegmentContent{
		cellSegment(0, 3, entities.ContentRedLine, nil),
		cellSegment(3, 7, entities.ContentGreenLine, nil),
	}

	ctx := NewLineRenderer(contents, false).Context()

	expectedStyle := "width: calc(var(--cell-width) * ( -1 * 3 + 7) + 7px - 3px)"
	if ctx.Contents[1].Style != expectedStyle {
		t.Errorf("Expected style %q, got %q", expectedStyle, ctx.Contents[1].Style)
	}
}

func TestRenderTimeColumnShrinksBaseWidth(t *testing.T) {
	contents := []entities.SegmentContent{
		cellSegment(0, 7, entities.ContentGreenLine, nil),
	}

	ctx := NewLineRenderer(contents, true).Context()

	expectedStyle := "width: calc(calc( 6 * var(--cell-width) / 7) * ( -1 * 0 + 7) + 7px - 0px)"
	if ctx.Contents[0].Style != expectedStyle {
		t.Errorf("Expected style %q, got %q", expectedStyle, ctx.Contents[0].Style)
	}
}

func TestRenderContainerPaddingFollowsFirstSegment(t *testing.T) {
	contents := []entities.SegmentContent{
		cellSegment(2, 7, entities.ContentGreenLine, nil),
	}

	ctx := NewLineRenderer(contents, false).Context()

	expected := "padding-left: calc(2 * calc(var(--cell-width) + 1px))"
	if ctx.Container.PaddingLeft != expected {
		t.Errorf("Expected padding %q, got %q", expected, ctx.Container.PaddingLeft)
	}
}

func TestRenderTextStyles(t *testing.T) {
	tests := []struct {
		name          string
		segment       entities.SegmentContent
		expectedClass string
		expectedStyle string
	}{
		{
			"stop label sticks to the segment end",
			cellSegment(0, 6, entities.ContentRedLine,
				&entities.TextContent{Value: "Arrêter X", Type: entities.TextStopProduct, Enabled: true}),
			"line-container__stop",
			"margin-right: calc((var(--cell-width) * (7 - 6)) + 1px)",
		},
		{
			"restart label uses padding",
			cellSegment(3, 7, entities.ContentGreenLine,
				&entities.TextContent{Value: "Reprendre X", Type: entities.TextRestartProduct, Enabled: true}),
			"line-container__restart",
			"padding-left: calc(3 * calc(var(--cell-width) + 1px))",
		},
		{
			"restart label pinned right near the edge",
			cellSegment(6, 7, entities.ContentGreenLine,
				&entities.TextContent{Value: "Reprendre X", Type: entities.TextRestartProduct, Enabled: true}),
			"line-container__restart",
			"right: 1px",
		},
		{
			"pause label centered on an odd span",
			cellSegment(2, 5, entities.ContentPause,
				&entities.TextContent{Value: "Pause", Type: entities.TextPause, Enabled: true}),
			"pause-container__text pause-text",
			"left: calc(var(--cell-width) * 3.5 + 3px); transform: translateX(-50%)",
		},
		{
			"finish label centered on an even span",
			cellSegment(0, 6, entities.ContentGreenLine,
				&entities.TextContent{Value: "X Terminer la boite", Type: entities.TextFinishProduct, Enabled: true}),
			"cell-content__container--text-finish",
			"left: calc(var(--cell-width) * 3.0 + 3px); transform: translateX(-50%)",
		},
		{
			"product label needs no inline style",
			cellSegment(0, 7, entities.ContentGreenLine,
				&entities.TextContent{Value: "X", Type: entities.TextProductLabel, Enabled: true}),
			"product-label--layout product-label",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewLineRenderer([]entities.SegmentContent{tt.segment}, false).Context()

			text := ctx.Contents[0].Text
			if text == nil {
				t.Fatal("Expected a rendered text")
			}
			if text.Class != tt.expectedClass {
				t.Errorf("Expected class %q, got %q", tt.expectedClass, text.Class)
			}
			if text.Style != tt.expectedStyle {
				t.Errorf("Expected style %q, got %q", tt.expectedStyle, text.Style)
			}
		})
	}
}

func TestRenderDisabledTextKeepsValueOnly(t *testing.T) {
	contents := []entities.SegmentContent{
		cellSegment(6, 7, entities.ContentPause,
			&entities.TextContent{Value: "Pause", Type: entities.TextPause, Enabled: false}),
	}

	ctx := NewLineRenderer(contents, false).Context()

	text := ctx.Contents[0].Text
	if text == nil {
		t.Fatal("Expected a rendered text")
	}
	if text.Enabled {
		t.Error("Text should stay disabled")
	}
	if text.Value != "Pause" {
		t.Errorf("Expected the value kept, got %q", text.Value)
	}
	if text.Class != "" || text.Style != "" {
		t.Errorf("Disabled text should carry no class or style, got %q / %q", text.Class, text.Style)
	}
}

func TestRenderSegmentClasses(t *testing.T) {
	tests := []struct {
		css      entities.ContentType
		expected string
	}{
		{entities.ContentGreenLine, "line-green"},
		{entities.ContentRedLine, "line-red"},
		{entities.ContentArrow, "line-green line-arrow-green"},
		{entities.ContentPause, "pause-line__dashed"},
	}

	for _, tt := range tests {
		contents := []entities.SegmentContent{cellSegment(0, 7, tt.css, nil)}
		ctx := NewLineRenderer(contents, false).Context()
		if ctx.Contents[0].Class != tt.expected {
			t.Errorf("CSS type %d: expected class %q, got %q", tt.css, tt.expected, ctx.Contents[0].Class)
		}
	}
}
