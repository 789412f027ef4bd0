package calendar

import (
	"fmt"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/posology"
)

// Rule pairs a predicate over the week context with the segments to emit when
// it matches.
type Rule struct {
	Name      string
	Condition func(ctx *WeekContext) bool
	Contents  []ContentSpec
}

// RulesFor builds the rule set of a product. Order matters, first match wins.
func RulesFor(p *entities.NormalizedProduct) []Rule {
	return []Rule{
		{
			Name: "product_starts_this_week",
			Condition: func(c *WeekContext) bool {
				return p.FirstUnitStart < c.WeekEnd && p.FirstUnitStart >= c.WeekStart
			},
			Contents: []ContentSpec{
				{
					Start: DayFn(func(c *WeekContext) int {
						if p.FirstUnitStart > 28 || p.FirstUnitStart < 22 {
							return p.FirstUnitStart - c.WeekStart
						}
						return 0
					}),
					End:     Days(7),
					Product: p,
					CSS: TypeFn(func(c *WeekContext) entities.ContentType {
						if c.IsLastWeek {
							return entities.ContentArrow
						}
						return entities.ContentGreenLine
					}),
				},
			},
		},
		{
			Name: "product_continues_during_final_week",
			Condition: func(c *WeekContext) bool {
				return c.WeekIndex == posology.LastWeekToDisplay-1 &&
					p.PosologyEnd > c.WeekEnd
			},
			Contents: []ContentSpec{
				{
					Start: Days(0),
					End:   Days(7),
					Text: func(c *WeekContext) *entities.TextContent {
						return &entities.TextContent{
							Value:   fmt.Sprintf("%s Terminer la boite", p.Label),
							Type:    entities.TextFinishProduct,
							Enabled: true,
						}
					},
					CSS: FixedType(entities.ContentGreenLine),
				},
			},
		},
		{
			Name: "product_pause_between_units",
			Condition: func(c *WeekContext) bool {
				return p.SecondUnit &&
					p.FirstUnitEnd < c.WeekEnd+1 &&
					p.FirstUnitEnd+p.PauseBetweenUnit > c.WeekStart+1
			},
			Contents: []ContentSpec{
				{
					Start: DayFn(func(c *WeekContext) int {
						return max(0, p.FirstUnitStart-c.WeekStart)
					}),
					End: DayFn(func(c *WeekContext) int {
						return p.FirstUnitEnd - c.WeekStart
					}),
					Text: func(c *WeekContext) *entities.TextContent {
						value := fmt.Sprintf("%s : Terminer boite 1", p.Label)
						if c.WeekIndex%3 != 0 || p.PauseBetweenUnit != 0 {
							value = fmt.Sprintf(" Arrêter %s", p.Label)
						}
						return &entities.TextContent{
							Value:   value,
							Type:    entities.TextStopProduct,
							Enabled: true,
						}
					},
					CSS:             FixedType(entities.ContentRedLine),
					MinWidthForText: 1,
				},
				{
					Start: DayFn(func(c *WeekContext) int {
						return max(0, p.FirstUnitEnd-c.WeekStart)
					}),
					End: DayFn(func(c *WeekContext) int {
						return min(7, p.FirstUnitEnd-c.WeekStart+p.PauseBetweenUnit)
					}),
					Text: func(c *WeekContext) *entities.TextContent {
						return &entities.TextContent{
							Value:   "Pause",
							Type:    entities.TextPause,
							Enabled: true,
						}
					},
					CSS: FixedType(entities.ContentPause),
				},
				{
					Start: DayFn(func(c *WeekContext) int {
						return min(7, p.FirstUnitEnd-c.WeekStart+p.PauseBetweenUnit)
					}),
					End: Days(7),
					Text: func(c *WeekContext) *entities.TextContent {
						return &entities.TextContent{
							Value:   fmt.Sprintf("%s : Démarrer boite 2", p.Label),
							Type:    entities.TextRestartProduct,
							Enabled: true,
						}
					},
					CSS: FixedType(entities.ContentGreenLine),
				},
			},
		},
		{
			Name: "product_restart_this_week",
			Condition: func(c *WeekContext) bool {
				return p.SecondUnit &&
					p.SecondUnitStart >= c.WeekStart &&
					p.SecondUnitStart < c.WeekEnd
			},
			Contents: []ContentSpec{
				{
					Start: Days(0),
					End:   Days(7),
					Text: func(c *WeekContext) *entities.TextContent {
						verb := "Continuer"
						if p.PauseBetweenUnit != 0 {
							verb = "Recommencer"
						}
						return &entities.TextContent{
							Value:   fmt.Sprintf("%s %s", verb, p.Label),
							Type:    entities.TextRestartProduct,
							Enabled: true,
						}
					},
					CSS: FixedType(entities.ContentGreenLine),
				},
			},
		},
		{
			Name: "product_continues_through_week",
			Condition: func(c *WeekContext) bool {
				return p.PosologyEnd > c.WeekEnd && p.FirstUnitStart < c.WeekStart
			},
			Contents: []ContentSpec{
				{
					Start: Days(0),
					End:   Days(7),
					Text: func(c *WeekContext) *entities.TextContent {
						if !c.IsFirstWeek {
							return nil
						}
						return &entities.TextContent{
							Value:   p.Label,
							Type:    entities.TextProductLabel,
							Enabled: true,
						}
					},
					CSS: TypeFn(func(c *WeekContext) entities.ContentType {
						if c.IsLastWeek {
							return entities.ContentArrow
						}
						return entities.ContentGreenLine
					}),
				},
			},
		},
		{
			Name: "product_ends_this_week",
			Condition: func(c *WeekContext) bool {
				return c.WeekStart < p.PosologyEnd && p.PosologyEnd <= c.WeekEnd
			},
			Contents: []ContentSpec{
				{
					Start: Days(0),
					End: DayFn(func(c *WeekContext) int {
						return 7 - (c.WeekEnd - p.PosologyEnd)
					}),
					Text: func(c *WeekContext) *entities.TextContent {
						return &entities.TextContent{
							Value:   fmt.Sprintf("Arrêter %s", p.Label),
							Type:    entities.TextStopProduct,
							Enabled: true,
						}
					},
					CSS:             FixedType(entities.ContentRedLine),
					MinWidthForText: 1,
				},
			},
		},
		{
			Name: "product_not_started",
			Condition: func(c *WeekContext) bool {
				return p.FirstUnitStart >= c.WeekEnd
			},
		},
		{
			Name: "product_already_ended",
			Condition: func(c *WeekContext) bool {
				return p.PosologyEnd < c.WeekStart
			},
		},
	}
}

// EvaluateRules finds the first matching rule and resolves its segments.
// A nil result means no content this week: an explicit no-content rule
// matched, every segment of the matching rule degenerated, or nothing matched.
func EvaluateRules(rules []Rule, ctx *WeekContext) []entities.SegmentContent {
	for i := range rules {
		if !rules[i].Condition(ctx) {
			continue
		}
		if len(rules[i].Contents) == 0 {
			return nil
		}

		var resolved []entities.SegmentContent
		for j := range rules[i].Contents {
			if seg := rules[i].Contents[j].Resolve(ctx); seg != nil {
				resolved = append(resolved, *seg)
			}
		}
		return resolved
	}
	return nil
}
