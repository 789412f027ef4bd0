package entities

// NormalizedProduct is a product with all day-offset intervals computed,
// ready for calendar rendering. Day offsets count from the cure start (day 0).
// Computed once per request and never mutated afterwards.
type NormalizedProduct struct {
	ID                       int             `json:"id"`
	ShopifyID                int64           `json:"shopify_id"`
	Label                    string          `json:"label"`
	Phase                    int             `json:"phase"`
	Posology                 *PosologyScheme `json:"posology"`
	BaseDelay                int             `json:"base_delay"`
	Servings                 int             `json:"servings"`
	Intake                   *PosologyIntake `json:"intake"`
	TotalDailyQuantity       float64         `json:"total_daily_quantity"`
	TotalDailyIntakesPerUnit int             `json:"total_daily_intakes_per_unit"`
	FirstUnitStart           int             `json:"first_unit_start"`
	FirstUnitEnd             int             `json:"first_unit_end"`
	SecondUnit               bool            `json:"second_unit"`
	SecondUnitStart          int             `json:"second_unit_start"`
	PauseBetweenUnit         int             `json:"pause_between_unit"`
	PosologyEnd              int             `json:"posology_end"`
}
