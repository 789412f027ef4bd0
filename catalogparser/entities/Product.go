package entities

// Product is a raw catalog record. The label may carry markup from the
// catalog editor; it is stripped during normalization.
type Product struct {
	ID          int              `json:"id"`
	Label       string           `json:"label"`
	Phase       int              `json:"phase"`
	ShopifyID   int64            `json:"shopify_id"`
	Servings    int              `json:"servings"`
	ServingUnit IntakeUnit       `json:"serving_unit"`
	Schemes     []PosologyScheme `json:"posology_schemes"`
}

// BatchInput is the inbound contract of the scheduling core: the products a
// practitioner selected, their per-product base delays in days, and whether a
// cortisol phase precedes the cure.
type BatchInput struct {
	Products      []Product   `json:"products"`
	Delays        map[int]int `json:"delays"`
	CortisolPhase bool        `json:"cortisol_phase"`
}
