package mailapi

// Suppression blocks every future send to an address within a brand.
type Suppression struct {
	ID        string `json:"id" validate:"required,uuid" example:"0b2d4f6a-8c1e-4e3a-a5c7-1d3f5b7c9e79" description:"Suppression identifier."`
	BrandID   string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the suppression belongs to."`
	Email     string `json:"email" validate:"required,email" example:"bounced@example.com" description:"Suppressed address."`
	Reason    string `json:"reason" validate:"required,oneof=hard_bounce complaint unsubscribe manual" example:"hard_bounce" description:"Why the address is suppressed."`
	CreatedAt int64  `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// CreateSuppressionBody is the body of CreateSuppression.
type CreateSuppressionBody struct {
	Email  string `json:"email" validate:"required,email" example:"bounced@example.com" description:"Address to suppress."`
	Reason string `json:"reason,omitempty" validate:"omitempty,oneof=hard_bounce complaint unsubscribe manual" default:"manual" example:"manual" description:"Why the address is suppressed."`
}

// SuppressionPath addresses a single suppression.
type SuppressionPath struct {
	BrandID       string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	SuppressionID string `json:"suppression_id" validate:"required,uuid" example:"0b2d4f6a-8c1e-4e3a-a5c7-1d3f5b7c9e79" description:"Suppression identifier."`
}

// SuppressionFilter narrows ListSuppressions.
type SuppressionFilter struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,oneof=hard_bounce complaint unsubscribe manual" example:"complaint" description:"Only return suppressions with this reason."`
	Email  string `json:"email,omitempty" validate:"omitempty,email" example:"bounced@example.com" description:"Only return the suppression of this address."`
}
