package mailapi

// Segment selects contacts of a brand by conditions on their attributes.
type Segment struct {
	ID           string             `json:"id" validate:"required,uuid" example:"4d6f8a0b-2c4e-4f7a-9b1d-5c7e9a1b3d46" description:"Segment identifier."`
	BrandID      string             `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the segment belongs to."`
	Name         string             `json:"name" validate:"required,min=1,max=255" example:"Pro customers" description:"Name of the segment."`
	Match        string             `json:"match" validate:"required,oneof=all any" example:"all" description:"Whether a contact must satisfy all or any of the conditions."`
	Conditions   []SegmentCondition `json:"conditions" validate:"required,min=1,max=20,dive" description:"Conditions evaluated against each contact."`
	ContactCount int64              `json:"contact_count" validate:"required,min=0" example:"812" description:"Number of contacts currently matching."`
	CreatedAt    int64              `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// SegmentCondition is a single predicate of a segment.
type SegmentCondition struct {
	Field    string `json:"field" validate:"required,min=1,max=64" example:"plan" description:"Contact property or custom field key to test."`
	Operator string `json:"operator" validate:"required,oneof=equals not_equals contains not_contains greater_than less_than is_set is_not_set" example:"equals" description:"Comparison applied to the field."`
	Value    string `json:"value,omitempty" validate:"omitempty,max=255" example:"pro" description:"Operand of the comparison; unused by is_set and is_not_set."`
}

// CreateSegmentBody is the body of CreateSegment.
type CreateSegmentBody struct {
	Name       string             `json:"name" validate:"required,min=1,max=255" example:"Pro customers" description:"Name of the segment."`
	Match      string             `json:"match,omitempty" validate:"omitempty,oneof=all any" default:"all" example:"all" description:"Whether a contact must satisfy all or any of the conditions."`
	Conditions []SegmentCondition `json:"conditions" validate:"required,min=1,max=20,dive" description:"Conditions evaluated against each contact."`
}

// UpdateSegmentBody is the body of UpdateSegment. Conditions, when given,
// replace the existing ones.
type UpdateSegmentBody struct {
	Name       string             `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Pro and enterprise customers" description:"Name of the segment."`
	Match      string             `json:"match,omitempty" validate:"omitempty,oneof=all any" example:"any" description:"Whether a contact must satisfy all or any of the conditions."`
	Conditions []SegmentCondition `json:"conditions,omitempty" validate:"omitempty,min=1,max=20,dive" description:"Conditions evaluated against each contact."`
}

// SegmentPath addresses a single segment.
type SegmentPath struct {
	BrandID   string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	SegmentID string `json:"segment_id" validate:"required,uuid" example:"4d6f8a0b-2c4e-4f7a-9b1d-5c7e9a1b3d46" description:"Segment identifier."`
}
