package mailapi

// Field is a custom contact attribute.
type Field struct {
	ID           string `json:"id" validate:"required,uuid" example:"1e3a5c7d-9f2b-4d6a-8c0e-3b5d7f9a1c35" description:"Field identifier."`
	BrandID      string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the field belongs to."`
	Key          string `json:"key" validate:"required,slug,max=64" example:"plan" description:"Key used in contact fields and merge tags."`
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Plan" description:"Display name."`
	Type         string `json:"type" validate:"required,oneof=text number date boolean" example:"text" description:"Value type of the field."`
	DefaultValue string `json:"default_value,omitempty" validate:"omitempty,max=255" example:"free" description:"Value used in merge tags when a contact has none."`
	CreatedAt    int64  `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// CreateFieldBody is the body of CreateField. Keys are unique per brand.
type CreateFieldBody struct {
	Key          string `json:"key" validate:"required,slug,max=64" example:"plan" description:"Key used in contact fields and merge tags."`
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Plan" description:"Display name."`
	Type         string `json:"type" validate:"required,oneof=text number date boolean" example:"text" description:"Value type of the field."`
	DefaultValue string `json:"default_value,omitempty" validate:"omitempty,max=255" example:"free" description:"Value used in merge tags when a contact has none."`
}

// UpdateFieldBody is the body of UpdateField. Key and type are immutable.
type UpdateFieldBody struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Subscription plan" description:"Display name."`
	DefaultValue string `json:"default_value,omitempty" validate:"omitempty,max=255" example:"trial" description:"Value used in merge tags when a contact has none."`
}

// FieldPath addresses a single field.
type FieldPath struct {
	BrandID string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	FieldID string `json:"field_id" validate:"required,uuid" example:"1e3a5c7d-9f2b-4d6a-8c0e-3b5d7f9a1c35" description:"Field identifier."`
}
