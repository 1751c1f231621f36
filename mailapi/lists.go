package mailapi

// List is a named collection of contacts that campaigns are sent to.
type List struct {
	ID                 string `json:"id" validate:"required,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"List identifier."`
	BrandID            string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the list belongs to."`
	Name               string `json:"name" validate:"required,min=1,max=255" example:"Newsletter" description:"Name of the list."`
	Description        string `json:"description,omitempty" validate:"omitempty,max=1000" example:"Monthly product news" description:"Description shown on the subscription page."`
	DoubleOptIn        bool   `json:"double_opt_in" validate:"required" example:"true" description:"Whether new subscribers must confirm by email."`
	ConfirmRedirectURL string `json:"confirm_redirect_url,omitempty" validate:"omitempty,url" example:"https://acme.example/thanks" description:"Page shown after a subscriber confirms."`
	ContactCount       int64  `json:"contact_count" validate:"required,min=0" example:"3120" description:"Number of subscribed contacts."`
	CreatedAt          int64  `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// CreateListBody is the body of CreateList.
type CreateListBody struct {
	Name               string `json:"name" validate:"required,min=1,max=255" example:"Newsletter" description:"Name of the list."`
	Description        string `json:"description,omitempty" validate:"omitempty,max=1000" example:"Monthly product news" description:"Description shown on the subscription page."`
	DoubleOptIn        *bool  `json:"double_opt_in,omitempty" default:"false" example:"true" description:"Require new subscribers to confirm by email."`
	ConfirmRedirectURL string `json:"confirm_redirect_url,omitempty" validate:"omitempty,url" example:"https://acme.example/thanks" description:"Page shown after a subscriber confirms."`
}

// UpdateListBody is the body of UpdateList.
type UpdateListBody struct {
	Name               string `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Weekly newsletter" description:"Name of the list."`
	Description        string `json:"description,omitempty" validate:"omitempty,max=1000" example:"Weekly product news" description:"Description shown on the subscription page."`
	DoubleOptIn        *bool  `json:"double_opt_in,omitempty" example:"false" description:"Require new subscribers to confirm by email."`
	ConfirmRedirectURL string `json:"confirm_redirect_url,omitempty" validate:"omitempty,url" example:"https://acme.example/welcome" description:"Page shown after a subscriber confirms."`
}

// ListPath addresses a single list.
type ListPath struct {
	BrandID string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	ListID  string `json:"list_id" validate:"required,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"List identifier."`
}
