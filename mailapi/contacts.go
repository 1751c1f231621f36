package mailapi

// Contact is a subscriber of a brand.
type Contact struct {
	ID        string            `json:"id" validate:"required,uuid" example:"5b7d9f1a-3c5e-4a7b-9d1f-2a4c6e8b0d13" description:"Contact identifier."`
	BrandID   string            `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the contact belongs to."`
	Email     string            `json:"email" validate:"required,email" example:"jamie@example.com" description:"Email address, unique within the brand."`
	FirstName string            `json:"first_name,omitempty" validate:"omitempty,max=255" example:"Jamie" description:"Given name."`
	LastName  string            `json:"last_name,omitempty" validate:"omitempty,max=255" example:"Rivera" description:"Family name."`
	Fields    map[string]string `json:"fields,omitempty" validate:"omitempty,dive,max=1024" example:"pro" description:"Values of custom fields keyed by field key."`
	ListIDs   []string          `json:"list_ids" validate:"required,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Lists the contact is subscribed to."`
	Status    string            `json:"status" validate:"required,oneof=subscribed unsubscribed bounced complained" example:"subscribed" description:"Subscription state."`
	CreatedAt int64             `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
	UpdatedAt int64             `json:"updated_at" validate:"required" example:"1715000000" description:"Last modification time, unix seconds."`
}

// CreateContactBody is the body of CreateContact.
type CreateContactBody struct {
	Email     string            `json:"email" validate:"required,email" example:"jamie@example.com" description:"Email address, unique within the brand."`
	FirstName string            `json:"first_name,omitempty" validate:"omitempty,max=255" example:"Jamie" description:"Given name."`
	LastName  string            `json:"last_name,omitempty" validate:"omitempty,max=255" example:"Rivera" description:"Family name."`
	Fields    map[string]string `json:"fields,omitempty" validate:"omitempty,max=100,dive,max=1024" example:"pro" description:"Values of custom fields keyed by field key."`
	ListIDs   []string          `json:"list_ids,omitempty" validate:"omitempty,max=50,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Lists to subscribe the contact to."`
	Status    string            `json:"status,omitempty" validate:"omitempty,oneof=subscribed unsubscribed" default:"subscribed" example:"subscribed" description:"Initial subscription state."`
}

// UpdateContactBody is the body of UpdateContact. Fields are merged into the
// existing values.
type UpdateContactBody struct {
	Email     string            `json:"email,omitempty" validate:"omitempty,email" example:"jamie.rivera@example.com" description:"New email address."`
	FirstName string            `json:"first_name,omitempty" validate:"omitempty,max=255" example:"Jamie" description:"Given name."`
	LastName  string            `json:"last_name,omitempty" validate:"omitempty,max=255" example:"Rivera" description:"Family name."`
	Fields    map[string]string `json:"fields,omitempty" validate:"omitempty,max=100,dive,max=1024" example:"enterprise" description:"Custom field values to set, keyed by field key."`
	ListIDs   []string          `json:"list_ids,omitempty" validate:"omitempty,max=50,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Replaces the lists the contact is subscribed to."`
	Status    string            `json:"status,omitempty" validate:"omitempty,oneof=subscribed unsubscribed" example:"unsubscribed" description:"Subscription state."`
}

// ImportContactsBody is the multipart body of ImportContacts.
type ImportContactsBody struct {
	File           string `json:"file" validate:"required" format:"binary" example:"email,first_name\njamie@example.com,Jamie" description:"CSV file with a header row; the email column is mandatory."`
	ListID         string `json:"list_id,omitempty" validate:"omitempty,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"List every imported contact is subscribed to."`
	UpdateExisting *bool  `json:"update_existing,omitempty" default:"false" example:"true" description:"Overwrite contacts that already exist instead of skipping them."`
}

// ImportJob tracks an asynchronous contact import.
type ImportJob struct {
	ID        string `json:"id" validate:"required,uuid" example:"2c4e6a8b-0d3f-4a5c-b7e9-3f5a7c9e1b80" description:"Import job identifier."`
	Status    string `json:"status" validate:"required,oneof=queued processing completed failed" example:"queued" description:"Progress of the import."`
	TotalRows int64  `json:"total_rows" validate:"required,min=0" example:"1200" description:"Number of data rows found in the file."`
}

// ContactPath addresses a single contact.
type ContactPath struct {
	BrandID   string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	ContactID string `json:"contact_id" validate:"required,uuid" example:"5b7d9f1a-3c5e-4a7b-9d1f-2a4c6e8b0d13" description:"Contact identifier."`
}

// ContactFilter narrows ListContacts.
type ContactFilter struct {
	ListID string `json:"list_id,omitempty" validate:"omitempty,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Only return contacts subscribed to this list."`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=subscribed unsubscribed bounced complained" example:"subscribed" description:"Only return contacts in this state."`
	Email  string `json:"email,omitempty" validate:"omitempty,email" example:"jamie@example.com" description:"Only return the contact with this address."`
}
