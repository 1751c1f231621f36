package mailapi

// Connection links a brand to the delivery provider that sends its mail.
type Connection struct {
	ID        string `json:"id" validate:"required,uuid" example:"8a0c2e4f-6b8d-4c1e-9f3a-9b1d3f5a7c68" description:"Connection identifier."`
	BrandID   string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the connection belongs to."`
	Provider  string `json:"provider" validate:"required,oneof=ses sendgrid mailgun postmark smtp" example:"ses" description:"Delivery provider."`
	Name      string `json:"name" validate:"required,min=1,max=255" example:"Primary SES" description:"Display name."`
	Region    string `json:"region,omitempty" validate:"omitempty,max=32" example:"eu-west-1" description:"Provider region, when the provider has regions."`
	Endpoint  string `json:"endpoint,omitempty" validate:"omitempty,url" example:"smtp://mail.acme.example:587" description:"Server address for smtp connections."`
	Status    string `json:"status" validate:"required,oneof=active failing disabled" example:"active" description:"Health of the connection as of the last delivery attempt."`
	CreatedAt int64  `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// CreateConnectionBody is the body of CreateConnection. Credentials are
// write only and never returned.
type CreateConnectionBody struct {
	Provider    string `json:"provider" validate:"required,oneof=ses sendgrid mailgun postmark smtp" example:"ses" description:"Delivery provider."`
	Name        string `json:"name" validate:"required,min=1,max=255" example:"Primary SES" description:"Display name."`
	Credentials string `json:"credentials" validate:"required,base64" example:"eyJrZXkiOiJBS0lBIiwic2VjcmV0IjoieHl6In0=" description:"Base64 encoded JSON document with the provider credentials."`
	Region      string `json:"region,omitempty" validate:"omitempty,max=32" example:"eu-west-1" description:"Provider region, when the provider has regions."`
	Endpoint    string `json:"endpoint,omitempty" validate:"omitempty,url" example:"smtp://mail.acme.example:587" description:"Server address; required for smtp."`
}

// ConnectionPath addresses a single connection.
type ConnectionPath struct {
	BrandID      string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	ConnectionID string `json:"connection_id" validate:"required,uuid" example:"8a0c2e4f-6b8d-4c1e-9f3a-9b1d3f5a7c68" description:"Connection identifier."`
}
