package mailapi

// Brand is a sending identity with its own contacts, lists and campaigns.
type Brand struct {
	ID                    string `json:"id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	Name                  string `json:"name" validate:"required,min=1,max=255" example:"Acme Outdoors" description:"Display name of the brand."`
	FromName              string `json:"from_name" validate:"required,max=255" example:"Acme Team" description:"Default sender name for campaigns."`
	FromEmail             string `json:"from_email" validate:"required,email" example:"news@acme.example" description:"Default sender address for campaigns."`
	ReplyTo               string `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Default reply-to address."`
	LogoURL               string `json:"logo_url,omitempty" validate:"omitempty,url" example:"https://acme.example/logo.png" description:"Logo shown in the hosted subscription pages."`
	BounceDangerPercent   int    `json:"bounce_danger_percent" validate:"required,min=1,max=15" example:"5" description:"Bounce rate, in percent, at which sending is paused."`
	ContactLimit          int64  `json:"contact_limit" validate:"required,min=1000,multiple_of=1000" example:"10000" description:"Maximum number of contacts the brand may hold."`
	ThrottlingType        string `json:"throttling_type" validate:"required,oneof=none hourly daily" example:"hourly" description:"Window used to throttle outgoing mail."`
	ThrottlingLimit       int    `json:"throttling_limit,omitempty" validate:"omitempty,min=1" example:"5000" description:"Messages allowed per throttling window."`
	ContactCount          int64  `json:"contact_count" validate:"required,min=0" example:"4821" description:"Number of contacts currently stored."`
	SendingDomainVerified bool   `json:"sending_domain_verified" validate:"required" example:"true" description:"Whether the sending domain passed DNS verification."`
	CreatedAt             int64  `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
}

// CreateBrandBody is the body of CreateBrand.
type CreateBrandBody struct {
	Name                string `json:"name" validate:"required,min=1,max=255" example:"Acme Outdoors" description:"Display name of the brand."`
	FromName            string `json:"from_name" validate:"required,max=255" example:"Acme Team" description:"Default sender name for campaigns."`
	FromEmail           string `json:"from_email" validate:"required,email" example:"news@acme.example" description:"Default sender address for campaigns."`
	ReplyTo             string `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Default reply-to address."`
	LogoURL             string `json:"logo_url,omitempty" validate:"omitempty,url" example:"https://acme.example/logo.png" description:"Logo shown in the hosted subscription pages."`
	BounceDangerPercent int    `json:"bounce_danger_percent,omitempty" validate:"omitempty,min=1,max=15" default:"5" example:"5" description:"Bounce rate, in percent, at which sending is paused."`
	ContactLimit        int64  `json:"contact_limit,omitempty" validate:"omitempty,min=1000,multiple_of=1000" example:"10000" description:"Maximum number of contacts the brand may hold."`
	ThrottlingType      string `json:"throttling_type,omitempty" validate:"omitempty,oneof=none hourly daily" default:"none" example:"hourly" description:"Window used to throttle outgoing mail."`
	ThrottlingLimit     int    `json:"throttling_limit,omitempty" validate:"omitempty,min=1" example:"5000" description:"Messages allowed per throttling window."`
}

// UpdateBrandBody is the body of UpdateBrand. Omitted properties are left
// unchanged.
type UpdateBrandBody struct {
	Name                string `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Acme Outdoor Gear" description:"Display name of the brand."`
	FromName            string `json:"from_name,omitempty" validate:"omitempty,max=255" example:"Acme Team" description:"Default sender name for campaigns."`
	FromEmail           string `json:"from_email,omitempty" validate:"omitempty,email" example:"hello@acme.example" description:"Default sender address for campaigns."`
	ReplyTo             string `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Default reply-to address."`
	LogoURL             string `json:"logo_url,omitempty" validate:"omitempty,url" example:"https://acme.example/logo.png" description:"Logo shown in the hosted subscription pages."`
	BounceDangerPercent int    `json:"bounce_danger_percent,omitempty" validate:"omitempty,min=1,max=15" example:"8" description:"Bounce rate, in percent, at which sending is paused."`
	ContactLimit        int64  `json:"contact_limit,omitempty" validate:"omitempty,min=1000,multiple_of=1000" example:"25000" description:"Maximum number of contacts the brand may hold."`
	ThrottlingType      string `json:"throttling_type,omitempty" validate:"omitempty,oneof=none hourly daily" example:"daily" description:"Window used to throttle outgoing mail."`
	ThrottlingLimit     int    `json:"throttling_limit,omitempty" validate:"omitempty,min=1" example:"50000" description:"Messages allowed per throttling window."`
}
