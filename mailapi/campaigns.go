package mailapi

// Campaign is a single email sent to one or more lists or segments.
type Campaign struct {
	ID          string        `json:"id" validate:"required,uuid" example:"3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20" description:"Campaign identifier."`
	BrandID     string        `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand the campaign belongs to."`
	Name        string        `json:"name" validate:"required,min=1,max=255" example:"Spring sale" description:"Internal name of the campaign."`
	Subject     string        `json:"subject" validate:"required,min=1,max=998" example:"30% off all tents this weekend" description:"Subject line."`
	PreviewText string        `json:"preview_text,omitempty" validate:"omitempty,max=255" example:"Our biggest sale of the season" description:"Preview text shown by mail clients next to the subject."`
	FromName    string        `json:"from_name" validate:"required,max=255" example:"Acme Team" description:"Sender name."`
	FromEmail   string        `json:"from_email" validate:"required,email" example:"news@acme.example" description:"Sender address."`
	ReplyTo     string        `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Reply-to address."`
	ListIDs     []string      `json:"list_ids" validate:"required,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Lists the campaign is sent to."`
	SegmentIDs  []string      `json:"segment_ids,omitempty" validate:"omitempty,dive,uuid" example:"4d6f8a0b-2c4e-4f7a-9b1d-5c7e9a1b3d46" description:"Segments that restrict the recipients."`
	Status      string        `json:"status" validate:"required,oneof=draft scheduled sending sent cancelled" example:"draft" description:"Delivery state of the campaign."`
	SendDate    string        `json:"send_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-05-18" description:"Day the campaign is scheduled for."`
	Stats       CampaignStats `json:"stats" validate:"required" description:"Delivery and engagement counters."`
	CreatedAt   int64         `json:"created_at" validate:"required" example:"1714558800" description:"Creation time, unix seconds."`
	SentAt      *int64        `json:"sent_at" nullable:"true" example:"1716030000" description:"Time sending finished, unix seconds; null until sent."`
}

// CampaignStats are the counters of a sent campaign.
type CampaignStats struct {
	Recipients   int64 `json:"recipients" validate:"required,min=0" example:"4821" description:"Number of contacts the campaign was addressed to."`
	Delivered    int64 `json:"delivered" validate:"required,min=0" example:"4790" description:"Messages accepted by the receiving servers."`
	Opens        int64 `json:"opens" validate:"required,min=0" example:"2210" description:"Unique opens."`
	Clicks       int64 `json:"clicks" validate:"required,min=0" example:"642" description:"Unique clicks."`
	Bounces      int64 `json:"bounces" validate:"required,min=0" example:"31" description:"Hard and soft bounces."`
	Complaints   int64 `json:"complaints" validate:"required,min=0" example:"2" description:"Spam complaints."`
	Unsubscribes int64 `json:"unsubscribes" validate:"required,min=0" example:"17" description:"Unsubscribes attributed to the campaign."`
}

// CreateCampaignBody is the body of CreateCampaign. The campaign is created
// as a draft.
type CreateCampaignBody struct {
	Name        string   `json:"name" validate:"required,min=1,max=255" example:"Spring sale" description:"Internal name of the campaign."`
	Subject     string   `json:"subject" validate:"required,min=1,max=998" example:"30% off all tents this weekend" description:"Subject line."`
	PreviewText string   `json:"preview_text,omitempty" validate:"omitempty,max=255" example:"Our biggest sale of the season" description:"Preview text shown by mail clients next to the subject."`
	FromName    string   `json:"from_name,omitempty" validate:"omitempty,max=255" example:"Acme Team" description:"Sender name; defaults to the brand's from_name."`
	FromEmail   string   `json:"from_email,omitempty" validate:"omitempty,email" example:"news@acme.example" description:"Sender address; defaults to the brand's from_email."`
	ReplyTo     string   `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Reply-to address."`
	HTML        string   `json:"html" validate:"required,base64" example:"PGgxPlNwcmluZyBzYWxlPC9oMT4=" description:"Base64 encoded HTML content."`
	PlainText   string   `json:"plain_text,omitempty" validate:"omitempty,max=100000" example:"Spring sale: 30% off all tents." description:"Plain text alternative of the content."`
	ListIDs     []string `json:"list_ids" validate:"required,min=1,max=50,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Lists the campaign is sent to."`
	SegmentIDs  []string `json:"segment_ids,omitempty" validate:"omitempty,max=10,dive,uuid" example:"4d6f8a0b-2c4e-4f7a-9b1d-5c7e9a1b3d46" description:"Segments that restrict the recipients."`
	TrackOpens  *bool    `json:"track_opens,omitempty" default:"true" example:"true" description:"Embed an open tracking pixel."`
	TrackClicks *bool    `json:"track_clicks,omitempty" default:"true" example:"true" description:"Rewrite links for click tracking."`
}

// UpdateCampaignBody is the body of UpdateCampaign. Only drafts can be
// updated.
type UpdateCampaignBody struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=1,max=255" example:"Spring sale (final)" description:"Internal name of the campaign."`
	Subject     string   `json:"subject,omitempty" validate:"omitempty,min=1,max=998" example:"Last chance: 30% off all tents" description:"Subject line."`
	PreviewText string   `json:"preview_text,omitempty" validate:"omitempty,max=255" example:"Ends Sunday night" description:"Preview text shown by mail clients next to the subject."`
	FromName    string   `json:"from_name,omitempty" validate:"omitempty,max=255" example:"Acme Team" description:"Sender name."`
	FromEmail   string   `json:"from_email,omitempty" validate:"omitempty,email" example:"news@acme.example" description:"Sender address."`
	ReplyTo     string   `json:"reply_to,omitempty" validate:"omitempty,email" example:"support@acme.example" description:"Reply-to address."`
	HTML        string   `json:"html,omitempty" validate:"omitempty,base64" example:"PGgxPkxhc3QgY2hhbmNlPC9oMT4=" description:"Base64 encoded HTML content."`
	PlainText   string   `json:"plain_text,omitempty" validate:"omitempty,max=100000" example:"Last chance: 30% off all tents." description:"Plain text alternative of the content."`
	ListIDs     []string `json:"list_ids,omitempty" validate:"omitempty,min=1,max=50,dive,uuid" example:"9c2e4a6b-8d0f-4b1c-a3e5-6f7a8b9c0d24" description:"Lists the campaign is sent to."`
	SegmentIDs  []string `json:"segment_ids,omitempty" validate:"omitempty,max=10,dive,uuid" example:"4d6f8a0b-2c4e-4f7a-9b1d-5c7e9a1b3d46" description:"Segments that restrict the recipients."`
}

// SendCampaignBody is the body of SendCampaign. Without send_date the
// campaign is sent immediately.
type SendCampaignBody struct {
	SendDate string `json:"send_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-05-18" description:"Day to send the campaign on; omit to send now."`
}

// CampaignPath addresses a single campaign.
type CampaignPath struct {
	BrandID    string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
	CampaignID string `json:"campaign_id" validate:"required,uuid" example:"3a1d5e7f-9b2c-4d6e-8f0a-1b3c5d7e9f20" description:"Campaign identifier."`
}

// CampaignFilter narrows ListCampaigns.
type CampaignFilter struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=draft scheduled sending sent cancelled" example:"sent" description:"Only return campaigns in this state."`
}
