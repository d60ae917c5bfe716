package models

// RegisterRequest - POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest - POST /api/auth/login. The password is accepted and
// ignored: authentication is simulated, any registered email logs in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries the logged-in user
type SessionResponse struct {
	User *User `json:"user"`
}

// UpdateProfileRequest - PUT /api/profile. Setting BankDetails derives a
// fresh routing code; ClearBankDetails removes both the details and the
// code. The two are mutually exclusive.
type UpdateProfileRequest struct {
	Name             *string      `json:"name,omitempty"`
	BankDetails      *BankDetails `json:"bank_details,omitempty"`
	ClearBankDetails bool         `json:"clear_bank_details,omitempty"`
}

// CreateBrandRequest - POST /api/brands
type CreateBrandRequest struct {
	Name        string      `json:"name" binding:"required"`
	BankDetails BankDetails `json:"bank_details" binding:"required"`
}

// UpdateBrandBankRequest - PATCH /api/brands/:id/bank. A nil BankDetails
// clears the brand's payout configuration.
type UpdateBrandBankRequest struct {
	BankDetails *BankDetails `json:"bank_details,omitempty"`
}

// AddBrandAdminRequest - POST /api/brands/:id/admins
type AddBrandAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TicketInput is a ticket tier as submitted by the organizer. The ID is
// kept when present so edits address existing tiers; a missing ID means
// a new tier.
type TicketInput struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"min=0"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	PurchaseLimit int     `json:"purchase_limit" binding:"min=1"`
}

// EventPayload - POST /api/events and PUT /api/events/:id share this
// shape. On update every editable field is replaced wholesale.
type EventPayload struct {
	BrandID         string           `json:"brand_id,omitempty"`
	Title           string           `json:"title" binding:"required"`
	Description     string           `json:"description"`
	Date            string           `json:"date" binding:"required"`
	Time            string           `json:"time" binding:"required"`
	ExpirationTime  string           `json:"expiration_time,omitempty"`
	Location        string           `json:"location"`
	Tickets         []TicketInput    `json:"tickets" binding:"required,dive"`
	ImageURL        string           `json:"image_url,omitempty"`
	Hashtags        []string         `json:"hashtags,omitempty"`
	RedirectURL     string           `json:"redirect_url,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	CollectPhone    bool             `json:"collect_phone,omitempty"`
	CustomQuestions []CustomQuestion `json:"custom_questions,omitempty"`
	Rewards         []Reward         `json:"rewards,omitempty"`
}

// QuoteRequest - POST /ticket/:id/quote
type QuoteRequest struct {
	Quantities map[string]int `json:"quantities" binding:"required"`
}

// QuoteLine is one priced line of a quote
type QuoteLine struct {
	TicketID  string  `json:"ticket_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// QuoteResponse - the priced order preview
type QuoteResponse struct {
	Lines       []QuoteLine `json:"lines"`
	TotalCost   float64     `json:"total_cost"`
	TicketCount int         `json:"ticket_count"`
}

// PurchaseRequest - POST /ticket/:id/purchase
type PurchaseRequest struct {
	Name       string            `json:"name" binding:"required"`
	Email      string            `json:"email" binding:"required,email"`
	Phone      string            `json:"phone,omitempty"`
	Answers    map[string]string `json:"answers,omitempty"`
	Quantities map[string]int    `json:"quantities" binding:"required"`
}

// PurchaseResponse confirms a completed purchase. The reference is
// display-only, synthesized from the purchase timestamp; it is not a
// durable order id.
type PurchaseResponse struct {
	Reference   string  `json:"reference"`
	TotalCost   float64 `json:"total_cost"`
	TicketCount int     `json:"ticket_count"`
	RedirectURL string  `json:"redirect_url,omitempty"`
}

// EventSearchItem - GET /api/events/search result entry
type EventSearchItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
}
