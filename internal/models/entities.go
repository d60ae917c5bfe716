package models

// BankDetails holds the payout account for a user or brand
type BankDetails struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
}

// User represents a registered account
type User struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Name        string       `json:"name,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
	RoutingCode string       `json:"routing_code,omitempty"`
}

// Brand is an organizer identity with its own payout configuration.
// The first admin id is the creator.
type Brand struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
	RoutingCode string       `json:"routing_code,omitempty"`
	AdminIDs    []string     `json:"admin_ids"`
}

// Ticket is one admission tier of an event.
// InitialQuantity snapshots the stock at creation or last edit;
// Quantity is the remaining stock and only purchases decrement it.
type Ticket struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	InitialQuantity int     `json:"initial_quantity"`
	Quantity        int     `json:"quantity"`
	PurchaseLimit   int     `json:"purchase_limit"`
}

// CustomQuestion is asked of every buyer during checkout
type CustomQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Required bool   `json:"required"`
}

// Reward is informational, attached to ticket holders after purchase
type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Event represents an event in the system. An empty BrandID means the
// event is personal, owned by its creator.
type Event struct {
	ID              string           `json:"id"`
	CreatedBy       string           `json:"created_by"`
	BrandID         string           `json:"brand_id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	ExpirationTime  string           `json:"expiration_time,omitempty"`
	Location        string           `json:"location"`
	ShareableLink   string           `json:"shareable_link"`
	Tickets         []Ticket         `json:"tickets"`
	ImageURL        string           `json:"image_url,omitempty"`
	Hashtags        []string         `json:"hashtags,omitempty"`
	RedirectURL     string           `json:"redirect_url,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	CollectPhone    bool             `json:"collect_phone,omitempty"`
	CustomQuestions []CustomQuestion `json:"custom_questions,omitempty"`
	Rewards         []Reward         `json:"rewards,omitempty"`
}

// Ticket returns the ticket with the given id, or nil
func (e *Event) Ticket(id string) *Ticket {
	for i := range e.Tickets {
		if e.Tickets[i].ID == id {
			return &e.Tickets[i]
		}
	}
	return nil
}

// IsAdmin reports whether the user id is in the brand's admin list
func (b *Brand) IsAdmin(userID string) bool {
	for _, id := range b.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
