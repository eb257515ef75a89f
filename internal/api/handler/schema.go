package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

// Password structure (length, character classes) is enforced by the password
// policy in the service layer, not by validator tags; the tags here only
// reject requests that are malformed before any policy applies.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
}

// --- Profile ---

// Field length caps mirror the delivery profile form: 50 for the name, 100
// for address lines and city, a two-letter state code, and a 5–9 digit zip.
type updateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=50"`
	Address1 string `json:"address1"  validate:"required,max=100"`
	Address2 string `json:"address2"  validate:"omitempty,max=100"`
	City     string `json:"city"      validate:"required,max=100"`
	State    string `json:"state"     validate:"required,len=2"`
	Zipcode  string `json:"zipcode"   validate:"required,numeric,min=5,max=9"`
}

type profileResponse struct {
	FullName string `json:"full_name"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode"`
}

// --- Fuel quotes ---

type appendQuoteRequest struct {
	GallonsRequested float64 `json:"gallons_requested" validate:"required,gt=0"`
	DeliveryAddress  string  `json:"delivery_address"  validate:"required,max=100"`
	DeliveryDate     string  `json:"delivery_date"     validate:"required,datetime=2006-01-02"`
	SuggestedPrice   float64 `json:"suggested_price"   validate:"gte=0"`
	TotalAmountDue   float64 `json:"total_amount_due"  validate:"gte=0"`
}

type appendQuoteResponse struct {
	ID string `json:"id"`
}

type quoteResponse struct {
	ID               string    `json:"id"`
	GallonsRequested float64   `json:"gallons_requested"`
	DeliveryAddress  string    `json:"delivery_address"`
	DeliveryDate     string    `json:"delivery_date"`
	SuggestedPrice   float64   `json:"suggested_price"`
	TotalAmountDue   float64   `json:"total_amount_due"`
	CreatedAt        time.Time `json:"created_at"`
}

type listQuotesResponse struct {
	Quotes []quoteResponse `json:"quotes"`
}
