package payment

// SessionRequest opens one payment session for a whole basket.
type SessionRequest struct {
	AmountCents   int64
	Currency      string
	Description   string
	Reference     string
	CustomerEmail string
}

type Session struct {
	ID        string
	Reference string
	URL       string
}
