package entity

// Session is the snapshot of the authenticated identity handed to every
// gated operation. It has a single writer (login/logout) and many readers.
type Session struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Role         UserRole           `json:"role"`
	Subscription SubscriptionStatus `json:"subscription"`
}
