package domain

import "time"

// Credential is a user's delegated OAuth grant for the external calendar.
type Credential struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

func (c *Credential) Expired(now time.Time) bool {
	return !c.Expiry.After(now)
}

// CalendarAuth is the answer to a connect request: either a usable access
// token or the consent URL the client has to visit.
type CalendarAuth struct {
	AccessToken string `json:"access_token,omitempty"`
	URL         string `json:"url,omitempty"`
}
