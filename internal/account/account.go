package account

import "time"

// Account is one registered operator credential set. AccountID is the
// provider-assigned identifier; it stays empty until the identity resolver
// manages to fetch it, and may stay empty forever if resolution keeps failing.
type Account struct {
	ID        string `json:"id"`
	APIToken  string `json:"apiToken"`
	AccountID string `json:"accountId,omitempty"`
	Alias     string `json:"alias"`
	CreatedAt string `json:"createdAt"` // ISO-8601, immutable
}

// Credentials is the minimal projection of an Account needed to authenticate
// an upstream call. Never persisted on its own; always derived from the
// active account at call time.
type Credentials struct {
	APIToken string `json:"apiToken"`
	Alias    string `json:"alias,omitempty"`
}

// DefaultAlias is used when the operator supplies no alias and identity
// resolution cannot provide one.
const DefaultAlias = "Provider Account"

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
