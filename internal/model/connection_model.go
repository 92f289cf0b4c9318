package model

import "time"

// ConnectionStatus is the outcome of a single provider check. It is returned
// to the caller and never cached.
type ConnectionStatus struct {
	TokenFound        bool      `json:"tokenFound"`
	TokenSource       string    `json:"tokenSource,omitempty"`
	CheckedAt         time.Time `json:"checkedAt"`
	Authenticated     bool      `json:"authenticated"`
	Account           string    `json:"account,omitempty"`
	ProviderReachable bool      `json:"providerReachable"`
	Model             string    `json:"model,omitempty"`
	Category          string    `json:"category,omitempty"`
	Message           string    `json:"message"`
}
