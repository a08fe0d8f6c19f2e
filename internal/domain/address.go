package domain

import "strings"

// PostalAddress holds the address fields shared by billing information,
// shipping addresses and a company's legal address. Compared by value.
type PostalAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Province   string `json:"province"`
	Country    string `json:"country,omitempty"`
}

// Equals reports value equality on all fields.
func (a PostalAddress) Equals(other PostalAddress) bool {
	return a == other
}

// validate rejects addresses missing street, city or province. Postal code
// and country are unconstrained.
func (a PostalAddress) validate() error {
	if strings.TrimSpace(a.Address) == "" {
		return Invalid("address", "required")
	}
	if strings.TrimSpace(a.City) == "" {
		return Invalid("city", "required")
	}
	if strings.TrimSpace(a.Province) == "" {
		return Invalid("province", "required")
	}
	return nil
}
