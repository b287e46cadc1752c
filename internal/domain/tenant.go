package domain

import "strings"

// Tenant identifies the storefront a request is scoped to. It is supplied by
// the caller on every request and never persisted.
type Tenant struct {
	CustomStoreDomain string            `json:"customStoreDomain" validate:"required"`
	StorefrontConfig  map[string]string `json:"storefrontConfig" validate:"required"`
}

// Validate checks the tenant carries everything needed to call upstream.
func (t Tenant) Validate() error {
	if strings.TrimSpace(t.CustomStoreDomain) == "" {
		return &ValidationError{Message: "store domain required"}
	}
	if len(t.StorefrontConfig) == 0 {
		return &ValidationError{Message: "storefront config required"}
	}
	return nil
}

// AddressAction selects which address mutation an address request runs.
type AddressAction string

const (
	AddressCreate        AddressAction = "CREATE"
	AddressUpdate        AddressAction = "UPDATE"
	AddressDefaultUpdate AddressAction = "DEFAULT_UPDATE"
	AddressDelete        AddressAction = "DELETE"
)

// Valid reports whether the action is one of the four supported values.
func (a AddressAction) Valid() bool {
	switch a {
	case AddressCreate, AddressUpdate, AddressDefaultUpdate, AddressDelete:
		return true
	}
	return false
}
