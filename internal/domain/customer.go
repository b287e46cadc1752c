package domain

import "time"

// AccessToken is the opaque credential issued by the storefront API. It is
// never renewed locally; a fresh one must be requested upstream.
type AccessToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the token is no longer live at the given time.
func (t AccessToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// Address stores mailing address fields returned to clients.
type Address struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Province  string `json:"province,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

// Money is an amount with its currency as the storefront reports it.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// TrackingInfo is a shipment tracking reference on a fulfillment.
type TrackingInfo struct {
	Number string `json:"number"`
	URL    string `json:"url"`
}

// Fulfillment groups the tracking references of one successful fulfillment.
type Fulfillment struct {
	TrackingInfo []TrackingInfo `json:"trackingInfo"`
}

// Attribute is a custom key/value pair attached to a line item.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Variant describes the purchased product variant of a line item.
type Variant struct {
	Title    string `json:"title"`
	Price    Money  `json:"price"`
	ImageSrc string `json:"imageSrc,omitempty"`
}

// LineItem is a single purchased position within an order.
type LineItem struct {
	Title            string      `json:"title"`
	Quantity         int         `json:"quantity"`
	CustomAttributes []Attribute `json:"customAttributes,omitempty"`
	Variant          *Variant    `json:"variant,omitempty"`
}

// Order is a past customer order as selected by the profile query.
type Order struct {
	OrderNumber  int           `json:"orderNumber"`
	TotalPrice   Money         `json:"totalPrice"`
	ProcessedAt  time.Time     `json:"processedAt"`
	StatusURL    string        `json:"statusUrl,omitempty"`
	Fulfillments []Fulfillment `json:"successfulFulfillments,omitempty"`
	LineItems    []LineItem    `json:"lineItems,omitempty"`
}

// Metafield is a namespaced extension value on the customer.
type Metafield struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// CustomerRecord is the canonical session payload. It is rebuilt fresh on
// every successful operation; IsLoggedIn=true implies CustomerAccessToken is
// present and not expired at write time.
type CustomerRecord struct {
	IsLoggedIn          bool         `json:"isLoggedIn"`
	CustomerAccessToken *AccessToken `json:"customerAccessToken,omitempty"`
	ID                  string       `json:"id,omitempty"`
	FirstName           string       `json:"firstName,omitempty"`
	LastName            string       `json:"lastName,omitempty"`
	Email               string       `json:"email,omitempty"`
	AcceptsMarketing    bool         `json:"acceptsMarketing,omitempty"`
	Phone               string       `json:"phone,omitempty"`
	Tags                []string     `json:"tags,omitempty"`
	DefaultAddress      *Address     `json:"defaultAddress,omitempty"`
	Addresses           []Address    `json:"addresses,omitempty"`
	Orders              []Order      `json:"orders,omitempty"`
	ProductWarranty     *Metafield   `json:"productWarranty,omitempty"`

	// Address carries the newly created address after an address-CREATE
	// action only; every other operation leaves it empty.
	Address *Address `json:"address,omitempty"`
}

// TokenExpired reports whether the record's token is missing or past expiry.
func (r CustomerRecord) TokenExpired(now time.Time) bool {
	if r.CustomerAccessToken == nil {
		return true
	}
	return r.CustomerAccessToken.Expired(now)
}
