// Package storefront builds GraphQL payloads for the tenant-scoped
// storefront API and ships them over HTTPS.
package storefront

// Payload is the JSON body of a storefront GraphQL call.
type Payload struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// NewPayload pairs an operation document with its variables.
func NewPayload(document string, variables map[string]any) Payload {
	return Payload{Query: document, Variables: variables}
}
