package shopify

import (
	"fmt"
	"strings"
)

// A TransportError reports a non-2xx response of the storefront API.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("storefront api: unexpected status %d", e.Status)
}

// A GraphQLError carries the first message of a GraphQL errors envelope.
type GraphQLError struct {
	Message string
}

func (e *GraphQLError) Error() string {
	return "storefront api: " + e.Message
}

// A UserError is a business-rule rejection returned inside
// a successful mutation response.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func (e *UserError) Error() string {
	if len(e.Field) == 0 {
		return e.Message
	}
	return strings.Join(e.Field, ".") + ": " + e.Message
}

func (e *UserError) onCartID() bool {
	return len(e.Field) > 0 && e.Field[len(e.Field)-1] == "cartId"
}
