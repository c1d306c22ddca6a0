package schema

import "time"

const StorefrontEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "storefront_event",
	"fields" : [
		{"name": "kind", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "query", "type": "string"},
		{"name": "cart_id", "type": "string"},
		{"name": "merchandise_ids", "type": {"type": "array", "items": "string"}},
		{"name": "quantity", "type": "int"},
		{"name": "result_count", "type": "int"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type StorefrontEventV1 struct {
	Kind           string    `avro:"kind"`
	SessionID      string    `avro:"session_id"`
	Query          string    `avro:"query"`
	CartID         string    `avro:"cart_id"`
	MerchandiseIDs []string  `avro:"merchandise_ids"`
	Quantity       int       `avro:"quantity"`
	ResultCount    int       `avro:"result_count"`
	OccurredAt     time.Time `avro:"occurred_at"`
}
