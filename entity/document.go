package entity

// Document is the payload shape for every collection. The store imposes
// no schema, so documents stay as loose key-value maps end to end.
type Document map[string]interface{}

// InsertResult mirrors the store's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}
