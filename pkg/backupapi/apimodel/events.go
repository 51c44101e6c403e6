package apimodel

import (
	"encoding/json"

	"github.com/vaultline/backupsdk/internal/apijson"
)

// StreamableEvent is an event received from the live event stream.
type StreamableEvent struct {
	apijson.Overflow

	// Actor is the user or administrator causing the event.
	Actor string

	OwnerOrganizationID string
	ResourceID          string

	// Type is one of the Event* constants.
	Type int

	Timestamp int64

	// Data is OPTIONAL event specific JSON, which we do not interpret.
	Data json.RawMessage
}

// Fields implements apijson.Model.
func (r *StreamableEvent) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Actor", &r.Actor),
		apijson.String("OwnerOrganizationID", &r.OwnerOrganizationID),
		apijson.String("ResourceID", &r.ResourceID),
		apijson.Int("Type", &r.Type),
		apijson.Int64("Timestamp", &r.Timestamp),
		apijson.Raw("Data", &r.Data),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *StreamableEvent) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r StreamableEvent) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
