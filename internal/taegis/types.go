package taegis

import (
	"encoding/json"
	"fmt"
)

// Event represents one telemetry record returned by the event query service.
// The fields these tools care about are decoded into named members; every
// field the server returned, anticipated or not, is preserved in Fields.
// A nil member means the field was absent or null in the source row.
// Events are immutable once decoded.
type Event struct {
	SensorID     *string
	SensorType   *string
	OriginalData *string

	// Fields holds the complete raw row, keyed by field name.
	Fields map[string]any
}

// EventPage represents one page of event query results. Next is the opaque
// continuation token for the following page; empty means pagination is done.
type EventPage struct {
	Events []Event
	Next   string
}

// QueryOptions configures an event query submission.
type QueryOptions struct {
	// PageSize controls how many rows the server returns per page.
	// Defaults to 1000 if not specified.
	PageSize int

	// MaxRows is the server-side cap on total rows produced by the query.
	// The client does not enforce this bound itself; it trusts the server
	// to stop producing pages once satisfied.
	MaxRows int
}

// Default values for event queries
const defaultPageSize = 1000

// UnvalidatedParserInput is the payload submitted to the Roadrunner
// validateParser endpoint.
type UnvalidatedParserInput struct {
	Code     string `json:"code"`
	ParentID int    `json:"parent_id"`
}

// ParserValidationResult is the verdict returned by validateParser.
// Message is optional human-readable detail for either outcome.
type ParserValidationResult struct {
	Ok      bool
	Message string
}

// DecodeEvent converts one raw row into an Event. String values are taken
// as-is; present-but-non-string values for the named fields are coerced to
// their string representation. Absent or null values stay nil.
func DecodeEvent(row map[string]any) Event {
	return Event{
		SensorID:     stringField(row, "sensor_id"),
		SensorType:   stringField(row, "sensor_type"),
		OriginalData: stringField(row, "original_data"),
		Fields:       row,
	}
}

// DecodeEvents decodes a raw JSON array of rows into Events, preserving
// arrival order.
func DecodeEvents(raw json.RawMessage) ([]Event, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode event rows: %w", err)
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, DecodeEvent(row))
	}
	return events, nil
}

// stringField extracts a row field as a string pointer, coercing non-string
// values and mapping absent/null to nil.
func stringField(row map[string]any, key string) *string {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return &s
}
