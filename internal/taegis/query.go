package taegis

import (
	"fmt"
	"strings"
)

// Schema queried for unparsed events. Records ingested under this schema
// have not yet been mapped to a structured parser.
const unparsedSchema = "generic"

// QuoteLiteral escapes a string for embedding inside a single-quoted CQL
// string literal by doubling embedded single quotes.
func QuoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// BuildEventQuery constructs the CQL query selecting all unparsed events
// within the given time range (e.g. "-1d").
func BuildEventQuery(timeRange string) string {
	return fmt.Sprintf("FROM %s EARLIEST=%s", unparsedSchema, timeRange)
}

// BuildFilteredQuery constructs the CQL query selecting unparsed events for
// one log source. The sensor values are quoted for safe interpolation.
func BuildFilteredQuery(sensorID, sensorType, timeRange string) string {
	return fmt.Sprintf("FROM %s WHERE sensor_id='%s' AND sensor_type='%s' EARLIEST=%s",
		unparsedSchema, QuoteLiteral(sensorID), QuoteLiteral(sensorType), timeRange)
}
