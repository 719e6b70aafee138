package events

import "github.com/areino/validate-taegis-parser/internal/taegis"

// unknownValue labels events whose sensor_id or sensor_type is absent.
const unknownValue = "unknown"

// GroupKey identifies one log source: the pair of sensor_id and
// sensor_type, with absent fields replaced by "unknown".
type GroupKey struct {
	SensorID   string
	SensorType string
}

// Aggregate partitions events by log source. Every event lands in exactly
// one group, and insertion order within a group follows arrival order.
func Aggregate(evts []taegis.Event) map[GroupKey][]taegis.Event {
	grouped := make(map[GroupKey][]taegis.Event)

	for _, e := range evts {
		key := GroupKey{
			SensorID:   orUnknown(e.SensorID),
			SensorType: orUnknown(e.SensorType),
		}
		grouped[key] = append(grouped[key], e)
	}

	return grouped
}

func orUnknown(s *string) string {
	if s == nil {
		return unknownValue
	}
	return *s
}
