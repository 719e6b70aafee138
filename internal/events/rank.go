package events

import (
	"sort"

	"github.com/areino/validate-taegis-parser/internal/taegis"
)

// RankedSource is one log source with its event count, as presented to the
// operator.
type RankedSource struct {
	Key   GroupKey
	Count int
}

// Rank orders aggregated log sources by event count descending, breaking
// ties by sensor_id then sensor_type ascending. Distinct groups always
// differ in at least one of the two strings, so the order is total.
func Rank(grouped map[GroupKey][]taegis.Event) []RankedSource {
	ranked := make([]RankedSource, 0, len(grouped))
	for key, evts := range grouped {
		ranked = append(ranked, RankedSource{Key: key, Count: len(evts)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		if ranked[i].Key.SensorID != ranked[j].Key.SensorID {
			return ranked[i].Key.SensorID < ranked[j].Key.SensorID
		}
		return ranked[i].Key.SensorType < ranked[j].Key.SensorType
	})

	return ranked
}
