package events

import (
	"testing"

	"github.com/areino/validate-taegis-parser/internal/taegis"
)

func group(n int) []taegis.Event {
	evts := make([]taegis.Event, n)
	for i := range evts {
		evts[i] = taegis.DecodeEvent(map[string]any{})
	}
	return evts
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		grouped map[GroupKey][]taegis.Event
		want    []RankedSource
	}{
		{
			name: "count descending",
			grouped: map[GroupKey][]taegis.Event{
				{SensorID: "small", SensorType: "t"}: group(1),
				{SensorID: "big", SensorType: "t"}:   group(5),
				{SensorID: "mid", SensorType: "t"}:   group(3),
			},
			want: []RankedSource{
				{Key: GroupKey{SensorID: "big", SensorType: "t"}, Count: 5},
				{Key: GroupKey{SensorID: "mid", SensorType: "t"}, Count: 3},
				{Key: GroupKey{SensorID: "small", SensorType: "t"}, Count: 1},
			},
		},
		{
			name: "count tie broken by sensor_id",
			grouped: map[GroupKey][]taegis.Event{
				{SensorID: "beta", SensorType: "t"}:  group(2),
				{SensorID: "alpha", SensorType: "t"}: group(2),
			},
			want: []RankedSource{
				{Key: GroupKey{SensorID: "alpha", SensorType: "t"}, Count: 2},
				{Key: GroupKey{SensorID: "beta", SensorType: "t"}, Count: 2},
			},
		},
		{
			name: "full tie broken by sensor_type",
			grouped: map[GroupKey][]taegis.Event{
				{SensorID: "s", SensorType: "zz"}: group(2),
				{SensorID: "s", SensorType: "aa"}: group(2),
			},
			want: []RankedSource{
				{Key: GroupKey{SensorID: "s", SensorType: "aa"}, Count: 2},
				{Key: GroupKey{SensorID: "s", SensorType: "zz"}, Count: 2},
			},
		},
		{
			name:    "empty",
			grouped: map[GroupKey][]taegis.Event{},
			want:    []RankedSource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.grouped)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sources, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("rank %d = %+v, want %+v", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}
