package taegis

import "testing"

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"o'brien", "o''brien"},
		{"plain", "plain"},
		{"", ""},
		{"''", "''''"},
		{"a'b'c", "a''b''c"},
	}

	for _, tt := range tests {
		if got := QuoteLiteral(tt.input); got != tt.want {
			t.Errorf("QuoteLiteral(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildEventQuery(t *testing.T) {
	got := BuildEventQuery("-1d")
	want := "FROM generic EARLIEST=-1d"
	if got != want {
		t.Errorf("BuildEventQuery(-1d) = %q, want %q", got, want)
	}
}

func TestBuildFilteredQuery(t *testing.T) {
	tests := []struct {
		name       string
		sensorID   string
		sensorType string
		timeRange  string
		want       string
	}{
		{
			name:       "plain values",
			sensorID:   "s1",
			sensorType: "syslog",
			timeRange:  "-1d",
			want:       "FROM generic WHERE sensor_id='s1' AND sensor_type='syslog' EARLIEST=-1d",
		},
		{
			name:       "embedded quote is doubled",
			sensorID:   "o'brien",
			sensorType: "t'1",
			timeRange:  "-7d",
			want:       "FROM generic WHERE sensor_id='o''brien' AND sensor_type='t''1' EARLIEST=-7d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilteredQuery(tt.sensorID, tt.sensorType, tt.timeRange)
			if got != tt.want {
				t.Errorf("BuildFilteredQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
