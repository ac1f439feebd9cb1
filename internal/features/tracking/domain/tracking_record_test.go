package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"2024-03-10T14:22:05Z", true},
		{"2024-03-10T14:22:05-03:00", true},
		{"2024-03-10T14:22:05.123", true},
		{"2024-03-10 14:22:05", true},
		{"10/03/2024 14:22", true},
		{"", false},
		{"ayer", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, ok := ParseEventTime(tt.raw)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSortEventsNewestFirst(t *testing.T) {
	events := []TrackingEvent{
		{Date: "2024-03-10T09:00:00", Status: "A"},
		{Date: "sin fecha", Status: "X"},
		{Date: "2024-03-12T09:00:00", Status: "C"},
		{Date: "", Status: "Y"},
		{Date: "2024-03-11 09:00:00", Status: "B"},
	}

	SortEventsNewestFirst(events)

	var order []string
	for _, e := range events {
		order = append(order, e.Status)
	}
	assert.Equal(t, []string{"C", "B", "A", "X", "Y"}, order)
}
