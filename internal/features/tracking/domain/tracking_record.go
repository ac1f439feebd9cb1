package domain

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// ErrTrackingNotFound is returned when the carrier has no data for a tracking number.
var ErrTrackingNotFound = errors.New("no tracking information found for this number")

// TrackingStatus is the normalized status of a shipment.
type TrackingStatus string

const (
	// TrackingStatusCreated indicates the shipment order exists but has not moved.
	TrackingStatusCreated TrackingStatus = "CREATED"
	// TrackingStatusInTransit indicates the shipment is between facilities.
	TrackingStatusInTransit TrackingStatus = "IN_TRANSIT"
	// TrackingStatusOutForDelivery indicates the shipment is on the last-mile vehicle.
	TrackingStatusOutForDelivery TrackingStatus = "OUT_FOR_DELIVERY"
	// TrackingStatusDelivered indicates the shipment has been delivered.
	TrackingStatusDelivered TrackingStatus = "DELIVERED"
	// TrackingStatusFailedDelivery indicates a delivery attempt failed.
	TrackingStatusFailedDelivery TrackingStatus = "FAILED_DELIVERY"
	// TrackingStatusReturned indicates the shipment was returned to sender.
	TrackingStatusReturned TrackingStatus = "RETURNED"
	// TrackingStatusUnknown is used for carrier states without a mapping.
	TrackingStatusUnknown TrackingStatus = "UNKNOWN"
)

// EventStatusCreated is the status of the synthetic order-creation event.
const EventStatusCreated = "CREATED"

// TrackingRecord is the normalized tracking information of a shipment.
type TrackingRecord struct {
	// TrackingNumber is the carrier's shipment number.
	TrackingNumber string `json:"tracking_number"`
	// Status is the normalized current status.
	Status TrackingStatus `json:"status"`
	// StatusDescription is the carrier's own wording of the current status.
	StatusDescription string `json:"status_description"`
	// Events are the checkpoints of the shipment, newest first.
	Events []TrackingEvent `json:"events"`
	// LastUpdate is when the current status was reached.
	LastUpdate string `json:"last_update,omitempty"`
	// OriginAddress is "street, locality" of the sender.
	OriginAddress string `json:"origin_address,omitempty"`
	// DestinationAddress is "street, locality" of the recipient.
	DestinationAddress string `json:"destination_address,omitempty"`
	// PackageInfo describes the parcel.
	PackageInfo PackageInfo `json:"package_info"`
}

// TrackingEvent represents a single checkpoint in the shipment history.
type TrackingEvent struct {
	// Date is the timestamp as reported by the carrier.
	Date string `json:"date"`
	// Status is the carrier's movement code.
	Status string `json:"status"`
	// Description is the movement description.
	Description string `json:"description"`
	// Location is where the event occurred, when known.
	Location string `json:"location,omitempty"`
}

// PackageInfo describes the parcel as declared to the carrier.
type PackageInfo struct {
	Weight  string `json:"weight"`
	Pieces  string `json:"pieces"`
	Service string `json:"service"`
}

// Result is the response envelope of a tracking lookup.
type Result struct {
	Success bool            `json:"success"`
	Data    *TrackingRecord `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// eventLayouts are the timestamp formats seen in carrier payloads.
var eventLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
}

// ParseEventTime parses a carrier timestamp. Zone-less values are read as UTC.
func ParseEventTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortEventsNewestFirst orders events by date descending. Events with
// unparseable dates go last, keeping their relative order.
func SortEventsNewestFirst(events []TrackingEvent) {
	type keyed struct {
		event TrackingEvent
		at    time.Time
		ok    bool
	}

	tmp := make([]keyed, len(events))
	for i, e := range events {
		at, ok := ParseEventTime(e.Date)
		tmp[i] = keyed{event: e, at: at, ok: ok}
	}

	slices.SortStableFunc(tmp, func(a, b keyed) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.at.Compare(a.at)
	})

	for i := range tmp {
		events[i] = tmp[i].event
	}
}
