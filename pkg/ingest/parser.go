package ingest

import (
	"encoding/json"
	"fmt"
	"time"

	z "github.com/Oudwins/zog"

	"coopsense.io/poultry-telemetry-service/pkg/models"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"
)

// Envelope is the wire shape of one ingested message: a batch of sensor
// events from one controller, optionally carrying the house's current
// lifecycle figures.
type Envelope struct {
	Events []EventEntry     `json:"events"`
	House  *HouseStateEntry `json:"house,omitempty"`
}

type EventEntry struct {
	HouseID      string    `json:"houseId"`
	EventType    string    `json:"eventType"`
	Timestamp    time.Time `json:"timestamp"`
	Value        *float64  `json:"value,omitempty"`
	StringValue  *string   `json:"stringValue,omitempty"`
	BoolValue    *bool     `json:"boolValue,omitempty"`
	DeviceID     string    `json:"deviceId,omitempty"`
	QualityScore *int      `json:"qualityScore,omitempty"`
}

type HouseStateEntry struct {
	HouseID     string  `json:"houseId"`
	BirdCount   *int    `json:"birdCount,omitempty"`
	BirdAgeDays *int    `json:"birdAgeDays,omitempty"`
	FlockID     *string `json:"flockId,omitempty"`
}

var eventEntrySchema = z.Struct(z.Shape{
	// Timestamp and the reading arms are validated separately
	"HouseID":   z.String().Min(1).Required(),
	"EventType": z.String().Min(1).Required(),
})

var houseStateSchema = z.Struct(z.Shape{
	"HouseID": z.String().Min(1).Required(),
})

// normalizeMessage gets the raw delivery item into JSON bytes. Upstream
// hands over either the JSON text itself or an already-decoded structure.
func normalizeMessage(raw any) ([]byte, error) {
	switch m := raw.(type) {
	case []byte:
		return m, nil
	case string:
		return []byte(m), nil
	default:
		b, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("%w: unsupported payload: %v", telemetry.ErrMalformedMessage, err)
		}
		return b, nil
	}
}

// readingFor picks the union arm declared by the kind registry. Event types
// the registry does not know fall back to whichever arm the entry carries.
func readingFor(kinds map[string]models.EventKind, entry *EventEntry) (models.Reading, error) {
	kind, known := kinds[entry.EventType]
	if !known {
		switch {
		case entry.Value != nil:
			return models.NumericReading(*entry.Value), nil
		case entry.StringValue != nil:
			return models.TextReading(*entry.StringValue), nil
		case entry.BoolValue != nil:
			return models.FlagReading(*entry.BoolValue), nil
		default:
			return models.Reading{}, fmt.Errorf("%w: event %s carries no value", telemetry.ErrMalformedMessage, entry.EventType)
		}
	}

	switch kind {
	case models.EventKindNumeric:
		if entry.Value == nil {
			return models.Reading{}, fmt.Errorf("%w: numeric event %s without value", telemetry.ErrMalformedMessage, entry.EventType)
		}
		return models.NumericReading(*entry.Value), nil
	case models.EventKindText:
		if entry.StringValue == nil {
			return models.Reading{}, fmt.Errorf("%w: text event %s without stringValue", telemetry.ErrMalformedMessage, entry.EventType)
		}
		return models.TextReading(*entry.StringValue), nil
	case models.EventKindFlag:
		if entry.BoolValue == nil {
			return models.Reading{}, fmt.Errorf("%w: flag event %s without boolValue", telemetry.ErrMalformedMessage, entry.EventType)
		}
		return models.FlagReading(*entry.BoolValue), nil
	default:
		return models.Reading{}, fmt.Errorf("%w: event %s has unknown kind %q", telemetry.ErrMalformedMessage, entry.EventType, kind)
	}
}

// ParseMessage turns one raw delivery item into sensor events plus the
// optional house live-state block. A message is parsed whole: any invalid
// entry makes the entire message malformed.
func ParseMessage(kinds map[string]models.EventKind, raw any) ([]models.SensorEvent, *HouseStateEntry, error) {
	data, err := normalizeMessage(raw)
	if err != nil {
		return nil, nil, err
	}

	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", telemetry.ErrMalformedMessage, err)
	}

	events := make([]models.SensorEvent, 0, len(envelope.Events))
	for i := range envelope.Events {
		entry := &envelope.Events[i]

		if err := eventEntrySchema.Validate(entry); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", telemetry.ErrMalformedMessage, err)
		}
		if entry.Timestamp.IsZero() {
			return nil, nil, fmt.Errorf("%w: event %s without timestamp", telemetry.ErrMalformedMessage, entry.EventType)
		}

		reading, err := readingFor(kinds, entry)
		if err != nil {
			return nil, nil, err
		}

		events = append(events, models.SensorEvent{
			HouseID:      entry.HouseID,
			EventType:    entry.EventType,
			Timestamp:    entry.Timestamp,
			Reading:      reading,
			DeviceID:     entry.DeviceID,
			QualityScore: entry.QualityScore,
		})
	}

	if envelope.House != nil {
		if err := houseStateSchema.Validate(envelope.House); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", telemetry.ErrMalformedMessage, err)
		}
	}

	return events, envelope.House, nil
}
