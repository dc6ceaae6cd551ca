package models

import "time"

type EventKind string

const (
	EventKindNumeric EventKind = "numeric"
	EventKindText    EventKind = "text"
	EventKindFlag    EventKind = "flag"
)

type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

const AlertTypeThreshold string = "threshold"

// DefaultBirdAgeDays anchors threshold lookups to a mid-cycle baseline for
// houses whose lifecycle data has no bird age yet.
const DefaultBirdAgeDays int = 21

// Reading is the payload of one sensor event. Exactly one arm carries the
// meaningful value; which arm is declared by the event type's kind
// (see EventTypeDef).
type Reading struct {
	Kind   EventKind `gorm:"type:varchar(10)"`
	Number *float64  `gorm:"column:value"`
	Text   *string   `gorm:"column:string_value"`
	Flag   *bool     `gorm:"column:bool_value"`
}

func NumericReading(v float64) Reading {
	return Reading{Kind: EventKindNumeric, Number: &v}
}

func TextReading(s string) Reading {
	return Reading{Kind: EventKindText, Text: &s}
}

func FlagReading(b bool) Reading {
	return Reading{Kind: EventKindFlag, Flag: &b}
}

// Numeric returns the numeric arm of the reading, if present. Only numeric
// readings are threshold-evaluated.
func (r Reading) Numeric() (float64, bool) {
	if r.Number == nil {
		return 0, false
	}
	return *r.Number, true
}

// SensorEvent is one telemetry reading, insert-only. HouseID is stored as
// received from the device, which may be the house's device identifier or
// its canonical UUID.
type SensorEvent struct {
	ID           uint   `gorm:"primaryKey"`
	HouseID      string `gorm:"index"`
	EventType    string `gorm:"index"`
	Timestamp    time.Time
	Reading      Reading `gorm:"embedded"`
	DeviceID     string
	QualityScore *int
}

type Farm struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string
	Latitude  float64
	Longitude float64

	Houses []House `gorm:"foreignKey:FarmID;references:ID"`
}

type House struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	FarmID           string `gorm:"index"`
	Name             string
	DeviceIdentifier string `gorm:"uniqueIndex"`
	BirdCount        *int
	BirdAgeDays      *int
	FlockID          *string
	Status           string `gorm:"type:varchar(20)"`
}

// HouseRef is what identifier resolution hands to callers: the canonical id
// plus the fields threshold evaluation needs.
type HouseRef struct {
	ID          string
	Name        string
	BirdAgeDays int
}

// HouseLiveState is the last-write-wins mutable slice of a house carried by
// an ingestion envelope. Nil fields leave the stored value untouched.
type HouseLiveState struct {
	BirdCount   *int
	BirdAgeDays *int
	FlockID     *string
}

// EventTypeDef maps an event-type code to the reading arm that carries its
// payload. Seeded reference data, read-only for the pipeline.
type EventTypeDef struct {
	Code string    `gorm:"primaryKey"`
	Kind EventKind `gorm:"type:varchar(10)"`
}

// ThresholdPolicy is one bird-age band of bounds for an event type. Bounds
// are independently nullable; a nil bound means no limit in that direction.
type ThresholdPolicy struct {
	ID          uint   `gorm:"primaryKey"`
	EventType   string `gorm:"index"`
	AgeMinDays  int
	AgeMaxDays  int
	WarningMin  *float64
	WarningMax  *float64
	CriticalMin *float64
	CriticalMax *float64
	DisplayName string
	Unit        string
}

type Alert struct {
	ID             uint   `gorm:"primaryKey"`
	HouseID        string `gorm:"index"`
	Timestamp      time.Time
	Type           string        `gorm:"type:varchar(20)"`
	Severity       AlertSeverity `gorm:"type:varchar(10);check:severity IN ('warning','critical')"`
	Metric         string
	ObservedValue  float64
	ThresholdValue float64
	Message        string
	Active         bool
}
