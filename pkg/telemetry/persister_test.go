package telemetry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	_ "coopsense.io/poultry-telemetry-service/pkg/testing"
)

func TestPersistEventBatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	houseID, deviceIdentifier := seedHouse(t, telemetryObj, "Sunrise Farm", "House 3")

	now := time.Now().Truncate(time.Second)
	events := []models.SensorEvent{
		{HouseID: deviceIdentifier, EventType: "temperature", Timestamp: now, Reading: models.NumericReading(72.5), DeviceID: "probe-1"},
		{HouseID: deviceIdentifier, EventType: "humidity", Timestamp: now, Reading: models.NumericReading(55), DeviceID: "probe-1"},
		{HouseID: houseID, EventType: "fan_status", Timestamp: now, Reading: models.FlagReading(true), DeviceID: "fan-2"},
	}

	inserted, err := telemetryObj.Persister.PersistEventBatch(events)
	assert.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// Both identifier shapes land under the same house on readback.
	saved, err := telemetryObj.Persister.GetHouseEvents(deviceIdentifier, 0)
	assert.NoError(t, err)
	assert.Len(t, saved, 3)
}

func TestPersistEventBatchDropsUnknownHouses(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	_, deviceIdentifier := seedHouse(t, telemetryObj, "Hillcrest Farm", "House 4")
	strayIdentifier := "ctrl-" + uuid.NewString()[:8]

	now := time.Now()
	events := []models.SensorEvent{
		{HouseID: deviceIdentifier, EventType: "temperature", Timestamp: now, Reading: models.NumericReading(71)},
		{HouseID: strayIdentifier, EventType: "temperature", Timestamp: now, Reading: models.NumericReading(68)},
		{HouseID: deviceIdentifier, EventType: "co2", Timestamp: now, Reading: models.NumericReading(900)},
		{HouseID: strayIdentifier, EventType: "co2", Timestamp: now, Reading: models.NumericReading(1200)},
	}

	// Unknown houses lose their events; the rest of the batch still lands.
	inserted, err := telemetryObj.Persister.PersistEventBatch(events)
	assert.NoError(t, err)
	assert.Equal(t, 2, inserted)

	saved, err := telemetryObj.Persister.GetHouseEvents(deviceIdentifier, 0)
	assert.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestPersistEventBatch_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	inserted, err := telemetryObj.Persister.PersistEventBatch(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)

	// A batch referencing only unknown houses inserts nothing and is not
	// an error.
	inserted, err = telemetryObj.Persister.PersistEventBatch([]models.SensorEvent{
		{HouseID: "ctrl-" + uuid.NewString()[:8], EventType: "temperature", Timestamp: time.Now(), Reading: models.NumericReading(70)},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestPersistEventBatchRedelivery(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	_, deviceIdentifier := seedHouse(t, telemetryObj, "Meadow Farm", "House 5")

	events := []models.SensorEvent{
		{HouseID: deviceIdentifier, EventType: "temperature", Timestamp: time.Now(), Reading: models.NumericReading(73)},
	}

	// Delivery is at-least-once upstream; a redelivered batch inserts
	// again rather than being deduplicated.
	for i := 0; i < 2; i++ {
		inserted, err := telemetryObj.Persister.PersistEventBatch(events)
		assert.NoError(t, err)
		assert.Equal(t, 1, inserted)
	}

	saved, err := telemetryObj.Persister.GetHouseEvents(deviceIdentifier, 0)
	assert.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestGetHouseEvents(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	_, deviceIdentifier := seedHouse(t, telemetryObj, "Valley Farm", "House 6")

	base := time.Now().Truncate(time.Second)
	var events []models.SensorEvent
	for i := 0; i < 5; i++ {
		events = append(events, models.SensorEvent{
			HouseID:   deviceIdentifier,
			EventType: "temperature",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Reading:   models.NumericReading(70 + float64(i)),
		})
	}

	inserted, err := telemetryObj.Persister.PersistEventBatch(events)
	assert.NoError(t, err)
	assert.Equal(t, 5, inserted)

	// Newest first, capped by limit.
	saved, err := telemetryObj.Persister.GetHouseEvents(deviceIdentifier, 2)
	assert.NoError(t, err)
	require.Len(t, saved, 2)
	value, ok := saved[0].Reading.Numeric()
	require.True(t, ok)
	assert.Equal(t, 74.0, value)

	_, err = telemetryObj.Persister.GetHouseEvents(uuid.NewString(), 0)
	require.ErrorIs(t, err, ErrHouseNotFound)
}

func TestGetHouseEventSeries(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, telemetryObj, _ := GetMockTelemetryWithMemorySqliteDialector(t, mockServiceFlags{})
	defer ctrl.Finish()

	houseID, deviceIdentifier := seedHouse(t, telemetryObj, "Orchard Farm", "House 7")

	tempType := "temperature-" + uuid.NewString()[:8]
	co2Type := "co2-" + uuid.NewString()[:8]

	base := time.Now().Truncate(time.Second)
	events := []models.SensorEvent{
		{HouseID: deviceIdentifier, EventType: tempType, Timestamp: base, Reading: models.NumericReading(71)},
		{HouseID: houseID, EventType: tempType, Timestamp: base.Add(time.Minute), Reading: models.NumericReading(72)},
		{HouseID: deviceIdentifier, EventType: co2Type, Timestamp: base, Reading: models.NumericReading(1500)},
	}

	inserted, err := telemetryObj.Persister.PersistEventBatch(events)
	assert.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// One metric only, across both identifier shapes, newest first.
	series, err := telemetryObj.Persister.GetHouseEventSeries(deviceIdentifier, tempType, 0)
	assert.NoError(t, err)
	require.Len(t, series, 2)
	value, ok := series[0].Reading.Numeric()
	require.True(t, ok)
	assert.Equal(t, 72.0, value)

	series, err = telemetryObj.Persister.GetHouseEventSeries(houseID, tempType, 1)
	assert.NoError(t, err)
	assert.Len(t, series, 1)

	_, err = telemetryObj.Persister.GetHouseEventSeries(uuid.NewString(), tempType, 0)
	require.ErrorIs(t, err, ErrHouseNotFound)
}
