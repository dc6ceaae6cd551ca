package ingest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"coopsense.io/poultry-telemetry-service/pkg/db"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"
)

func setupTelemetry() *telemetry.Telemetry {
	telemetryObj := &telemetry.Telemetry{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	telemetryObj.WithServices(telemetry.ServiceOpts{
		Persister:  telemetryObj.GetIPersister(),
		Houses:     telemetryObj.GetIHouses(),
		Thresholds: telemetryObj.GetIThresholds(),
		Evaluator:  telemetryObj.GetIEvaluator(),
		Alerts:     telemetryObj.GetIAlerts(),
	})
	return telemetryObj
}

func ptrOf[T any](v T) *T {
	return &v
}

func seedIngestHouse(t *testing.T, telemetryObj *telemetry.Telemetry) (houseID, deviceIdentifier string) {
	t.Helper()

	farmID := uuid.NewString()
	houseID = uuid.NewString()
	deviceIdentifier = "ctrl-" + uuid.NewString()[:8]

	var err error
	err = telemetryObj.Db.Conn.Create(&models.Farm{ID: farmID, Name: "Sunrise Farm"}).Error
	require.NoError(t, err)
	err = telemetryObj.Db.Conn.Create(&models.House{
		ID:               houseID,
		FarmID:           farmID,
		Name:             "House 1",
		DeviceIdentifier: deviceIdentifier,
		Status:           "active",
	}).Error
	require.NoError(t, err)

	return houseID, deviceIdentifier
}

func seedBandedPolicy(t *testing.T, telemetryObj *telemetry.Telemetry, evType string) {
	t.Helper()

	var err error
	err = telemetryObj.Db.Conn.Create(&models.ThresholdPolicy{
		EventType:   evType,
		AgeMinDays:  0,
		AgeMaxDays:  21,
		WarningMax:  ptrOf(85.0),
		CriticalMax: ptrOf(95.0),
		DisplayName: "Temperature",
		Unit:        "°F",
	}).Error
	require.NoError(t, err)
	err = telemetryObj.Db.Conn.Create(&models.ThresholdPolicy{
		EventType:   evType,
		AgeMinDays:  22,
		AgeMaxDays:  42,
		WarningMax:  ptrOf(90.0),
		CriticalMax: ptrOf(100.0),
		DisplayName: "Temperature",
		Unit:        "°F",
	}).Error
	require.NoError(t, err)
}
