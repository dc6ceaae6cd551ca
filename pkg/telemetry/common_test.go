package telemetry

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coopsense.io/poultry-telemetry-service/pkg/db"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry/mocks"
)

type mockServiceFlags struct {
	Persister  bool
	Houses     bool
	Thresholds bool
	Evaluator  bool
	Alerts     bool
}

type telemetryMocks struct {
	Persister  *mocks.MockIPersister
	Houses     *mocks.MockIHouses
	Thresholds *mocks.MockIThresholds
	Evaluator  *mocks.MockIEvaluator
	Alerts     *mocks.MockIAlerts
}

func GetMockTelemetryWithMemorySqliteDialector(t *testing.T, use mockServiceFlags) (
	*gomock.Controller,
	*Telemetry,
	*telemetryMocks,
) {
	ctrl := gomock.NewController(t)

	tm := &telemetryMocks{
		Persister:  mocks.NewMockIPersister(ctrl),
		Houses:     mocks.NewMockIHouses(ctrl),
		Thresholds: mocks.NewMockIThresholds(ctrl),
		Evaluator:  mocks.NewMockIEvaluator(ctrl),
		Alerts:     mocks.NewMockIAlerts(ctrl),
	}

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	telemetryInstance := (&Telemetry{Db: *dbInstance})

	persisterService := telemetryInstance.GetIPersister()
	if use.Persister {
		persisterService = tm.Persister
	}

	housesService := telemetryInstance.GetIHouses()
	if use.Houses {
		housesService = tm.Houses
	}

	thresholdsService := telemetryInstance.GetIThresholds()
	if use.Thresholds {
		thresholdsService = tm.Thresholds
	}

	evaluatorService := telemetryInstance.GetIEvaluator()
	if use.Evaluator {
		evaluatorService = tm.Evaluator
	}

	alertsService := telemetryInstance.GetIAlerts()
	if use.Alerts {
		alertsService = tm.Alerts
	}

	telemetryInstance.WithServices(ServiceOpts{
		Persister:  persisterService,
		Houses:     housesService,
		Thresholds: thresholdsService,
		Evaluator:  evaluatorService,
		Alerts:     alertsService,
	})

	return ctrl, telemetryInstance, tm
}

func ptrOf[T any](v T) *T {
	return &v
}

// seedHouse creates a farm with one house and returns the house's two
// identifier shapes. Names and ids are unique per call so tests stay
// independent on the shared in-memory store.
func seedHouse(t *testing.T, telemetryObj *Telemetry, farmName, houseName string) (houseID, deviceIdentifier string) {
	t.Helper()

	farmID := uuid.NewString()
	houseID = uuid.NewString()
	deviceIdentifier = "ctrl-" + uuid.NewString()[:8]

	var err error
	err = telemetryObj.Db.Conn.Create(&models.Farm{ID: farmID, Name: farmName}).Error
	require.NoError(t, err)
	err = telemetryObj.Db.Conn.Create(&models.House{
		ID:               houseID,
		FarmID:           farmID,
		Name:             houseName,
		DeviceIdentifier: deviceIdentifier,
		Status:           "active",
	}).Error
	require.NoError(t, err)

	return houseID, deviceIdentifier
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
