package telemetry

import (
	"coopsense.io/poultry-telemetry-service/pkg/db"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

type IPersister interface {
	PersistEventBatch(events []models.SensorEvent) (int, error)
	GetHouseEvents(identifier string, limit int) ([]models.SensorEvent, error)
	GetHouseEventSeries(identifier string, eventType string, limit int) ([]models.SensorEvent, error)
}

type IHouses interface {
	ResolveHouse(identifier string) (*models.HouseRef, error)
	UpdateHouseLiveState(identifier string, state *models.HouseLiveState) error
	GetHouse(identifier string) (*models.House, error)
	GetFarm(farmID string) (*models.Farm, error)
	ListFarms() ([]models.Farm, error)
	ListFarmHouses(farmID string) ([]models.House, error)
}

type IThresholds interface {
	ResolvePolicy(eventType string, birdAgeDays int) (*models.ThresholdPolicy, error)
	EventKinds() (map[string]models.EventKind, error)
}

type IEvaluator interface {
	EvaluateEventBatch(events []models.SensorEvent) error
}

type IAlerts interface {
	EmitAlert(alert *models.Alert) error
	GetHouseAlerts(identifier string) ([]models.Alert, error)
}

type Telemetry struct {
	Db         db.DB
	Persister  IPersister
	Houses     IHouses
	Thresholds IThresholds
	Evaluator  IEvaluator
	Alerts     IAlerts
}

type ServiceOpts struct {
	Persister  IPersister
	Houses     IHouses
	Thresholds IThresholds
	Evaluator  IEvaluator
	Alerts     IAlerts
}

func (t *Telemetry) WithServices(opts ServiceOpts) *Telemetry {
	if opts.Persister != nil {
		t.Persister = opts.Persister
	}
	if opts.Houses != nil {
		t.Houses = opts.Houses
	}
	if opts.Thresholds != nil {
		t.Thresholds = opts.Thresholds
	}
	if opts.Evaluator != nil {
		t.Evaluator = opts.Evaluator
	}
	if opts.Alerts != nil {
		t.Alerts = opts.Alerts
	}
	return t
}
