package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

func (t *Telemetry) persistEventBatch(events []models.SensorEvent) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPersister),
	)

	if len(events) == 0 {
		return 0, nil
	}

	// Resolve each distinct identifier once. Events referencing unknown
	// houses are dropped from the batch rather than failing it: orphan and
	// late-arriving device data is expected during rollout and decommission.
	known := map[string]bool{}
	for _, ev := range events {
		if _, seen := known[ev.HouseID]; seen {
			continue
		}
		_, err := t.resolveHouse(ev.HouseID)
		switch {
		case err == nil:
			known[ev.HouseID] = true
		case errors.Is(err, ErrHouseNotFound):
			known[ev.HouseID] = false
			logger.Warn("Dropping events for unknown house", zap.String("house_id", ev.HouseID))
		default:
			return 0, err
		}
	}

	insertable := common.Filterer(events, func(ev models.SensorEvent) bool {
		return known[ev.HouseID]
	})

	if len(insertable) == 0 {
		return 0, nil
	}

	// One bulk insert; the returned count is only reported after the rows
	// are durable. Redelivered duplicates insert again, there is no
	// uniqueness constraint across deliveries.
	if err := t.Db.Conn.Create(&insertable).Error; err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	logger.Info("Persisted sensor events",
		zap.Int("inserted", len(insertable)),
		zap.Int("received", len(events)))

	return len(insertable), nil
}

func (t *Telemetry) getHouseEvents(identifier string, limit int) ([]models.SensorEvent, error) {
	house, err := t.findHouse(identifier)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}

	// Events are stored under whichever identifier shape the device sent.
	var events []models.SensorEvent
	err = t.Db.Conn.
		Where("house_id IN ?", []string{house.DeviceIdentifier, house.ID}).
		Order("timestamp desc").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (t *Telemetry) getHouseEventSeries(identifier string, eventType string, limit int) ([]models.SensorEvent, error) {
	house, err := t.findHouse(identifier)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 100
	}

	var events []models.SensorEvent
	err = t.Db.Conn.
		Where("house_id IN ? AND event_type = ?", []string{house.DeviceIdentifier, house.ID}, eventType).
		Order("timestamp desc").
		Limit(limit).
		Find(&events).Error
	return events, err
}

type IPersisterImpl struct {
	telemetry *Telemetry
}

func (ip *IPersisterImpl) PersistEventBatch(events []models.SensorEvent) (int, error) {
	return ip.telemetry.persistEventBatch(events)
}

func (ip *IPersisterImpl) GetHouseEvents(identifier string, limit int) ([]models.SensorEvent, error) {
	return ip.telemetry.getHouseEvents(identifier, limit)
}

func (ip *IPersisterImpl) GetHouseEventSeries(identifier string, eventType string, limit int) ([]models.SensorEvent, error) {
	return ip.telemetry.getHouseEventSeries(identifier, eventType, limit)
}

func (t *Telemetry) GetIPersister() IPersister {
	return &IPersisterImpl{telemetry: t}
}
