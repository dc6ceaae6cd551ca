package ingest

import (
	"errors"

	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"
)

// Coordinator drives one delivery through the pipeline: parse, persist,
// apply live state, evaluate. It owns no retry; the ingress redelivers
// whatever it does not ack.
type Coordinator struct {
	Telemetry *telemetry.Telemetry
}

// HandleDelivery processes a batch of raw messages independently of each
// other. Malformed messages are logged and skipped; unknown houses shed
// their items at the owning stage. Only store-level failures return an
// error and abort the remainder of the delivery.
func (co *Coordinator) HandleDelivery(messages []any) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIngest,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCoordinator),
	)

	if len(messages) == 0 {
		return 0, nil
	}

	kinds, err := co.Telemetry.Thresholds.EventKinds()
	if err != nil {
		return 0, err
	}

	logger.Info("Handling delivery", zap.Int("messages", len(messages)))

	total := 0
	for _, raw := range messages {
		events, houseState, err := ParseMessage(kinds, raw)
		if err != nil {
			logger.Warn("Skipping malformed message", zap.Error(err))
			continue
		}

		inserted, err := co.ProcessEnvelope(events, houseState)
		total += inserted
		if err != nil {
			return total, err
		}

		logger.Info("Processed message", zap.Int("events", len(events)), zap.Int("inserted", inserted))
	}

	logger.Info("Processed delivery", zap.Int("messages", len(messages)), zap.Int("inserted", total))
	return total, nil
}

// ProcessEnvelope runs one parsed envelope through the pipeline stages in
// order: persist first, then live state, then evaluation, so the envelope's
// own bird age already steers its events' threshold bands.
func (co *Coordinator) ProcessEnvelope(events []models.SensorEvent, houseState *HouseStateEntry) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIngest,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCoordinator),
	)

	inserted, err := co.Telemetry.Persister.PersistEventBatch(events)
	if err != nil {
		return 0, err
	}

	if houseState != nil {
		err := co.Telemetry.Houses.UpdateHouseLiveState(houseState.HouseID, &models.HouseLiveState{
			BirdCount:   houseState.BirdCount,
			BirdAgeDays: houseState.BirdAgeDays,
			FlockID:     houseState.FlockID,
		})
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			logger.Warn("Skipping live state for unknown house", zap.String("house_id", houseState.HouseID))
		} else if err != nil {
			return inserted, err
		}
	}

	if err := co.Telemetry.Evaluator.EvaluateEventBatch(events); err != nil {
		return inserted, err
	}

	return inserted, nil
}
