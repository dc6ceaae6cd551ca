package telemetry

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

// resolvePolicy returns the policy whose age band contains birdAgeDays.
// Reference data is assumed well-formed: bands per event type neither
// overlap nor leave gaps inside the monitored age domain.
func (t *Telemetry) resolvePolicy(eventType string, birdAgeDays int) (*models.ThresholdPolicy, error) {
	var policy models.ThresholdPolicy
	err := t.Db.Conn.
		Where("event_type = ? AND age_min_days <= ? AND age_max_days >= ?", eventType, birdAgeDays, birdAgeDays).
		First(&policy).Error
	if err == nil {
		return &policy, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s at %d days", ErrPolicyNotFound, eventType, birdAgeDays)
	}
	return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// eventKinds loads the event-type→kind reference table as a lookup map for
// the ingest parser.
func (t *Telemetry) eventKinds() (map[string]models.EventKind, error) {
	var defs []models.EventTypeDef
	if err := t.Db.Conn.Find(&defs).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	kinds := common.Reducer(defs, func(acc map[string]models.EventKind, def models.EventTypeDef) map[string]models.EventKind {
		acc[def.Code] = def.Kind
		return acc
	}, make(map[string]models.EventKind, len(defs)))

	return kinds, nil
}

type IThresholdsImpl struct {
	telemetry *Telemetry
}

func (it *IThresholdsImpl) ResolvePolicy(eventType string, birdAgeDays int) (*models.ThresholdPolicy, error) {
	return it.telemetry.resolvePolicy(eventType, birdAgeDays)
}

func (it *IThresholdsImpl) EventKinds() (map[string]models.EventKind, error) {
	return it.telemetry.eventKinds()
}

func (t *Telemetry) GetIThresholds() IThresholds {
	return &IThresholdsImpl{telemetry: t}
}
