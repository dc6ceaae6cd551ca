package telemetry

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

// violation is the outcome of checking one reading against one policy.
type violation struct {
	severity  models.AlertSeverity
	qualifier string
	bound     float64
}

// checkBounds applies the bounds in strict priority order: critical max,
// critical min, warning max, warning min. The first bound crossed decides
// the severity; a nil bound is never crossed, so a reading can never be
// both critical and warning.
func checkBounds(policy *models.ThresholdPolicy, value float64) (violation, bool) {
	if policy.CriticalMax != nil && value > *policy.CriticalMax {
		return violation{models.AlertSeverityCritical, "critically high", *policy.CriticalMax}, true
	}
	if policy.CriticalMin != nil && value < *policy.CriticalMin {
		return violation{models.AlertSeverityCritical, "critically low", *policy.CriticalMin}, true
	}
	if policy.WarningMax != nil && value > *policy.WarningMax {
		return violation{models.AlertSeverityWarning, "high", *policy.WarningMax}, true
	}
	if policy.WarningMin != nil && value < *policy.WarningMin {
		return violation{models.AlertSeverityWarning, "low", *policy.WarningMin}, true
	}
	return violation{}, false
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (t *Telemetry) evaluateEventBatch(events []models.SensorEvent) error {
	if t.Alerts == nil {
		return fmt.Errorf("alert service not available")
	}

	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEvaluator),
	)

	now := time.Now()

	// Group events by house identifier, preserving first-seen house order.
	order := make([]string, 0, len(events))
	groups := make(map[string][]models.SensorEvent, len(events))
	for _, ev := range events {
		if _, seen := groups[ev.HouseID]; !seen {
			order = append(order, ev.HouseID)
		}
		groups[ev.HouseID] = append(groups[ev.HouseID], ev)
	}

	for _, houseID := range order {
		house, err := t.resolveHouse(houseID)
		if err != nil {
			// Unknown devices are expected during rollout and decommission.
			// Nothing in this group may abort the sibling houses.
			if errors.Is(err, ErrHouseNotFound) {
				logger.Warn("Skipping events for unknown house", zap.String("house_id", houseID))
			} else {
				logger.Error("Failed to resolve house", zap.String("house_id", houseID), zap.Error(err))
			}
			continue
		}

		for _, ev := range groups[houseID] {
			value, ok := ev.Reading.Numeric()
			if !ok {
				// Text and flag readings are not threshold-evaluated.
				continue
			}

			policy, err := t.resolvePolicy(ev.EventType, house.BirdAgeDays)
			if err != nil {
				if !errors.Is(err, ErrPolicyNotFound) {
					logger.Error("Failed to resolve threshold policy",
						zap.String("house_id", house.ID),
						zap.String("event_type", ev.EventType),
						zap.Error(err))
				}
				// No policy means the metric is not monitored at this age.
				continue
			}

			v, crossed := checkBounds(policy, value)
			if !crossed {
				continue
			}

			alert := models.Alert{
				HouseID:        house.ID,
				Timestamp:      now,
				Type:           models.AlertTypeThreshold,
				Severity:       v.severity,
				Metric:         ev.EventType,
				ObservedValue:  value,
				ThresholdValue: v.bound,
				Message: fmt.Sprintf("%s is %s: %s%s (threshold: %s%s)",
					policy.DisplayName, v.qualifier,
					formatValue(value), policy.Unit,
					formatValue(v.bound), policy.Unit),
				Active: true,
			}

			logger.Info("Alert found", zap.Reflect("alert", alert))

			if err := t.Alerts.EmitAlert(&alert); err != nil {
				logger.Error("Failed to store alert",
					zap.String("house_id", house.ID),
					zap.String("metric", ev.EventType),
					zap.Error(err))
				continue
			}
		}
	}

	return nil
}

type IEvaluatorImpl struct {
	telemetry *Telemetry
}

func (ie *IEvaluatorImpl) EvaluateEventBatch(events []models.SensorEvent) error {
	return ie.telemetry.evaluateEventBatch(events)
}

func (t *Telemetry) GetIEvaluator() IEvaluator {
	return &IEvaluatorImpl{telemetry: t}
}
