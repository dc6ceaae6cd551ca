package telemetry

import (
	"fmt"

	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

// emitAlert inserts the alert as a new active row. There is deliberately no
// search for an already-open alert on the same (house, metric): every
// violating reading is treated as a fresh signal.
func (t *Telemetry) emitAlert(alert *models.Alert) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	if err := t.Db.Conn.Create(alert).Error; err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return nil
}

func (t *Telemetry) getHouseAlerts(identifier string) ([]models.Alert, error) {
	house, err := t.findHouse(identifier)
	if err != nil {
		return nil, err
	}

	var alerts []models.Alert
	err = t.Db.Conn.
		Where("house_id = ?", house.ID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertsImpl struct {
	telemetry *Telemetry
}

func (ia *IAlertsImpl) EmitAlert(alert *models.Alert) error {
	return ia.telemetry.emitAlert(alert)
}

func (ia *IAlertsImpl) GetHouseAlerts(identifier string) ([]models.Alert, error) {
	return ia.telemetry.getHouseAlerts(identifier)
}

func (t *Telemetry) GetIAlerts() IAlerts {
	return &IAlertsImpl{telemetry: t}
}
