package telemetry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

// findHouse tolerates both identifier shapes devices send: the device-facing
// identifier is tried first, then the string is interpreted as the canonical
// house UUID.
func (t *Telemetry) findHouse(identifier string) (*models.House, error) {
	var house models.House
	err := t.Db.Conn.First(&house, "device_identifier = ?", identifier).Error
	if err == nil {
		return &house, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, parseErr := uuid.Parse(identifier); parseErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrHouseNotFound, identifier)
	}

	err = t.Db.Conn.First(&house, "id = ?", identifier).Error
	if err == nil {
		return &house, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrHouseNotFound, identifier)
	}
	return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func (t *Telemetry) resolveHouse(identifier string) (*models.HouseRef, error) {
	house, err := t.findHouse(identifier)
	if err != nil {
		return nil, err
	}

	ref := &models.HouseRef{
		ID:          house.ID,
		Name:        house.Name,
		BirdAgeDays: models.DefaultBirdAgeDays,
	}
	if house.BirdAgeDays != nil {
		ref.BirdAgeDays = *house.BirdAgeDays
	}
	return ref, nil
}

func (t *Telemetry) updateHouseLiveState(identifier string, state *models.HouseLiveState) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryHouse),
	)

	house, err := t.findHouse(identifier)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if state.BirdCount != nil {
		updates["bird_count"] = *state.BirdCount
	}
	if state.BirdAgeDays != nil {
		updates["bird_age_days"] = *state.BirdAgeDays
	}
	if state.FlockID != nil {
		updates["flock_id"] = *state.FlockID
	}
	if len(updates) == 0 {
		return nil
	}

	// Last write wins, no optimistic concurrency.
	err = t.Db.Conn.Model(&models.House{}).Where("id = ?", house.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	logger.Info("Updated house live state", zap.String("house_id", house.ID), zap.Reflect("state", state))
	return nil
}

func (t *Telemetry) getHouse(identifier string) (*models.House, error) {
	return t.findHouse(identifier)
}

func (t *Telemetry) getFarm(farmID string) (*models.Farm, error) {
	var farm models.Farm
	err := t.Db.Conn.First(&farm, "id = ?", farmID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrFarmNotFound, farmID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return &farm, nil
}

func (t *Telemetry) listFarms() ([]models.Farm, error) {
	var farms []models.Farm
	err := t.Db.Conn.Order("name").Find(&farms).Error
	return farms, err
}

func (t *Telemetry) listFarmHouses(farmID string) ([]models.House, error) {
	var houses []models.House
	err := t.Db.Conn.Where("farm_id = ?", farmID).Order("name").Find(&houses).Error
	return houses, err
}

type IHousesImpl struct {
	telemetry *Telemetry
}

func (ih *IHousesImpl) ResolveHouse(identifier string) (*models.HouseRef, error) {
	return ih.telemetry.resolveHouse(identifier)
}

func (ih *IHousesImpl) UpdateHouseLiveState(identifier string, state *models.HouseLiveState) error {
	return ih.telemetry.updateHouseLiveState(identifier, state)
}

func (ih *IHousesImpl) GetHouse(identifier string) (*models.House, error) {
	return ih.telemetry.getHouse(identifier)
}

func (ih *IHousesImpl) GetFarm(farmID string) (*models.Farm, error) {
	return ih.telemetry.getFarm(farmID)
}

func (ih *IHousesImpl) ListFarms() ([]models.Farm, error) {
	return ih.telemetry.listFarms()
}

func (ih *IHousesImpl) ListFarmHouses(farmID string) ([]models.House, error) {
	return ih.telemetry.listFarmHouses(farmID)
}

func (t *Telemetry) GetIHouses() IHouses {
	return &IHousesImpl{telemetry: t}
}
