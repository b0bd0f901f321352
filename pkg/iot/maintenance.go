package iot

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

func maintenanceLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTMaintenance),
	)
}

func preloadFailures(db *gorm.DB) *gorm.DB {
	return db.Preload("Failures", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

func findIntervention(tx *gorm.DB, id uint) (*models.Intervention, error) {
	var intervention models.Intervention
	err := preloadFailures(tx).First(&intervention, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("Intervention not found")
	}
	if err != nil {
		return nil, err
	}
	return &intervention, nil
}

func findFailure(tx *gorm.DB, id uint) (*models.Failure, error) {
	var failure models.Failure
	err := tx.First(&failure, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("Failure not found")
	}
	if err != nil {
		return nil, err
	}
	return &failure, nil
}

func (i *IOT) today() time.Time {
	return i.now().Truncate(24 * time.Hour)
}

// createIntervention stores the intervention and its nested failures. The
// date defaults to today.
func (i *IOT) createIntervention(ctx context.Context, input *models.Intervention) error {
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findDevice(tx, input.DeviceSerialNumber); err != nil {
			return err
		}
		if input.Date.IsZero() {
			input.Date = i.today()
		}
		for idx := range input.Failures {
			input.Failures[idx].ID = 0
		}
		return tx.Create(input).Error
	})
	if err != nil {
		return err
	}

	maintenanceLogger().Info("Intervention created",
		zap.Int(common.LoggerFieldDeviceSerialNumber, input.DeviceSerialNumber),
		zap.Reflect("intervention", input))
	return nil
}

func (i *IOT) listInterventions(ctx context.Context) ([]models.Intervention, error) {
	var interventions []models.Intervention
	err := preloadFailures(i.Db.Conn.WithContext(ctx)).Order("id").Find(&interventions).Error
	return interventions, err
}

func (i *IOT) getIntervention(ctx context.Context, id uint) (*models.Intervention, error) {
	return findIntervention(i.Db.Conn.WithContext(ctx), id)
}

// updateIntervention overwrites the scalar fields, failures are managed
// through the failure operations.
func (i *IOT) updateIntervention(ctx context.Context, id uint, input *models.Intervention) (*models.Intervention, error) {
	var updated *models.Intervention
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findIntervention(tx, id)
		if err != nil {
			return err
		}
		if input.DeviceSerialNumber != current.DeviceSerialNumber {
			if _, err := findDevice(tx, input.DeviceSerialNumber); err != nil {
				return err
			}
		}

		date := input.Date
		if date.IsZero() {
			date = current.Date
		}

		if err := tx.Model(&models.Intervention{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"device_serial_number": input.DeviceSerialNumber,
				"type":                 input.Type,
				"date":                 date,
				"note":                 input.Note,
				"status":               input.Status,
				"estimated_duration":   input.EstimatedDuration,
			}).Error; err != nil {
			return err
		}

		updated, err = findIntervention(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	maintenanceLogger().Info("Intervention updated", zap.Reflect("intervention", updated))
	return updated, nil
}

func (i *IOT) deleteIntervention(ctx context.Context, id uint) (*models.Intervention, error) {
	var deleted *models.Intervention
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if deleted, err = findIntervention(tx, id); err != nil {
			return err
		}
		if err := tx.Where("intervention_id = ?", id).Delete(&models.Failure{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Intervention{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	maintenanceLogger().Info("Intervention deleted", zap.Reflect("intervention", deleted))
	return deleted, nil
}

func (i *IOT) createFailure(ctx context.Context, input *models.Failure) error {
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findIntervention(tx, input.InterventionID); err != nil {
			return err
		}
		return tx.Create(input).Error
	})
	if err != nil {
		return err
	}

	maintenanceLogger().Info("Failure created", zap.Reflect("failure", input))
	return nil
}

func (i *IOT) listFailures(ctx context.Context) ([]models.Failure, error) {
	var failures []models.Failure
	err := i.Db.Conn.WithContext(ctx).Order("id").Find(&failures).Error
	return failures, err
}

func (i *IOT) getFailure(ctx context.Context, id uint) (*models.Failure, error) {
	return findFailure(i.Db.Conn.WithContext(ctx), id)
}

func (i *IOT) updateFailure(ctx context.Context, id uint, input *models.Failure) (*models.Failure, error) {
	var updated *models.Failure
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if updated, err = findFailure(tx, id); err != nil {
			return err
		}

		updated.FailureType = input.FailureType
		updated.Status = input.Status
		return tx.Model(&models.Failure{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"failure_type": updated.FailureType,
				"status":       updated.Status,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	maintenanceLogger().Info("Failure updated", zap.Reflect("failure", updated))
	return updated, nil
}

func (i *IOT) deleteFailure(ctx context.Context, id uint) (*models.Failure, error) {
	conn := i.Db.Conn.WithContext(ctx)
	failure, err := findFailure(conn, id)
	if err != nil {
		return nil, err
	}
	if err := conn.Delete(&models.Failure{}, id).Error; err != nil {
		return nil, err
	}

	maintenanceLogger().Info("Failure deleted", zap.Reflect("failure", failure))
	return failure, nil
}

type IMaintenanceImpl struct {
	iot *IOT
}

func (im *IMaintenanceImpl) CreateIntervention(ctx context.Context, input *models.Intervention) error {
	return im.iot.createIntervention(ctx, input)
}

func (im *IMaintenanceImpl) ListInterventions(ctx context.Context) ([]models.Intervention, error) {
	return im.iot.listInterventions(ctx)
}

func (im *IMaintenanceImpl) GetIntervention(ctx context.Context, id uint) (*models.Intervention, error) {
	return im.iot.getIntervention(ctx, id)
}

func (im *IMaintenanceImpl) UpdateIntervention(ctx context.Context, id uint, input *models.Intervention) (*models.Intervention, error) {
	return im.iot.updateIntervention(ctx, id, input)
}

func (im *IMaintenanceImpl) DeleteIntervention(ctx context.Context, id uint) (*models.Intervention, error) {
	return im.iot.deleteIntervention(ctx, id)
}

func (im *IMaintenanceImpl) CreateFailure(ctx context.Context, input *models.Failure) error {
	return im.iot.createFailure(ctx, input)
}

func (im *IMaintenanceImpl) ListFailures(ctx context.Context) ([]models.Failure, error) {
	return im.iot.listFailures(ctx)
}

func (im *IMaintenanceImpl) GetFailure(ctx context.Context, id uint) (*models.Failure, error) {
	return im.iot.getFailure(ctx, id)
}

func (im *IMaintenanceImpl) UpdateFailure(ctx context.Context, id uint, input *models.Failure) (*models.Failure, error) {
	return im.iot.updateFailure(ctx, id, input)
}

func (im *IMaintenanceImpl) DeleteFailure(ctx context.Context, id uint) (*models.Failure, error) {
	return im.iot.deleteFailure(ctx, id)
}

func (i *IOT) GetIMaintenance() IMaintenance {
	return &IMaintenanceImpl{iot: i}
}
