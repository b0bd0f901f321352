package iot

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

func alertLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTAlert),
	)
}

// createAlert is the administrative insert. Generated alerts go through
// ingestStatus instead.
func (i *IOT) createAlert(ctx context.Context, alert *models.Alert) error {
	return i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findDevice(tx, alert.DeviceSerialNumber); err != nil {
			return err
		}
		if alert.Date.IsZero() {
			alert.Date = i.now()
		}
		if err := tx.Create(alert).Error; err != nil {
			return err
		}

		alertLogger().Info("Alert saved", zap.Reflect("alert", alert))
		return nil
	})
}

func (i *IOT) getDeviceAlerts(ctx context.Context, serialNumber int) ([]models.Alert, error) {
	conn := i.Db.Conn.WithContext(ctx)
	if _, err := findDevice(conn, serialNumber); err != nil {
		return nil, err
	}

	var alerts []models.Alert
	err := conn.
		Where("device_serial_number = ?", serialNumber).
		Order("date desc, id desc").
		Find(&alerts).Error
	return alerts, err
}

func (i *IOT) listAlerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultPageLimit
	}

	query := i.Db.Conn.WithContext(ctx).Model(&models.Alert{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var alerts []models.Alert
	err := query.
		Order("date desc, id desc").
		Offset(max(filter.Offset, 0)).
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

func (i *IOT) deleteAlert(ctx context.Context, id uint) error {
	var alert models.Alert
	conn := i.Db.Conn.WithContext(ctx)
	err := conn.First(&alert, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundf("Alert not found")
	}
	if err != nil {
		return err
	}

	if err := conn.Delete(&alert).Error; err != nil {
		return err
	}

	alertLogger().Info("Alert deleted", zap.Reflect("alert", alert))
	return nil
}

type IAlertImpl struct {
	iot *IOT
}

func (ia *IAlertImpl) CreateAlert(ctx context.Context, alert *models.Alert) error {
	return ia.iot.createAlert(ctx, alert)
}

func (ia *IAlertImpl) GetDeviceAlerts(ctx context.Context, serialNumber int) ([]models.Alert, error) {
	return ia.iot.getDeviceAlerts(ctx, serialNumber)
}

func (ia *IAlertImpl) ListAlerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	return ia.iot.listAlerts(ctx, filter)
}

func (ia *IAlertImpl) DeleteAlert(ctx context.Context, id uint) error {
	return ia.iot.deleteAlert(ctx, id)
}

func (i *IOT) GetIAlert() IAlert {
	return &IAlertImpl{iot: i}
}
