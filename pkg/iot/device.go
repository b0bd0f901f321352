package iot

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

func deviceLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTDevice),
	)
}

func findDevice(tx *gorm.DB, serialNumber int) (*models.Device, error) {
	var device models.Device
	err := tx.First(&device, "serial_number = ?", serialNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("Device not found")
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func defaultComponents(serialNumber int, components []models.Component) []models.Component {
	out := make([]models.Component, len(components))
	for idx, c := range components {
		out[idx] = models.Component{DeviceSerialNumber: serialNumber, Type: c.Type, Status: c.Status}
		if out[idx].Status == "" {
			out[idx].Status = models.ComponentStatusOK
		}
	}
	return out
}

func (i *IOT) createDevice(ctx context.Context, input *models.Device) error {
	logger := deviceLogger()

	return i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Device{}).
			Where("serial_number = ? OR mac_address = ?", input.SerialNumber, input.MacAddress).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return conflictf("Device with given serial number or MAC address already exists")
		}

		input.Components = defaultComponents(input.SerialNumber, input.Components)
		if input.CreationDate.IsZero() {
			input.CreationDate = i.now()
		}
		if err := tx.Create(input).Error; err != nil {
			return err
		}

		logger.Info("Device created", zap.Int(common.LoggerFieldDeviceSerialNumber, input.SerialNumber),
			zap.Int("components", len(input.Components)))
		return nil
	})
}

func (i *IOT) getDevice(ctx context.Context, serialNumber int) (*models.Device, error) {
	var device models.Device
	err := i.Db.Conn.WithContext(ctx).
		Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&device, "serial_number = ?", serialNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundf("Device not found")
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (i *IOT) listDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultPageLimit
	}

	query := i.Db.Conn.WithContext(ctx).Model(&models.Device{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var devices []models.Device
	err := query.
		Order("serial_number").
		Offset(max(filter.Offset, 0)).
		Limit(limit).
		Find(&devices).Error
	return devices, err
}

// updateDevice overwrites the editable fields. The component set is replaced
// only when input.Components is non-nil.
func (i *IOT) updateDevice(ctx context.Context, serialNumber int, input *models.Device) (*models.Device, *models.Device, error) {
	logger := deviceLogger()

	var previous *models.Device
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if previous, err = findDevice(tx, serialNumber); err != nil {
			return err
		}

		if input.MacAddress != previous.MacAddress {
			var taken int64
			if err := tx.Model(&models.Device{}).
				Where("mac_address = ? AND serial_number <> ?", input.MacAddress, serialNumber).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return conflictf("Device with given serial number or MAC address already exists")
			}
		}

		if err := tx.Model(&models.Device{}).
			Where("serial_number = ?", serialNumber).
			Updates(map[string]any{
				"type":               input.Type,
				"software_version":   input.SoftwareVersion,
				"image":              input.Image,
				"initial_state":      input.InitialState,
				"mac_address":        input.MacAddress,
				"operational_status": input.OperationalStatus,
				"status":             input.Status,
				"battery_level":      input.BatteryLevel,
				"user_id":            input.UserID,
			}).Error; err != nil {
			return err
		}

		if input.Components != nil {
			if err := tx.Where("device_serial_number = ?", serialNumber).Delete(&models.Component{}).Error; err != nil {
				return err
			}
			components := defaultComponents(serialNumber, input.Components)
			if len(components) > 0 {
				if err := tx.Create(&components).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := i.getDevice(ctx, serialNumber)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Device updated", zap.Int(common.LoggerFieldDeviceSerialNumber, serialNumber),
		zap.Reflect("previous", previous), zap.Reflect("updated", updated))

	return previous, updated, nil
}

// deleteDevice removes the device with its components, alerts, positions,
// interventions and their failures.
func (i *IOT) deleteDevice(ctx context.Context, serialNumber int) error {
	logger := deviceLogger()

	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findDevice(tx, serialNumber); err != nil {
			return err
		}

		interventions := tx.Model(&models.Intervention{}).Select("id").Where("device_serial_number = ?", serialNumber)
		if err := tx.Where("intervention_id IN (?)", interventions).Delete(&models.Failure{}).Error; err != nil {
			return err
		}

		for _, child := range []any{&models.Intervention{}, &models.Position{}, &models.Component{}, &models.Alert{}} {
			if err := tx.Where("device_serial_number = ?", serialNumber).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Device{}, "serial_number = ?", serialNumber).Error
	})
	if err == nil {
		logger.Info("Device deleted", zap.Int(common.LoggerFieldDeviceSerialNumber, serialNumber))
	}
	return err
}

func (i *IOT) toggleDeviceStatus(ctx context.Context, serialNumber int) (*models.Device, error) {
	var device *models.Device
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if device, err = findDevice(tx, serialNumber); err != nil {
			return err
		}

		if device.Status == models.ConnectivityActive {
			device.Status = models.ConnectivityInactive
		} else {
			device.Status = models.ConnectivityActive
		}

		return tx.Model(&models.Device{}).
			Where("serial_number = ?", serialNumber).
			Update("status", device.Status).Error
	})
	if err != nil {
		return nil, err
	}

	deviceLogger().Info("Device status toggled",
		zap.Int(common.LoggerFieldDeviceSerialNumber, serialNumber),
		zap.String("status", string(device.Status)))
	return device, nil
}

func (i *IOT) getDeviceComponents(ctx context.Context, serialNumber int) ([]models.Component, error) {
	conn := i.Db.Conn.WithContext(ctx)
	if _, err := findDevice(conn, serialNumber); err != nil {
		return nil, err
	}

	var components []models.Component
	err := conn.Where("device_serial_number = ?", serialNumber).Order("id").Find(&components).Error
	return components, err
}

type IDeviceImpl struct {
	iot *IOT
}

func (id *IDeviceImpl) CreateDevice(ctx context.Context, input *models.Device) error {
	return id.iot.createDevice(ctx, input)
}

func (id *IDeviceImpl) GetDevice(ctx context.Context, serialNumber int) (*models.Device, error) {
	return id.iot.getDevice(ctx, serialNumber)
}

func (id *IDeviceImpl) ListDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
	return id.iot.listDevices(ctx, filter)
}

func (id *IDeviceImpl) UpdateDevice(ctx context.Context, serialNumber int, input *models.Device) (*models.Device, *models.Device, error) {
	return id.iot.updateDevice(ctx, serialNumber, input)
}

func (id *IDeviceImpl) DeleteDevice(ctx context.Context, serialNumber int) error {
	return id.iot.deleteDevice(ctx, serialNumber)
}

func (id *IDeviceImpl) ToggleDeviceStatus(ctx context.Context, serialNumber int) (*models.Device, error) {
	return id.iot.toggleDeviceStatus(ctx, serialNumber)
}

func (id *IDeviceImpl) GetDeviceComponents(ctx context.Context, serialNumber int) ([]models.Component, error) {
	return id.iot.getDeviceComponents(ctx, serialNumber)
}

func (i *IOT) GetIDevice() IDevice {
	return &IDeviceImpl{iot: i}
}
