package iot

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

var statusUpdateSchema = z.Struct(z.Shape{
	"SerialNumber":      z.Int().GT(0).Required(),
	"OperationalStatus": z.String().Required(),
	"Status":            z.String().Required(),
})

var batteryLevelSchema = z.Int().GTE(0).LTE(100)

// ParseStatusUpdate validates a decoded payload and turns its enum strings
// into canonical values. Every transport goes through here before ingestion.
func ParseStatusUpdate(update *models.StatusUpdate) (*models.Snapshot, error) {
	if update == nil {
		return nil, invalidf("validation error: empty status payload")
	}

	if errs := statusUpdateSchema.Validate(update); errs != nil {
		return nil, invalidf("validation error: %v", errs)
	}
	if update.BatteryLevel == nil {
		return nil, invalidf("validation error: battery_level is required")
	}
	if errs := batteryLevelSchema.Validate(update.BatteryLevel); errs != nil {
		return nil, invalidf("validation error: battery_level: %v", errs)
	}
	if update.Components == nil {
		return nil, invalidf("validation error: components is required")
	}

	snapshot := &models.Snapshot{
		SerialNumber: update.SerialNumber,
		BatteryLevel: *update.BatteryLevel,
		MemoryUsage:  update.MemoryUsage,
		CPUUsage:     update.CPUUsage,
		Temperature:  update.Temperature,
		Components:   make([]models.ComponentReading, 0, len(update.Components)),
	}

	var err error
	if snapshot.OperationalStatus, err = models.ParseOperationalStatus(update.OperationalStatus); err != nil {
		return nil, invalidf("validation error: operational_status: %v", err)
	}
	if snapshot.Status, err = models.ParseConnectivityStatus(update.Status); err != nil {
		return nil, invalidf("validation error: status: %v", err)
	}

	for idx, c := range update.Components {
		if c.Type == "" {
			return nil, invalidf("validation error: components[%d].type is required", idx)
		}
		status, err := models.ParseComponentStatus(c.Status)
		if err != nil {
			return nil, invalidf("validation error: components[%d].status: %v", idx, err)
		}
		snapshot.Components = append(snapshot.Components, models.ComponentReading{Type: c.Type, Status: status})
	}

	return snapshot, nil
}

func (i *IOT) statusLogger(serialNumber int) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameIOTCore,
		zap.String(common.LoggerFieldIOTCategory, common.LoggerCategoryIOTStatus),
		zap.Int(common.LoggerFieldDeviceSerialNumber, serialNumber),
	)
}

// ingestStatus loads the device, evaluates the snapshot and commits every
// resulting mutation in one transaction. Subscribers are notified afterwards
// by the broadcast worker, off the caller's path.
func (i *IOT) ingestStatus(ctx context.Context, snapshot *models.Snapshot) (int, error) {
	logger := i.statusLogger(snapshot.SerialNumber)

	logger.Info("Received status for device", zap.Reflect("snapshot", snapshot))

	var eval *Evaluation
	err := i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var device models.Device
		err := tx.
			Preload("Components", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			First(&device, "serial_number = ?", snapshot.SerialNumber).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundf("Device not found")
		}
		if err != nil {
			return err
		}

		if eval, err = EvaluateStatus(device, snapshot, i.now()); err != nil {
			return err
		}

		for _, change := range eval.ComponentChanges {
			if err := tx.Model(&models.Component{}).
				Where("id = ?", change.ID).
				Update("status", change.To).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Device{}).
			Where("serial_number = ?", device.SerialNumber).
			Updates(map[string]any{
				"battery_level":      eval.Device.BatteryLevel,
				"status":             eval.Device.Status,
				"operational_status": eval.Device.OperationalStatus,
				"memory_usage":       eval.Device.MemoryUsage,
				"cpu_usage":          eval.Device.CPUUsage,
				"temperature":        eval.Device.Temperature,
			}).Error; err != nil {
			return err
		}

		if len(eval.Alerts) > 0 {
			if err := tx.Create(&eval.Alerts).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("Status rejected", zap.Error(err))
		return 0, err
	}

	for _, alert := range eval.Alerts {
		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}
	logger.Info("Status applied",
		zap.Int("components_changed", len(eval.ComponentChanges)),
		zap.Int("alerts_created", len(eval.Alerts)),
	)

	i.broadcast(logger, snapshot.StatusUpdate())

	return len(eval.Alerts), nil
}

// broadcastQueueSize bounds the updates waiting for the broadcast worker.
// Beyond it new updates are dropped, ingestion never waits on subscribers.
const broadcastQueueSize = 256

type pendingBroadcast struct {
	broadcaster Broadcaster
	logger      *zap.Logger
	update      *models.StatusUpdate
}

// broadcast queues the update for a single worker, so subscribers see
// snapshots in the order they were committed.
func (i *IOT) broadcast(logger *zap.Logger, update *models.StatusUpdate) {
	if i.Broadcaster == nil {
		return
	}

	i.broadcastOnce.Do(func() {
		i.broadcasts = make(chan pendingBroadcast, broadcastQueueSize)
		go i.broadcastWorker()
	})

	select {
	case i.broadcasts <- pendingBroadcast{broadcaster: i.Broadcaster, logger: logger, update: update}:
	default:
		logger.Warn("Broadcast queue full, update dropped")
	}
}

func (i *IOT) broadcastWorker() {
	for p := range i.broadcasts {
		deliverBroadcast(p)
	}
}

func deliverBroadcast(p pendingBroadcast) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Broadcast failed", zap.String("panic", fmt.Sprint(r)))
		}
	}()

	delivered := p.broadcaster.Broadcast(context.Background(), p.update)
	p.logger.Debug("Status broadcast", zap.Int("delivered", delivered))
}

type IStatusImpl struct {
	iot *IOT
}

func (is *IStatusImpl) IngestStatus(ctx context.Context, snapshot *models.Snapshot) (int, error) {
	return is.iot.ingestStatus(ctx, snapshot)
}

func (i *IOT) GetIStatus() IStatus {
	return &IStatusImpl{iot: i}
}
