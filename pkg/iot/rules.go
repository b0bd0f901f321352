package iot

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

const (
	BatteryLowThreshold      = 20
	CPUOverloadThreshold     = 90.0
	MemoryOverloadThreshold  = 90.0
	HighTemperatureThreshold = 75.0
)

// ComponentChange is one stored component whose status the snapshot
// changes. ID is the row to rewrite; From is kept for logging.
type ComponentChange struct {
	ID   uint
	Type string
	From models.ComponentStatus
	To   models.ComponentStatus
}

// Evaluation is everything one snapshot does to a device.
type Evaluation struct {
	// Device carries the new battery, connectivity, operational status and
	// resource readings. Its Components reflect ComponentChanges.
	Device models.Device
	// ComponentChanges lists only components whose status differs, in
	// snapshot order.
	ComponentChanges []ComponentChange
	// Alerts are ready to insert, in rule order, all stamped with the same
	// time.
	Alerts []models.Alert
}

// EvaluateStatus diffs snapshot against the stored device (components
// preloaded in id order) without touching storage. Rules run in a fixed
// order: components, battery, connectivity, operational status, resources.
func EvaluateStatus(device models.Device, snapshot *models.Snapshot, now time.Time) (*Evaluation, error) {
	components := slices.Clone(device.Components)
	device.Components = components

	eval := &Evaluation{}
	serial := device.SerialNumber
	raise := func(alertType models.AlertType, format string, args ...any) {
		eval.Alerts = append(eval.Alerts, models.Alert{
			DeviceSerialNumber: serial,
			Message:            fmt.Sprintf(format, args...),
			Type:               alertType,
			Date:               now,
		})
	}

	for _, reading := range snapshot.Components {
		idx := slices.IndexFunc(components, func(c models.Component) bool { return c.Type == reading.Type })
		if idx < 0 {
			return nil, notFoundf("Component '%s' not found for device %d", reading.Type, serial)
		}

		component := &components[idx]
		if component.Status == reading.Status {
			continue
		}

		eval.ComponentChanges = append(eval.ComponentChanges, ComponentChange{
			ID:   component.ID,
			Type: component.Type,
			From: component.Status,
			To:   reading.Status,
		})
		component.Status = reading.Status

		switch reading.Status {
		case models.ComponentStatusError:
			raise(models.AlertTypeComponentError,
				"Attention: Component '%s' of device %d encountered an error.", reading.Type, serial)
		case models.ComponentStatusOutOfOrder:
			raise(models.AlertTypeComponentOutOfOrder,
				"Attention: Component '%s' of device %d is out of order.", reading.Type, serial)
		}
	}

	if device.BatteryLevel != snapshot.BatteryLevel {
		if snapshot.BatteryLevel < BatteryLowThreshold {
			raise(models.AlertTypeBatteryLow,
				"Attention: Device %d battery level is below %d%%. Current level: %d%%",
				serial, BatteryLowThreshold, snapshot.BatteryLevel)
		}
		device.BatteryLevel = snapshot.BatteryLevel
	}

	if device.Status != snapshot.Status {
		if device.Status == models.ConnectivityActive && snapshot.Status == models.ConnectivityInactive {
			raise(models.AlertTypeConnectionLost, "Attention: Device %d lost connection", serial)
		}
		device.Status = snapshot.Status
	}

	if device.OperationalStatus != snapshot.OperationalStatus {
		if snapshot.OperationalStatus == models.OperationalStatusMaintenance {
			raise(models.AlertTypeEnMaintenance, "Device %d is under maintenance.", serial)
		}
		device.OperationalStatus = snapshot.OperationalStatus
	}

	device.MemoryUsage = snapshot.MemoryUsage
	device.CPUUsage = snapshot.CPUUsage
	device.Temperature = snapshot.Temperature

	if snapshot.CPUUsage > CPUOverloadThreshold {
		raise(models.AlertTypeSystemOverload,
			"Attention: Device %d CPU usage is critically high at %s%%", serial, formatReading(snapshot.CPUUsage))
	}
	if snapshot.MemoryUsage > MemoryOverloadThreshold {
		raise(models.AlertTypeMemoryOverload,
			"Attention: Device %d memory usage is critically high at %s%%", serial, formatReading(snapshot.MemoryUsage))
	}
	if snapshot.Temperature > HighTemperatureThreshold {
		raise(models.AlertTypeHighTemperature,
			"Attention: Device %d temperature is critically high at %s°C", serial, formatReading(snapshot.Temperature))
	}

	eval.Device = device
	return eval, nil
}

// formatReading always keeps one decimal place, 95 prints as "95.0".
func formatReading(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
