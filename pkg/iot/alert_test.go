package iot

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
	_ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
)

func TestCreateAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)

	alert := &models.Alert{
		DeviceSerialNumber: device.SerialNumber,
		Message:            "manual check",
		Type:               models.AlertTypeHighTemperature,
	}
	require.NoError(t, iotObj.Alert.CreateAlert(ctx, alert))
	assert.NotZero(t, alert.ID)
	assert.False(t, alert.Date.IsZero())

	err := iotObj.Alert.CreateAlert(ctx, &models.Alert{
		DeviceSerialNumber: newSerialNumber(),
		Message:            "orphan",
		Type:               models.AlertTypeBatteryLow,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetDeviceAlerts_NewestFirst(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for idx, alertType := range []models.AlertType{models.AlertTypeBatteryLow, models.AlertTypeConnectionLost, models.AlertTypeSystemOverload} {
		require.NoError(t, iotObj.Alert.CreateAlert(ctx, &models.Alert{
			DeviceSerialNumber: device.SerialNumber,
			Message:            string(alertType),
			Type:               alertType,
			Date:               base.Add(time.Duration(idx) * time.Hour),
		}))
	}

	alerts, err := iotObj.Alert.GetDeviceAlerts(ctx, device.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, []models.AlertType{
		models.AlertTypeSystemOverload,
		models.AlertTypeConnectionLost,
		models.AlertTypeBatteryLow,
	}, alertTypes(alerts))

	_, err = iotObj.Alert.GetDeviceAlerts(ctx, newSerialNumber())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	for range 3 {
		require.NoError(t, iotObj.Alert.CreateAlert(ctx, &models.Alert{
			DeviceSerialNumber: device.SerialNumber,
			Message:            "hot",
			Type:               models.AlertTypeHighTemperature,
		}))
	}

	alerts, err := iotObj.Alert.ListAlerts(ctx, models.AlertFilter{Limit: 2, Type: models.AlertTypeHighTemperature})
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	for _, a := range alerts {
		assert.Equal(t, models.AlertTypeHighTemperature, a.Type)
	}
	assert.False(t, alerts[0].Date.Before(alerts[1].Date))

	alerts, err = iotObj.Alert.ListAlerts(ctx, models.AlertFilter{})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(alerts), models.DefaultPageLimit)
}

func TestDeleteAlert(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	alert := &models.Alert{DeviceSerialNumber: device.SerialNumber, Message: "low", Type: models.AlertTypeBatteryLow}
	require.NoError(t, iotObj.Alert.CreateAlert(ctx, alert))

	require.NoError(t, iotObj.Alert.DeleteAlert(ctx, alert.ID))

	err := iotObj.Alert.DeleteAlert(ctx, alert.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "Alert not found")

	logs := ParseLogs(buf)
	var deleted map[string]any
	for _, l := range logs {
		entry := l.(map[string]any)
		if entry["msg"] == "Alert deleted" {
			deleted = entry
		}
	}
	require.NotNil(t, deleted)
	assert.Equal(t, common.LoggerNameIOTCore, deleted["logger"])
	assert.Equal(t, common.LoggerCategoryIOTAlert, deleted[common.LoggerFieldIOTCategory])
	assert.Equal(t, "low", deleted["alert"].(map[string]any)["message"])
}
