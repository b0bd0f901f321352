package iot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
	_ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
)

func TestCreateDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj, "camera", "vibreur")
	assert.False(t, device.CreationDate.IsZero())

	stored, err := iotObj.Device.GetDevice(ctx, device.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, device.MacAddress, stored.MacAddress)
	require.Len(t, stored.Components, 2)
	for _, c := range stored.Components {
		assert.Equal(t, models.ComponentStatusOK, c.Status)
		assert.Equal(t, device.SerialNumber, c.DeviceSerialNumber)
	}
}

func TestCreateDevice_Conflict(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)

	sameSerial := *device
	sameSerial.MacAddress = uuid.NewString()
	err := iotObj.Device.CreateDevice(ctx, &sameSerial)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.EqualError(t, err, "Device with given serial number or MAC address already exists")

	sameMac := *device
	sameMac.SerialNumber = newSerialNumber()
	err = iotObj.Device.CreateDevice(ctx, &sameMac)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = iotObj.Device.GetDevice(ctx, sameMac.SerialNumber)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	for range 3 {
		seedDevice(t, iotObj)
	}

	devices, err := iotObj.Device.ListDevices(ctx, models.DeviceFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	devices, err = iotObj.Device.ListDevices(ctx, models.DeviceFilter{})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(devices), models.DefaultPageLimit)
	assert.NotEmpty(t, devices)

	devices, err = iotObj.Device.ListDevices(ctx, models.DeviceFilter{Limit: 100, Type: models.DeviceTypeLidarGlasses})
	require.NoError(t, err)
	for _, d := range devices {
		assert.Equal(t, models.DeviceTypeLidarGlasses, d.Type)
	}

	first, err := iotObj.Device.ListDevices(ctx, models.DeviceFilter{Limit: 1})
	require.NoError(t, err)
	second, err := iotObj.Device.ListDevices(ctx, models.DeviceFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Less(t, first[0].SerialNumber, second[0].SerialNumber)
}

func TestUpdateDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj, "camera")

	userID := 7
	input := *device
	input.Type = models.DeviceTypeLidarGlasses
	input.BatteryLevel = 90
	input.UserID = &userID
	input.Components = nil

	previous, updated, err := iotObj.Device.UpdateDevice(ctx, device.SerialNumber, &input)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceTypeSmartBelt, previous.Type)
	assert.Equal(t, models.DeviceTypeLidarGlasses, updated.Type)
	assert.Equal(t, 90, updated.BatteryLevel)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, 7, *updated.UserID)
	// components untouched when none are given
	require.Len(t, updated.Components, 1)
	assert.Equal(t, "camera", updated.Components[0].Type)

	input.Components = []models.Component{{Type: "lidar"}, {Type: "haut-parleur", Status: models.ComponentStatusError}}
	_, updated, err = iotObj.Device.UpdateDevice(ctx, device.SerialNumber, &input)
	require.NoError(t, err)
	require.Len(t, updated.Components, 2)
	assert.Equal(t, "lidar", updated.Components[0].Type)
	assert.Equal(t, models.ComponentStatusOK, updated.Components[0].Status)
	assert.Equal(t, models.ComponentStatusError, updated.Components[1].Status)
}

func TestUpdateDevice_Errors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	other := seedDevice(t, iotObj)

	input := *device
	_, _, err := iotObj.Device.UpdateDevice(ctx, newSerialNumber(), &input)
	assert.True(t, errors.Is(err, ErrNotFound))

	input.MacAddress = other.MacAddress
	_, _, err = iotObj.Device.UpdateDevice(ctx, device.SerialNumber, &input)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestDeleteDevice_Cascade(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj, "camera")

	snapshot := snapshotOf(device)
	snapshot.BatteryLevel = 5
	_, err := iotObj.Status.IngestStatus(ctx, snapshot)
	require.NoError(t, err)

	intervention := &models.Intervention{
		DeviceSerialNumber: device.SerialNumber,
		Type:               models.InterventionTypeCurative,
		Status:             models.InterventionStatusPending,
		Failures:           []models.Failure{{FailureType: "batterie", Status: models.FailureStatusUnresolved}},
	}
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))
	require.NoError(t, iotObj.Db.Conn.Create(&models.Position{
		DeviceSerialNumber: device.SerialNumber,
		Latitude:           36.7,
		Longitude:          3.05,
	}).Error)

	require.NoError(t, iotObj.Device.DeleteDevice(ctx, device.SerialNumber))

	_, err = iotObj.Device.GetDevice(ctx, device.SerialNumber)
	assert.True(t, errors.Is(err, ErrNotFound))

	for _, model := range []any{&models.Component{}, &models.Alert{}, &models.Position{}, &models.Intervention{}} {
		var count int64
		require.NoError(t, iotObj.Db.Conn.Model(model).Where("device_serial_number = ?", device.SerialNumber).Count(&count).Error)
		assert.Zero(t, count)
	}

	_, err = iotObj.Maintenance.GetFailure(ctx, intervention.Failures[0].ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = iotObj.Device.DeleteDevice(ctx, device.SerialNumber)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestToggleDeviceStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)

	toggled, err := iotObj.Device.ToggleDeviceStatus(ctx, device.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectivityInactive, toggled.Status)

	toggled, err = iotObj.Device.ToggleDeviceStatus(ctx, device.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectivityActive, toggled.Status)

	_, err = iotObj.Device.ToggleDeviceStatus(ctx, newSerialNumber())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetDeviceComponents(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj, "camera", "camera")

	components, err := iotObj.Device.GetDeviceComponents(ctx, device.SerialNumber)
	require.NoError(t, err)
	assert.Len(t, components, 2)

	bare := seedDevice(t, iotObj)
	components, err = iotObj.Device.GetDeviceComponents(ctx, bare.SerialNumber)
	require.NoError(t, err)
	assert.Empty(t, components)

	_, err = iotObj.Device.GetDeviceComponents(ctx, newSerialNumber())
	assert.True(t, errors.Is(err, ErrNotFound))
}
