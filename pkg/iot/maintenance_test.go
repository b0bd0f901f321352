package iot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
	_ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
)

func newIntervention(serialNumber int, failureTypes ...string) *models.Intervention {
	intervention := &models.Intervention{
		DeviceSerialNumber: serialNumber,
		Type:               models.InterventionTypePreventive,
		Status:             models.InterventionStatusPending,
	}
	for _, ft := range failureTypes {
		intervention.Failures = append(intervention.Failures, models.Failure{
			FailureType: ft,
			Status:      models.FailureStatusUnresolved,
		})
	}
	return intervention
}

func TestCreateIntervention(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	fixed := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	iotObj.Now = func() time.Time { return fixed }

	ctx := context.Background()
	device := seedDevice(t, iotObj)

	intervention := newIntervention(device.SerialNumber, "batterie", "capteur")
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))
	assert.NotZero(t, intervention.ID)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), intervention.Date)

	stored, err := iotObj.Maintenance.GetIntervention(ctx, intervention.ID)
	require.NoError(t, err)
	require.Len(t, stored.Failures, 2)
	assert.Equal(t, "batterie", stored.Failures[0].FailureType)
	assert.Equal(t, intervention.ID, stored.Failures[0].InterventionID)

	err = iotObj.Maintenance.CreateIntervention(ctx, newIntervention(newSerialNumber()))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "Device not found")
}

func TestListInterventions(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	intervention := newIntervention(device.SerialNumber, "écran")
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))

	interventions, err := iotObj.Maintenance.ListInterventions(ctx)
	require.NoError(t, err)

	var found *models.Intervention
	for idx := range interventions {
		if interventions[idx].ID == intervention.ID {
			found = &interventions[idx]
		}
	}
	require.NotNil(t, found)
	assert.Len(t, found.Failures, 1)
}

func TestUpdateIntervention(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	intervention := newIntervention(device.SerialNumber, "batterie")
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))

	note := "remplacement prévu"
	updated, err := iotObj.Maintenance.UpdateIntervention(ctx, intervention.ID, &models.Intervention{
		DeviceSerialNumber: device.SerialNumber,
		Type:               models.InterventionTypeCurative,
		Status:             models.InterventionStatusInProgress,
		Note:               &note,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InterventionTypeCurative, updated.Type)
	assert.Equal(t, models.InterventionStatusInProgress, updated.Status)
	require.NotNil(t, updated.Note)
	assert.Equal(t, note, *updated.Note)
	assert.True(t, intervention.Date.Equal(updated.Date))
	assert.Len(t, updated.Failures, 1)

	_, err = iotObj.Maintenance.UpdateIntervention(ctx, intervention.ID, newIntervention(newSerialNumber()))
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = iotObj.Maintenance.UpdateIntervention(ctx, 0, newIntervention(device.SerialNumber))
	assert.EqualError(t, err, "Intervention not found")
}

func TestDeleteIntervention_CascadesFailures(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	intervention := newIntervention(device.SerialNumber, "batterie", "vibreur")
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))

	deleted, err := iotObj.Maintenance.DeleteIntervention(ctx, intervention.ID)
	require.NoError(t, err)
	assert.Equal(t, intervention.ID, deleted.ID)
	assert.Len(t, deleted.Failures, 2)

	for _, f := range intervention.Failures {
		_, err := iotObj.Maintenance.GetFailure(ctx, f.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	}

	_, err = iotObj.Maintenance.DeleteIntervention(ctx, intervention.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFailureLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	device := seedDevice(t, iotObj)
	intervention := newIntervention(device.SerialNumber)
	require.NoError(t, iotObj.Maintenance.CreateIntervention(ctx, intervention))

	failure := &models.Failure{
		InterventionID: intervention.ID,
		FailureType:    "haut-parleur",
		Status:         models.FailureStatusUnresolved,
	}
	require.NoError(t, iotObj.Maintenance.CreateFailure(ctx, failure))
	assert.NotZero(t, failure.ID)

	failures, err := iotObj.Maintenance.ListFailures(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, failures)

	updated, err := iotObj.Maintenance.UpdateFailure(ctx, failure.ID, &models.Failure{
		FailureType: "haut-parleur gauche",
		Status:      models.FailureStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.FailureStatusResolved, updated.Status)
	assert.Equal(t, intervention.ID, updated.InterventionID)

	stored, err := iotObj.Maintenance.GetFailure(ctx, failure.ID)
	require.NoError(t, err)
	assert.Equal(t, "haut-parleur gauche", stored.FailureType)

	deleted, err := iotObj.Maintenance.DeleteFailure(ctx, failure.ID)
	require.NoError(t, err)
	assert.Equal(t, failure.ID, deleted.ID)

	_, err = iotObj.Maintenance.DeleteFailure(ctx, failure.ID)
	assert.EqualError(t, err, "Failure not found")

	err = iotObj.Maintenance.CreateFailure(ctx, &models.Failure{
		InterventionID: 0,
		FailureType:    "orphan",
		Status:         models.FailureStatusResolved,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}
