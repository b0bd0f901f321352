package db

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
	_ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"devices", "components", "alerts", "positions", "interventions", "failures"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())

	orphan := models.Alert{
		DeviceSerialNumber: int(uuid.New().ID() >> 1),
		Message:            "orphan",
		Type:               models.AlertTypeBatteryLow,
		Date:               time.Now(),
	}
	require.Error(t, instance.Conn.Create(&orphan).Error, "FOREIGN KEY constraint failed")
}

func TestCascadeDelete(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	serial := int(uuid.New().ID() >> 1)

	device := models.Device{
		SerialNumber:      serial,
		Type:              models.DeviceTypeSmartBelt,
		SoftwareVersion:   models.SoftwareVersion1_0,
		Image:             "belt.png",
		InitialState:      models.InitialStateNew,
		MacAddress:        uuid.NewString(),
		OperationalStatus: models.OperationalStatusInService,
		Status:            models.ConnectivityActive,
		BatteryLevel:      80,
		CreationDate:      time.Now(),
		Components:        []models.Component{{Type: "camera"}},
	}
	require.NoError(t, instance.Conn.Create(&device).Error)

	var stored models.Component
	require.NoError(t, instance.Conn.First(&stored, "device_serial_number = ?", serial).Error)
	assert.Equal(t, models.ComponentStatusOK, stored.Status)

	require.NoError(t, instance.Conn.Delete(&models.Device{}, "serial_number = ?", serial).Error)

	var count int64
	instance.Conn.Model(&models.Component{}).Where("device_serial_number = ?", serial).Count(&count)
	assert.Zero(t, count)
}
