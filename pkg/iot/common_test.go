package iot

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/db"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot/mocks"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

func GetMockIOTWithMemorySqliteDialector(t *testing.T, useMockIDevice, useMockIAlert bool) (
	*gomock.Controller,
	*IOT,
	*mocks.MockIDevice,
	*mocks.MockIAlert,
) {
	ctrl := gomock.NewController(t)

	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	iotInstance := (&IOT{Db: *dbInstance}).WithDefaultServices()

	if useMockIDevice {
		iotInstance.WithServices(ServiceOpts{Device: mockIDevice})
	}
	if useMockIAlert {
		iotInstance.WithServices(ServiceOpts{Alert: mockIAlert})
	}

	return ctrl, iotInstance, mockIDevice, mockIAlert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func intPtr(v int) *int { return &v }

func newSerialNumber() int {
	return int(uuid.New().ID() >> 1)
}

// seedDevice stores an active, in service device at 50% battery with one ok
// component per given type.
func seedDevice(t *testing.T, iotObj *IOT, componentTypes ...string) *models.Device {
	t.Helper()

	components := make([]models.Component, len(componentTypes))
	for idx, ct := range componentTypes {
		components[idx] = models.Component{Type: ct}
	}

	device := &models.Device{
		SerialNumber:      newSerialNumber(),
		Type:              models.DeviceTypeSmartBelt,
		SoftwareVersion:   models.SoftwareVersion1_0,
		Image:             "belt.png",
		InitialState:      models.InitialStateNew,
		MacAddress:        uuid.NewString(),
		OperationalStatus: models.OperationalStatusInService,
		Status:            models.ConnectivityActive,
		BatteryLevel:      50,
		Temperature:       models.DefaultTemperature,
		Components:        components,
	}
	require.NoError(t, iotObj.GetIDevice().CreateDevice(context.Background(), device))
	return device
}

// snapshotOf returns a snapshot that matches the stored device state, so
// only the fields a test changes produce alerts.
func snapshotOf(device *models.Device) *models.Snapshot {
	snapshot := &models.Snapshot{
		SerialNumber:      device.SerialNumber,
		OperationalStatus: device.OperationalStatus,
		Status:            device.Status,
		BatteryLevel:      device.BatteryLevel,
		MemoryUsage:       device.MemoryUsage,
		CPUUsage:          device.CPUUsage,
		Temperature:       device.Temperature,
	}
	for _, c := range device.Components {
		snapshot.Components = append(snapshot.Components, models.ComponentReading{Type: c.Type, Status: c.Status})
	}
	return snapshot
}

type recordingBroadcaster struct {
	received chan any
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{received: make(chan any, 16)}
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg any) int {
	b.received <- msg
	return 1
}

// slowFirstBroadcaster stalls on its first delivery and records battery levels
// in delivery order.
type slowFirstBroadcaster struct {
	mu        sync.Mutex
	calls     int
	delivered []int
	received  chan struct{}
}

func (b *slowFirstBroadcaster) Broadcast(_ context.Context, msg any) int {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()

	if first {
		time.Sleep(100 * time.Millisecond)
	}

	b.mu.Lock()
	b.delivered = append(b.delivered, *msg.(*models.StatusUpdate).BatteryLevel)
	b.mu.Unlock()
	b.received <- struct{}{}
	return 1
}

type panickingBroadcaster struct {
	done chan struct{}
}

func (b *panickingBroadcaster) Broadcast(context.Context, any) int {
	defer close(b.done)
	panic("subscriber registry exploded")
}
