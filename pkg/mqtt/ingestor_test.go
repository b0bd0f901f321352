package mqtt

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/db"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
	_ "github.com/AbderraoufSelidja/Irchad-device-management/pkg/testing"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func newIngestor(limiter *iot.RateLimiterStore) *Ingestor {
	iotCore := (&iot.IOT{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}).WithDefaultServices()

	return &Ingestor{Iot: iotCore, RateLimiterStore: limiter, Topic: common.DefaultMqttTopic}
}

func seedDevice(t *testing.T, in *Ingestor) *models.Device {
	t.Helper()

	device := &models.Device{
		SerialNumber:      int(uuid.New().ID() >> 1),
		Type:              models.DeviceTypeSmartBelt,
		SoftwareVersion:   models.SoftwareVersion1_0,
		Image:             "belt.png",
		InitialState:      models.InitialStateNew,
		MacAddress:        uuid.NewString(),
		OperationalStatus: models.OperationalStatusInService,
		Status:            models.ConnectivityActive,
		BatteryLevel:      50,
		Temperature:       models.DefaultTemperature,
		Components:        []models.Component{{Type: "camera"}},
	}
	require.NoError(t, in.Iot.Device.CreateDevice(context.Background(), device))
	return device
}

func payload(serialNumber, batteryLevel int) []byte {
	return []byte(fmt.Sprintf(`{
		"serial_number": %d,
		"operational_status": "En Service",
		"status": "active",
		"battery_level": %d,
		"components": [{"type": "camera", "status": "ok"}]
	}`, serialNumber, batteryLevel))
}

func TestIngest(t *testing.T) {
	common.SetTestLoggerNop()

	in := newIngestor(nil)
	device := seedDevice(t, in)

	alertsCreated, err := in.Ingest(context.Background(), payload(device.SerialNumber, 12))
	require.NoError(t, err)
	assert.Equal(t, 1, alertsCreated)

	stored, err := in.Iot.Device.GetDevice(context.Background(), device.SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, 12, stored.BatteryLevel)
	assert.Equal(t, models.DefaultTemperature, stored.Temperature)

	// same snapshot again changes nothing
	alertsCreated, err = in.Ingest(context.Background(), payload(device.SerialNumber, 12))
	require.NoError(t, err)
	assert.Equal(t, 0, alertsCreated)
}

func TestIngest_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	in := newIngestor(nil)
	device := seedDevice(t, in)

	{
		_, err := in.Ingest(context.Background(), []byte("not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation error")
	}

	{
		_, err := in.Ingest(context.Background(), []byte(`{"serial_number": 1, "status": "active"}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, iot.ErrInvalid))
	}

	{
		_, err := in.Ingest(context.Background(), payload(int(uuid.New().ID()>>1), 50))
		require.Error(t, err)
		assert.True(t, errors.Is(err, iot.ErrNotFound))
	}

	{
		_, err := in.Ingest(context.Background(), []byte(fmt.Sprintf(
			`{"serial_number": %d, "operational_status": "en service", "status": "active", "components": []}`,
			device.SerialNumber)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, iot.ErrInvalid))

		stored, err := in.Iot.Device.GetDevice(context.Background(), device.SerialNumber)
		require.NoError(t, err)
		assert.Equal(t, 50, stored.BatteryLevel)
	}

	{
		_, err := in.Ingest(context.Background(), payload(device.SerialNumber, 101))
		require.Error(t, err)
		assert.True(t, errors.Is(err, iot.ErrInvalid))
	}
}

func TestIngest_RateLimited(t *testing.T) {
	common.SetTestLoggerNop()

	in := newIngestor(iot.NewRateLimiterStore(1, 1))
	device := seedDevice(t, in)

	_, err := in.Ingest(context.Background(), payload(device.SerialNumber, 50))
	require.NoError(t, err)

	_, err = in.Ingest(context.Background(), payload(device.SerialNumber, 50))
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestHandleMessage(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.DebugLevel)
	defer common.SetTestLoggerNop()

	in := newIngestor(nil)
	device := seedDevice(t, in)

	in.HandleMessage(nil, &fakeMessage{topic: in.Topic, payload: payload(device.SerialNumber, 5)})
	in.HandleMessage(nil, &fakeMessage{topic: in.Topic, payload: []byte("{")})

	alerts, err := in.Iot.Alert.GetDeviceAlerts(context.Background(), device.SerialNumber)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeBatteryLow, alerts[0].Type)

	var ingested, dropped int
	for _, l := range ParseLogs(&buf) {
		if l["logger"] != common.LoggerNameMqttIngestor {
			continue
		}
		assert.Equal(t, in.Topic, l["topic"])
		switch l["msg"] {
		case "Status message ingested":
			ingested++
			assert.Equal(t, float64(1), l["alerts_created"])
		case "Status message dropped":
			dropped++
			assert.Equal(t, "{", l["payload"])
		}
	}
	assert.Equal(t, 1, ingested)
	assert.Equal(t, 1, dropped)
}

func TestStop_WithoutStart(t *testing.T) {
	common.SetTestLoggerNop()

	in := newIngestor(nil)
	assert.NotPanics(t, in.Stop)
}
