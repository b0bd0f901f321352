// Package mqtt feeds device status snapshots published on a broker topic
// into the same ingestion pipeline as the HTTP and gRPC surfaces.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250 // ms
	ingestTimeout     = 5 * time.Second
)

var ErrRateLimited = errors.New("rate limit exceeded")

type Ingestor struct {
	Iot              *iot.IOT
	RateLimiterStore *iot.RateLimiterStore
	Broker           string
	Topic            string
	QoS              byte

	client paho.Client
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameMqttIngestor)
}

// Ingest runs one raw payload through parse, rate limiting and ingestion,
// returning how many alerts it raised.
func (in *Ingestor) Ingest(ctx context.Context, payload []byte) (int, error) {
	update := models.NewStatusUpdate()
	if err := json.Unmarshal(payload, update); err != nil {
		return 0, fmt.Errorf("validation error: %w", err)
	}

	snapshot, err := iot.ParseStatusUpdate(update)
	if err != nil {
		return 0, err
	}

	if !in.RateLimiterStore.Allow(snapshot.SerialNumber) {
		return 0, ErrRateLimited
	}

	return in.Iot.Status.IngestStatus(ctx, snapshot)
}

// HandleMessage is the paho subscription callback. Failures are logged and
// the message is dropped; there is no one to reply to.
func (in *Ingestor) HandleMessage(_ paho.Client, msg paho.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	log := logger().With(zap.String("topic", msg.Topic()))

	alertsCreated, err := in.Ingest(ctx, msg.Payload())
	if err != nil {
		log.Warn("Status message dropped", zap.Error(err), zap.ByteString("payload", msg.Payload()))
		return
	}
	log.Debug("Status message ingested", zap.Int("alerts_created", alertsCreated))
}

func (in *Ingestor) subscribe(client paho.Client) {
	token := client.Subscribe(in.Topic, in.QoS, in.HandleMessage)
	if token.Wait() && token.Error() != nil {
		logger().Error("MQTT subscribe failed", zap.String("topic", in.Topic), zap.Error(token.Error()))
		return
	}
	logger().Info("MQTT subscribed", zap.String("topic", in.Topic))
}

// Start connects to the broker. The topic is (re)subscribed on every
// successful connection so reconnects keep receiving.
func (in *Ingestor) Start() error {
	if in.Topic == "" {
		in.Topic = common.DefaultMqttTopic
	}

	opts := paho.NewClientOptions().
		AddBroker(in.Broker).
		SetClientID("irchad-ingestor-" + uuid.NewString()).
		SetAutoReconnect(true).
		SetOnConnectHandler(in.subscribe).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger().Warn("MQTT connection lost", zap.Error(err))
		})

	in.client = paho.NewClient(opts)
	token := in.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt connect to %s timed out", in.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect to %s: %w", in.Broker, err)
	}
	return nil
}

func (in *Ingestor) Stop() {
	if in.client == nil {
		return
	}
	in.client.Disconnect(disconnectQuiesce)
	logger().Info("MQTT ingestor stopped")
}
