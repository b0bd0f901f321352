package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	z "github.com/Oudwins/zog"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

// watchBuffer bounds how many updates may queue for one stream before the
// hub's send timeout starts dropping it.
const watchBuffer = 16

// decodeStruct re-reads a Struct as JSON into dst, so the same field tags
// serve REST bodies and RPC messages.
func decodeStruct(req *structpb.Struct, dst any) error {
	raw, err := protojson.Marshal(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func encodeStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func validationError(err any) error {
	return status.Errorf(codes.InvalidArgument, "validation error: %v", err)
}

func (s *IOTServer) IngestStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	update := models.NewStatusUpdate()
	if err := decodeStruct(req, update); err != nil {
		return nil, validationError(err)
	}

	snapshot, err := iot.ParseStatusUpdate(update)
	if err != nil {
		return nil, toStatus(IngestStatusMethod, err)
	}

	alertsCreated, err := s.Iot.Status.IngestStatus(ctx, snapshot)
	if err != nil {
		return nil, toStatus(IngestStatusMethod, err)
	}

	return structpb.NewStruct(map[string]any{
		"message":        "Device status updated",
		"alerts_created": alertsCreated,
	})
}

type DeviceRequest struct {
	SerialNumber int `json:"serial_number"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"SerialNumber": z.Int().GT(0).Required(),
})

func (s *IOTServer) GetAlerts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r DeviceRequest
	if err := decodeStruct(req, &r); err != nil {
		return nil, validationError(err)
	}
	if errs := deviceRequestSchema.Validate(&r); errs != nil {
		return nil, validationError(errs)
	}

	alerts, err := s.Iot.Alert.GetDeviceAlerts(ctx, r.SerialNumber)
	if err != nil {
		return nil, toStatus(GetAlertsMethod, err)
	}

	out, err := encodeStruct(map[string]any{"alerts": alerts})
	if err != nil {
		return nil, toStatus(GetAlertsMethod, err)
	}
	return out, nil
}

type LimiterRequest struct {
	SerialNumber int     `json:"serial_number"`
	Rate         float64 `json:"rate"`
	Burst        int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"SerialNumber": z.Int().GT(0).Required(),
	"Rate":         z.Float64().Required().GT(0),
	"Burst":        z.Int().Required().GT(0),
})

func (s *IOTServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r LimiterRequest
	if err := decodeStruct(req, &r); err != nil {
		return nil, validationError(err)
	}
	if errs := limiterRequestSchema.Validate(&r); errs != nil {
		return nil, validationError(errs)
	}

	if s.RateLimiterStore == nil {
		return nil, status.Error(codes.FailedPrecondition, "RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(r.SerialNumber, rate.Limit(r.Rate), r.Burst)
	return structpb.NewStruct(map[string]any{"message": "OK"})
}

// streamSubscriber queues hub payloads for the WatchStatus handler, which is
// the only goroutine writing to the stream.
type streamSubscriber struct {
	id     string
	out    chan []byte
	done   chan struct{}
	closer sync.Once
}

func newStreamSubscriber() *streamSubscriber {
	return &streamSubscriber{
		id:   uuid.NewString(),
		out:  make(chan []byte, watchBuffer),
		done: make(chan struct{}),
	}
}

func (s *streamSubscriber) ID() string { return s.id }

func (s *streamSubscriber) Send(ctx context.Context, payload []byte) error {
	select {
	case s.out <- payload:
		return nil
	case <-s.done:
		return fmt.Errorf("stream %s closed", s.id)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *streamSubscriber) Close() error {
	s.closer.Do(func() { close(s.done) })
	return nil
}

func (s *IOTServer) WatchStatus(_ *emptypb.Empty, stream grpc.ServerStream) error {
	if s.Hub == nil {
		return status.Error(codes.Unavailable, "live updates are disabled")
	}

	subscriber := newStreamSubscriber()
	s.Hub.Subscribe(subscriber)
	defer s.Hub.Unsubscribe(subscriber)

	log := logger().With(zap.String(common.LoggerFieldSubscriberID, subscriber.id))
	log.Debug("Status watch started")

	for {
		select {
		case <-stream.Context().Done():
			log.Debug("Status watch ended", zap.Error(stream.Context().Err()))
			return nil
		case <-subscriber.done:
			return status.Error(codes.Unavailable, "subscriber dropped")
		case payload := <-subscriber.out:
			msg := new(structpb.Struct)
			if err := protojson.Unmarshal(payload, msg); err != nil {
				return toStatus(WatchStatusMethod, err)
			}
			if err := stream.SendMsg(msg); err != nil {
				return err
			}
		}
	}
}
