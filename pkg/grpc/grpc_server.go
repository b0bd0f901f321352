package grpc

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/hub"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
)

type IOTServer struct {
	Iot              *iot.IOT
	Hub              *hub.Hub
	RateLimiterStore *iot.RateLimiterStore
}

var _ StatusServiceServer = (*IOTServer)(nil)

func (i *IOTServer) GetLimiter(serialNumber int) *rate.Limiter {
	if i.RateLimiterStore == nil {
		return nil
	} else {
		return i.RateLimiterStore.GetLimiter(serialNumber)
	}
}

func (i *IOTServer) CheckDeviceLimiter(serialNumber int) bool {
	limiter := i.GetLimiter(serialNumber)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameGrpcServer)
}

// toStatus maps core errors onto gRPC codes. Unclassified errors are logged
// and reported as Internal.
func toStatus(method string, err error) error {
	switch {
	case errors.Is(err, iot.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, iot.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, iot.ErrInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	logger().Error("Request failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}
