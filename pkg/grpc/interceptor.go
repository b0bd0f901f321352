package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
)

// CreateRateLimitInterceptor throttles the listed methods per device, keyed on
// the request's serial_number field. Requests without one pass through and
// fail validation in the handler.
func (i *IOTServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if r, ok := req.(*structpb.Struct); ok {
				if v, ok := r.GetFields()["serial_number"]; ok {
					if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
						if !i.CheckDeviceLimiter(int(n.NumberValue)) {
							return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
						}
					}
				}
			}
		}

		return handler(ctx, req)
	}
}
