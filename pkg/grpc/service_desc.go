package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages are google.protobuf.Struct documents shaped like the REST bodies,
// so the service needs no generated code.

const (
	ServiceName = "irchad.devices.v1.StatusService"

	IngestStatusMethod = "/" + ServiceName + "/IngestStatus"
	GetAlertsMethod    = "/" + ServiceName + "/GetAlerts"
	SetLimiterMethod   = "/" + ServiceName + "/SetLimiter"
	WatchStatusMethod  = "/" + ServiceName + "/WatchStatus"
)

type StatusServiceServer interface {
	IngestStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAlerts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WatchStatus(*emptypb.Empty, grpc.ServerStream) error
}

func RegisterStatusServiceServer(s grpc.ServiceRegistrar, srv StatusServiceServer) {
	s.RegisterService(&StatusServiceDesc, srv)
}

func unaryHandler(
	method string,
	call func(StatusServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatusServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StatusServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchStatusHandler(srv any, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(StatusServiceServer).WatchStatus(in, stream)
}

var StatusServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatusServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestStatus",
			Handler:    unaryHandler(IngestStatusMethod, StatusServiceServer.IngestStatus),
		},
		{
			MethodName: "GetAlerts",
			Handler:    unaryHandler(GetAlertsMethod, StatusServiceServer.GetAlerts),
		},
		{
			MethodName: "SetLimiter",
			Handler:    unaryHandler(SetLimiterMethod, StatusServiceServer.SetLimiter),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchStatus",
			Handler:       watchStatusHandler,
			ServerStreams: true,
		},
	},
	Metadata: "irchad/devices/v1/status_service",
}
