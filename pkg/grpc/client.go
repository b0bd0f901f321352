package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type StatusServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStatusServiceClient(cc grpc.ClientConnInterface) *StatusServiceClient {
	return &StatusServiceClient{cc: cc}
}

func (c *StatusServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StatusServiceClient) IngestStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, IngestStatusMethod, in, opts...)
}

func (c *StatusServiceClient) GetAlerts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetAlertsMethod, in, opts...)
}

func (c *StatusServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SetLimiterMethod, in, opts...)
}

// StatusWatcher yields every status update broadcast after the watch began.
type StatusWatcher struct {
	stream grpc.ClientStream
}

func (w *StatusWatcher) Recv() (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := w.stream.RecvMsg(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StatusServiceClient) WatchStatus(ctx context.Context, opts ...grpc.CallOption) (*StatusWatcher, error) {
	stream, err := c.cc.NewStream(ctx, &StatusServiceDesc.Streams[0], WatchStatusMethod, opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(&emptypb.Empty{}); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &StatusWatcher{stream: stream}, nil
}
