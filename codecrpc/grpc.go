package codecrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "xdao.bij256.codecrpc.v1.Codec"

// CodecServer is the server API for the Codec gRPC service.
//
// Integers travel as base-10 strings. Well-known wrapper types keep this
// package free of a protoc/codegen toolchain.
//
// Proto definition: codec.proto.
type CodecServer interface {
	EncodeInteger(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	DecodeInteger(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	EncodeUnary(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	DecodeUnary(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedCodecServer can be embedded to have forward compatible implementations.
type UnimplementedCodecServer struct{}

func (UnimplementedCodecServer) EncodeInteger(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method EncodeInteger not implemented")
}
func (UnimplementedCodecServer) DecodeInteger(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodeInteger not implemented")
}
func (UnimplementedCodecServer) EncodeUnary(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method EncodeUnary not implemented")
}
func (UnimplementedCodecServer) DecodeUnary(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodeUnary not implemented")
}

// RegisterCodecServer registers the Codec service on a gRPC server.
func RegisterCodecServer(s grpc.ServiceRegistrar, srv CodecServer) {
	s.RegisterService(&Codec_ServiceDesc, srv)
}

// CodecClient is the client API for the Codec gRPC service.
type CodecClient interface {
	EncodeInteger(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DecodeInteger(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	EncodeUnary(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DecodeUnary(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type codecClient struct{ cc grpc.ClientConnInterface }

func NewCodecClient(cc grpc.ClientConnInterface) CodecClient { return &codecClient{cc: cc} }

func (c *codecClient) EncodeInteger(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/EncodeInteger", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecClient) DecodeInteger(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DecodeInteger", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecClient) EncodeUnary(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/EncodeUnary", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *codecClient) DecodeUnary(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DecodeUnary", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Codec_EncodeInteger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServer).EncodeInteger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/EncodeInteger"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServer).EncodeInteger(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Codec_DecodeInteger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServer).DecodeInteger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DecodeInteger"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServer).DecodeInteger(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Codec_EncodeUnary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServer).EncodeUnary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/EncodeUnary"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServer).EncodeUnary(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Codec_DecodeUnary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CodecServer).DecodeUnary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DecodeUnary"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CodecServer).DecodeUnary(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Codec_ServiceDesc is the grpc.ServiceDesc for Codec service.
var Codec_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CodecServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "EncodeInteger", Handler: _Codec_EncodeInteger_Handler},
		{MethodName: "DecodeInteger", Handler: _Codec_DecodeInteger_Handler},
		{MethodName: "EncodeUnary", Handler: _Codec_EncodeUnary_Handler},
		{MethodName: "DecodeUnary", Handler: _Codec_DecodeUnary_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "codec.proto",
}
