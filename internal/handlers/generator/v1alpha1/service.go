// Package v1alpha1 serves the generator over gRPC. Messages are
// google.protobuf.Struct documents whose fields mirror the session
// orchestrator types.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "msh.chargen.v1alpha1.GeneratorService"

// Method names
const (
	MethodCreateSession = "CreateSession"
	MethodGetSession    = "GetSession"
	MethodApply         = "Apply"
	MethodExport        = "Export"
	MethodDeleteSession = "DeleteSession"
)

// GeneratorServiceServer is the server API for GeneratorService
type GeneratorServiceServer interface {
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Apply(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Export(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(GeneratorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GeneratorServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(GeneratorServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GeneratorServiceDesc is the grpc.ServiceDesc for GeneratorService
var GeneratorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GeneratorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodHandler(MethodCreateSession, GeneratorServiceServer.CreateSession),
		methodHandler(MethodGetSession, GeneratorServiceServer.GetSession),
		methodHandler(MethodApply, GeneratorServiceServer.Apply),
		methodHandler(MethodExport, GeneratorServiceServer.Export),
		methodHandler(MethodDeleteSession, GeneratorServiceServer.DeleteSession),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "msh/chargen/v1alpha1/generator.proto",
}

// RegisterGeneratorServiceServer registers srv on s
func RegisterGeneratorServiceServer(s grpc.ServiceRegistrar, srv GeneratorServiceServer) {
	s.RegisterService(&GeneratorServiceDesc, srv)
}

// GeneratorServiceClient calls GeneratorService
type GeneratorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGeneratorServiceClient wraps a connection
func NewGeneratorServiceClient(cc grpc.ClientConnInterface) *GeneratorServiceClient {
	return &GeneratorServiceClient{cc: cc}
}

// Call invokes method with req
func (c *GeneratorServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
