package grpc

// proto.go defines the gRPC server interface for ibankit.validation.v1.ValidationService.
// Messages are the application DTOs, carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "ibankit.validation.v1.ValidationService"

// Full method names, as seen by interceptors.
const (
	MethodValidateIBAN         = "/" + ServiceName + "/ValidateIBAN"
	MethodValidateBBAN         = "/" + ServiceName + "/ValidateBBAN"
	MethodComposeIBAN          = "/" + ServiceName + "/ComposeIBAN"
	MethodExtractIBAN          = "/" + ServiceName + "/ExtractIBAN"
	MethodValidateBIC          = "/" + ServiceName + "/ValidateBIC"
	MethodListCountries        = "/" + ServiceName + "/ListCountries"
	MethodScreenPaymentMessage = "/" + ServiceName + "/ScreenPaymentMessage"
)

// ValidationServiceServer is the server API for ValidationService.
type ValidationServiceServer interface {
	ValidateIBAN(context.Context, *dto.ValidateIBANRequest) (*dto.ValidateIBANResponse, error)
	ValidateBBAN(context.Context, *dto.ValidateBBANRequest) (*dto.ValidateBBANResponse, error)
	ComposeIBAN(context.Context, *dto.ComposeIBANRequest) (*dto.ComposeIBANResponse, error)
	ExtractIBAN(context.Context, *dto.ExtractIBANRequest) (*dto.ExtractIBANResponse, error)
	ValidateBIC(context.Context, *dto.ValidateBICRequest) (*dto.ValidateBICResponse, error)
	ListCountries(context.Context, *dto.ListCountriesRequest) (*dto.ListCountriesResponse, error)
	ScreenPaymentMessage(context.Context, *dto.ScreenPaymentRequest) (*dto.ScreenPaymentResponse, error)
	mustEmbedUnimplementedValidationServiceServer()
}

// UnimplementedValidationServiceServer provides forward-compatible default implementations.
type UnimplementedValidationServiceServer struct{}

func (UnimplementedValidationServiceServer) ValidateIBAN(context.Context, *dto.ValidateIBANRequest) (*dto.ValidateIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateIBAN not implemented")
}
func (UnimplementedValidationServiceServer) ValidateBBAN(context.Context, *dto.ValidateBBANRequest) (*dto.ValidateBBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateBBAN not implemented")
}
func (UnimplementedValidationServiceServer) ComposeIBAN(context.Context, *dto.ComposeIBANRequest) (*dto.ComposeIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComposeIBAN not implemented")
}
func (UnimplementedValidationServiceServer) ExtractIBAN(context.Context, *dto.ExtractIBANRequest) (*dto.ExtractIBANResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractIBAN not implemented")
}
func (UnimplementedValidationServiceServer) ValidateBIC(context.Context, *dto.ValidateBICRequest) (*dto.ValidateBICResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateBIC not implemented")
}
func (UnimplementedValidationServiceServer) ListCountries(context.Context, *dto.ListCountriesRequest) (*dto.ListCountriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCountries not implemented")
}
func (UnimplementedValidationServiceServer) ScreenPaymentMessage(context.Context, *dto.ScreenPaymentRequest) (*dto.ScreenPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScreenPaymentMessage not implemented")
}
func (UnimplementedValidationServiceServer) mustEmbedUnimplementedValidationServiceServer() {}

// RegisterValidationServiceServer registers the ValidationServiceServer with the gRPC server.
func RegisterValidationServiceServer(s grpclib.ServiceRegistrar, srv ValidationServiceServer) {
	s.RegisterService(&validationServiceDesc, srv)
}

var validationServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ValidationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ValidateIBAN", Handler: unaryHandler(MethodValidateIBAN, ValidationServiceServer.ValidateIBAN)},
		{MethodName: "ValidateBBAN", Handler: unaryHandler(MethodValidateBBAN, ValidationServiceServer.ValidateBBAN)},
		{MethodName: "ComposeIBAN", Handler: unaryHandler(MethodComposeIBAN, ValidationServiceServer.ComposeIBAN)},
		{MethodName: "ExtractIBAN", Handler: unaryHandler(MethodExtractIBAN, ValidationServiceServer.ExtractIBAN)},
		{MethodName: "ValidateBIC", Handler: unaryHandler(MethodValidateBIC, ValidationServiceServer.ValidateBIC)},
		{MethodName: "ListCountries", Handler: unaryHandler(MethodListCountries, ValidationServiceServer.ListCountries)},
		{MethodName: "ScreenPaymentMessage", Handler: unaryHandler(MethodScreenPaymentMessage, ValidationServiceServer.ScreenPaymentMessage)},
	},
	Streams: []grpclib.StreamDesc{},
}

// unaryHandler builds the method handler the generated code would contain
// for one RPC.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(ValidationServiceServer, context.Context, *Req) (*Resp, error),
) grpclib.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ValidationServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ValidationServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
