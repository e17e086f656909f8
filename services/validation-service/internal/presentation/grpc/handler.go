package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/usecase"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/valueobject"
)

// ValidationHandler implements the gRPC validation service handler.
type ValidationHandler struct {
	UnimplementedValidationServiceServer

	validateIBAN  *usecase.ValidateIBANUseCase
	validateBBAN  *usecase.ValidateBBANUseCase
	composeIBAN   *usecase.ComposeIBANUseCase
	extractIBAN   *usecase.ExtractIBANUseCase
	validateBIC   *usecase.ValidateBICUseCase
	listCountries *usecase.ListCountriesUseCase
	screenPayment *usecase.ScreenPaymentMessageUseCase
}

// NewValidationHandler creates a new gRPC validation handler.
func NewValidationHandler(
	validateIBAN *usecase.ValidateIBANUseCase,
	validateBBAN *usecase.ValidateBBANUseCase,
	composeIBAN *usecase.ComposeIBANUseCase,
	extractIBAN *usecase.ExtractIBANUseCase,
	validateBIC *usecase.ValidateBICUseCase,
	listCountries *usecase.ListCountriesUseCase,
	screenPayment *usecase.ScreenPaymentMessageUseCase,
) *ValidationHandler {
	return &ValidationHandler{
		validateIBAN:  validateIBAN,
		validateBBAN:  validateBBAN,
		composeIBAN:   composeIBAN,
		extractIBAN:   extractIBAN,
		validateBIC:   validateBIC,
		listCountries: listCountries,
		screenPayment: screenPayment,
	}
}

// ValidateIBAN handles the gRPC ValidateIBAN request.
func (h *ValidationHandler) ValidateIBAN(ctx context.Context, req *dto.ValidateIBANRequest) (*dto.ValidateIBANResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.validateIBAN.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ValidateBBAN handles the gRPC ValidateBBAN request.
func (h *ValidationHandler) ValidateBBAN(ctx context.Context, req *dto.ValidateBBANRequest) (*dto.ValidateBBANResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.validateBBAN.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ComposeIBAN handles the gRPC ComposeIBAN request.
func (h *ValidationHandler) ComposeIBAN(ctx context.Context, req *dto.ComposeIBANRequest) (*dto.ComposeIBANResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.composeIBAN.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ExtractIBAN handles the gRPC ExtractIBAN request.
func (h *ValidationHandler) ExtractIBAN(ctx context.Context, req *dto.ExtractIBANRequest) (*dto.ExtractIBANResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.extractIBAN.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ValidateBIC handles the gRPC ValidateBIC request.
func (h *ValidationHandler) ValidateBIC(ctx context.Context, req *dto.ValidateBICRequest) (*dto.ValidateBICResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.validateBIC.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ListCountries handles the gRPC ListCountries request.
func (h *ValidationHandler) ListCountries(ctx context.Context, req *dto.ListCountriesRequest) (*dto.ListCountriesResponse, error) {
	if req == nil {
		req = &dto.ListCountriesRequest{}
	}
	resp, err := h.listCountries.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ScreenPaymentMessage handles the gRPC ScreenPaymentMessage request.
func (h *ValidationHandler) ScreenPaymentMessage(ctx context.Context, req *dto.ScreenPaymentRequest) (*dto.ScreenPaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	resp, err := h.screenPayment.Execute(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// toStatus maps use case errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrInvalidCountryCode),
		errors.Is(err, usecase.ErrInvalidDocument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, usecase.ErrCountryNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
