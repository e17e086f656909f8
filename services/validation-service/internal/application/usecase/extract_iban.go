package usecase

import (
	"context"
	"log/slog"

	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
)

// ExtractIBANUseCase handles splitting an IBAN into its national fields.
type ExtractIBANUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	allowQR  bool
	logger   *slog.Logger
}

// NewExtractIBANUseCase creates a new ExtractIBANUseCase.
func NewExtractIBANUseCase(
	catalog port.CountryCatalog,
	recorder port.ValidationRecorder,
	allowQR bool,
	logger *slog.Logger,
) *ExtractIBANUseCase {
	return &ExtractIBANUseCase{
		catalog:  catalog,
		recorder: recorder,
		allowQR:  allowQR,
		logger:   logger,
	}
}

// Execute returns the fields of a valid IBAN. An invalid IBAN yields Valid
// false and no fields.
func (uc *ExtractIBANUseCase) Execute(ctx context.Context, req dto.ExtractIBANRequest) (dto.ExtractIBANResponse, error) {
	input := iban.ElectronicFormat(req.IBAN)
	ext := uc.catalog.ExtractIBAN(input, qrOption(uc.allowQR, req.AllowQRIBAN))

	resp := dto.ExtractIBANResponse{
		IBAN:             input,
		Valid:            ext.Valid,
		BBAN:             fieldPtr(ext.BBAN),
		CountryCode:      fieldPtr(ext.CountryCode),
		BankIdentifier:   fieldPtr(ext.BankIdentifier),
		BranchIdentifier: fieldPtr(ext.BranchIdentifier),
		AccountNumber:    fieldPtr(ext.AccountNumber),
	}

	country := countryLabel(uc.catalog, input)
	uc.recorder.RecordValidation(ctx, port.OpExtractIBAN, country, ext.Valid, nil)
	uc.logger.Debug("extracted IBAN", "country", country, "valid", ext.Valid)

	return resp, nil
}
