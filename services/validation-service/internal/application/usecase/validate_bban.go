package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/valueobject"
)

// ValidateBBANUseCase handles checking a national account number.
type ValidateBBANUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	logger   *slog.Logger
}

// NewValidateBBANUseCase creates a new ValidateBBANUseCase.
func NewValidateBBANUseCase(catalog port.CountryCatalog, recorder port.ValidationRecorder, logger *slog.Logger) *ValidateBBANUseCase {
	return &ValidateBBANUseCase{
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute validates the BBAN and, when the country defines them, returns its
// bank, branch and account fields. A missing country code is reported as a
// rejection reason; a malformed one is an error.
func (uc *ValidateBBANUseCase) Execute(ctx context.Context, req dto.ValidateBBANRequest) (dto.ValidateBBANResponse, error) {
	code := req.CountryCode
	if code != "" {
		cc, err := valueobject.NewCountryCode(code)
		if err != nil {
			return dto.ValidateBBANResponse{}, fmt.Errorf("failed to validate BBAN: %w", err)
		}
		code = cc.String()
	}
	bban := cleanBBAN(req.BBAN)

	result := uc.catalog.ValidateBBAN(bban, code)
	reasons, names := ibanReasons(result.Reasons)
	resp := dto.ValidateBBANResponse{
		BBAN:        bban,
		CountryCode: code,
		Valid:       result.Valid,
		Reasons:     reasons,
	}

	fields := uc.catalog.ExtractBBAN(bban, code)
	resp.BankIdentifier = fieldPtr(fields.BankIdentifier)
	resp.BranchIdentifier = fieldPtr(fields.BranchIdentifier)
	resp.AccountNumber = fieldPtr(fields.AccountNumber)

	country := countryLabel(uc.catalog, code)
	uc.recorder.RecordValidation(ctx, port.OpValidateBBAN, country, result.Valid, names)
	uc.logger.Debug("validated BBAN", "country", country, "valid", result.Valid, "reasons", names)

	return resp, nil
}
