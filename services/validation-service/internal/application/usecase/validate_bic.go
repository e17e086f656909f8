package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/valueobject"
)

// ValidateBICUseCase handles checking a BIC and splitting it into parts.
type ValidateBICUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	logger   *slog.Logger
}

// NewValidateBICUseCase creates a new ValidateBICUseCase.
func NewValidateBICUseCase(catalog port.CountryCatalog, recorder port.ValidationRecorder, logger *slog.Logger) *ValidateBICUseCase {
	return &ValidateBICUseCase{
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute validates the BIC and fills in its parts when it is valid.
func (uc *ValidateBICUseCase) Execute(ctx context.Context, req dto.ValidateBICRequest) (dto.ValidateBICResponse, error) {
	input := iban.ElectronicFormat(req.BIC)

	result := uc.catalog.ValidateBIC(input)
	reasons, names := bicReasons(result.Reasons)
	resp := dto.ValidateBICResponse{
		BIC:     input,
		Valid:   result.Valid,
		Reasons: reasons,
	}

	country := unknownCountry
	if result.Valid {
		bic, err := valueobject.NewBIC(uc.catalog, input)
		if err != nil {
			return dto.ValidateBICResponse{}, fmt.Errorf("failed to build BIC %s: %w", input, err)
		}
		country = bic.CountryCode().String()
		resp.BankCode = bic.BankCode()
		resp.CountryCode = country
		resp.LocationCode = input[6:8]
		if branch, ok := bic.Branch(); ok {
			resp.BranchCode = &branch
		}
		resp.TestBIC = bic.IsTest()
	}

	uc.recorder.RecordValidation(ctx, port.OpValidateBIC, country, result.Valid, names)
	uc.logger.Debug("validated BIC", "country", country, "valid", result.Valid, "reasons", names)

	return resp, nil
}
