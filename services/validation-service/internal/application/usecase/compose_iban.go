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

// ComposeIBANUseCase handles building an IBAN from a country and a BBAN.
type ComposeIBANUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	logger   *slog.Logger
}

// NewComposeIBANUseCase creates a new ComposeIBANUseCase.
func NewComposeIBANUseCase(catalog port.CountryCatalog, recorder port.ValidationRecorder, logger *slog.Logger) *ComposeIBANUseCase {
	return &ComposeIBANUseCase{
		catalog:  catalog,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute computes the check digits. Composition only needs a known country
// and an alphanumeric BBAN, so the response also says whether the result
// passes full validation.
func (uc *ComposeIBANUseCase) Execute(ctx context.Context, req dto.ComposeIBANRequest) (dto.ComposeIBANResponse, error) {
	cc, err := valueobject.NewCountryCode(req.CountryCode)
	if err != nil {
		return dto.ComposeIBANResponse{}, fmt.Errorf("failed to compose IBAN: %w", err)
	}

	composed, ok := uc.catalog.ComposeIBAN(cc.String(), cleanBBAN(req.BBAN))
	if !ok {
		uc.recorder.RecordValidation(ctx, port.OpComposeIBAN, countryLabel(uc.catalog, cc.String()), false, nil)
		uc.logger.Debug("could not compose IBAN", "country", cc.String())
		return dto.ComposeIBANResponse{}, nil
	}

	resp := dto.ComposeIBANResponse{
		Composed: true,
		IBAN:     composed,
		Friendly: iban.FriendlyFormat(composed, " "),
	}
	result := uc.catalog.Validate(composed)
	resp.Valid = result.Valid

	_, names := ibanReasons(result.Reasons)
	uc.recorder.RecordValidation(ctx, port.OpComposeIBAN, countryLabel(uc.catalog, cc.String()), result.Valid, names)
	uc.logger.Debug("composed IBAN", "country", cc.String(), "valid", result.Valid)

	return resp, nil
}
