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

// ValidateIBANUseCase handles checking a single IBAN.
type ValidateIBANUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	allowQR  bool
	logger   *slog.Logger
}

// NewValidateIBANUseCase creates a new ValidateIBANUseCase. allowQR is the
// default for requests that do not say whether QR-IBANs are acceptable.
func NewValidateIBANUseCase(
	catalog port.CountryCatalog,
	recorder port.ValidationRecorder,
	allowQR bool,
	logger *slog.Logger,
) *ValidateIBANUseCase {
	return &ValidateIBANUseCase{
		catalog:  catalog,
		recorder: recorder,
		allowQR:  allowQR,
		logger:   logger,
	}
}

// Execute validates the IBAN in electronic format. A rejected IBAN is not an
// error; its reasons are returned in the response.
func (uc *ValidateIBANUseCase) Execute(ctx context.Context, req dto.ValidateIBANRequest) (dto.ValidateIBANResponse, error) {
	input := iban.ElectronicFormat(req.IBAN)
	opt := qrOption(uc.allowQR, req.AllowQRIBAN)

	result := uc.catalog.Validate(input, opt)
	reasons, names := ibanReasons(result.Reasons)
	resp := dto.ValidateIBANResponse{
		IBAN:    input,
		Valid:   result.Valid,
		Reasons: reasons,
		QRIBAN:  iban.IsQRIBAN(input),
	}

	if result.Valid {
		value, err := valueobject.NewIBAN(uc.catalog, input, opt)
		if err != nil {
			return dto.ValidateIBANResponse{}, fmt.Errorf("failed to build IBAN %s: %w", input, err)
		}
		resp.CountryCode = value.CountryCode().String()
		resp.Friendly = value.Friendly()
	}

	country := countryLabel(uc.catalog, input)
	uc.recorder.RecordValidation(ctx, port.OpValidateIBAN, country, result.Valid, names)
	uc.logger.Debug("validated IBAN", "country", country, "valid", result.Valid, "reasons", names)

	return resp, nil
}
