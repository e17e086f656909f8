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

// ListCountriesUseCase handles listing the country formats the service knows.
type ListCountriesUseCase struct {
	catalog port.CountryCatalog
	logger  *slog.Logger
}

// NewListCountriesUseCase creates a new ListCountriesUseCase.
func NewListCountriesUseCase(catalog port.CountryCatalog, logger *slog.Logger) *ListCountriesUseCase {
	return &ListCountriesUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute lists countries sorted by code. A country code in the request
// selects that single country.
func (uc *ListCountriesUseCase) Execute(_ context.Context, req dto.ListCountriesRequest) (dto.ListCountriesResponse, error) {
	if req.CountryCode != "" {
		cc, err := valueobject.NewCountryCode(req.CountryCode)
		if err != nil {
			return dto.ListCountriesResponse{}, fmt.Errorf("failed to list countries: %w", err)
		}
		spec, ok := uc.catalog.Lookup(cc.String())
		if !ok {
			return dto.ListCountriesResponse{}, fmt.Errorf("%w: %s", ErrCountryNotFound, cc)
		}
		return dto.ListCountriesResponse{
			Countries:  []dto.CountryDTO{toCountryDTO(cc.String(), spec)},
			TotalCount: 1,
		}, nil
	}

	countries := make([]dto.CountryDTO, 0)
	for _, code := range uc.catalog.Countries() {
		spec, ok := uc.catalog.Lookup(code)
		if !ok {
			continue
		}
		if req.SEPAOnly && !spec.SEPA {
			continue
		}
		if req.IBANOnly && !spec.HasIBAN() {
			continue
		}
		countries = append(countries, toCountryDTO(code, spec))
	}

	uc.logger.Debug("listed countries", "count", len(countries), "sepa_only", req.SEPAOnly, "iban_only", req.IBANOnly)

	return dto.ListCountriesResponse{
		Countries:  countries,
		TotalCount: len(countries),
	}, nil
}

func toCountryDTO(code string, spec iban.CountrySpec) dto.CountryDTO {
	view := spec.View()
	name, _ := iban.CountryName(code)
	algorithm := spec.Algorithm.String()
	if spec.Custom != nil {
		algorithm = "custom"
	}
	return dto.CountryDTO{
		Code:         code,
		Name:         name,
		Chars:        view.Chars,
		BBANRegex:    view.BBANRegex,
		Algorithm:    algorithm,
		Bank:         spec.Bank.String(),
		Branch:       spec.Branch.String(),
		Account:      spec.Account.String(),
		IBANRegistry: spec.IBANRegistry,
		SEPA:         spec.SEPA,
	}
}
