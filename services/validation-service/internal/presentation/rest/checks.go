package rest

import (
	"context"
	"errors"

	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
)

// CatalogCheck fails when the catalog has lost its built-in formats, which
// would make every IBAN look foreign.
func CatalogCheck(catalog port.CountryCatalog) Check {
	return func(context.Context) error {
		spec, ok := catalog.Lookup("DE")
		if !ok || !spec.HasIBAN() {
			return errors.New("country catalog is empty")
		}
		return nil
	}
}
