package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload presented by API clients of the validation
// service.
type Claims struct {
	jwt.RegisteredClaims
	ClientID uuid.UUID `json:"client_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Scopes   []string  `json:"scopes"`
}

// Allows reports whether the claims grant scope. ScopeAdmin grants every
// scope.
func (c Claims) Allows(scope string) bool {
	return slices.Contains(c.Scopes, scope) || slices.Contains(c.Scopes, ScopeAdmin)
}

// Scopes understood by the services.
const (
	ScopeAdmin     = "admin"
	ScopeValidate  = "accounts:validate"
	ScopeCompose   = "accounts:compose"
	ScopeCatalog   = "countries:read"
	ScopeScreening = "payments:screen"
)
