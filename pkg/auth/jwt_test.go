package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newHMACService(t *testing.T, issuer string, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(TokenConfig{Secret: "unit-test-secret", Issuer: issuer, TTL: ttl})
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	return svc
}

func TestIssueAndVerify_HMAC(t *testing.T) {
	svc := newHMACService(t, "ibankit-test", 15*time.Minute)
	clientID, tenantID := uuid.New(), uuid.New()

	token, err := svc.Issue(clientID, tenantID, []string{ScopeValidate, ScopeCatalog})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.ClientID != clientID || claims.TenantID != tenantID {
		t.Errorf("claims ids = %v/%v, want %v/%v", claims.ClientID, claims.TenantID, clientID, tenantID)
	}
	if claims.Subject != clientID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, clientID)
	}
	if !claims.Allows(ScopeValidate) || claims.Allows(ScopeScreening) {
		t.Errorf("scopes = %v", claims.Scopes)
	}
}

func TestIssueAndVerify_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	issuer, err := NewTokenService(TokenConfig{PrivateKeyPEM: privPEM, Issuer: "ibankit", TTL: time.Minute})
	if err != nil {
		t.Fatalf("NewTokenService(private) error = %v", err)
	}
	verifier, err := NewTokenService(TokenConfig{PublicKeyPEM: pubPEM, Issuer: "ibankit"})
	if err != nil {
		t.Fatalf("NewTokenService(public) error = %v", err)
	}

	token, err := issuer.Issue(uuid.New(), uuid.New(), []string{ScopeAdmin})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !claims.Allows(ScopeScreening) {
		t.Error("admin scope should allow every scope")
	}

	if _, err := verifier.Issue(uuid.New(), uuid.New(), nil); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Issue() on a verify-only service error = %v, want ErrReadOnly", err)
	}

	hmac := newHMACService(t, "ibankit", time.Minute)
	if _, err := hmac.Verify(token); err == nil {
		t.Error("an HS256 verifier must reject RS256 tokens")
	}
}

func TestVerify_Rejects(t *testing.T) {
	svc := newHMACService(t, "ibankit-test", time.Minute)
	good, err := svc.Issue(uuid.New(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expired := newHMACService(t, "ibankit-test", -time.Hour)
	old, _ := expired.Issue(uuid.New(), uuid.New(), nil)

	other := newHMACService(t, "someone-else", time.Minute)
	foreign, _ := other.Issue(uuid.New(), uuid.New(), nil)

	wrongKey, _ := NewTokenService(TokenConfig{Secret: "another-secret", Issuer: "ibankit-test", TTL: time.Minute})
	forged, _ := wrongKey.Issue(uuid.New(), uuid.New(), nil)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", old},
		{"wrong issuer", foreign},
		{"wrong key", forged},
		{"garbage", "not-a-token"},
		{"truncated", good[:len(good)-4]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); err == nil {
				t.Errorf("Verify(%s) expected error, got nil", tt.name)
			}
		})
	}
}

func TestNewTokenService_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  TokenConfig
	}{
		{"no key", TokenConfig{}},
		{"bad private key", TokenConfig{PrivateKeyPEM: "nope"}},
		{"bad public key", TokenConfig{PublicKeyPEM: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTokenService(tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadKeyFromFile_Missing(t *testing.T) {
	if _, err := LoadKeyFromFile(t.TempDir() + "/missing.pem"); err == nil {
		t.Error("expected error for a missing file")
	}
}
