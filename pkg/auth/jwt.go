package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrReadOnly is returned by Issue when the service only holds a public key.
var ErrReadOnly = errors.New("auth: token service has no signing key")

// TokenConfig configures a TokenService. Exactly one key source is used, in
// this order: PrivateKeyPEM, PublicKeyPEM, Secret.
type TokenConfig struct {
	// PrivateKeyPEM signs and verifies RS256 tokens.
	PrivateKeyPEM string
	// PublicKeyPEM verifies RS256 tokens only.
	PublicKeyPEM string
	// Secret signs and verifies HS256 tokens. Intended for local development.
	Secret string

	Issuer string
	TTL    time.Duration
}

// TokenService issues and verifies client tokens.
type TokenService struct {
	cfg        TokenConfig
	method     jwt.SigningMethod
	signKey    interface{}
	verifyKey  interface{}
	canSign    bool
	timeSource func() time.Time
}

// NewTokenService builds a TokenService from cfg.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	svc := &TokenService{cfg: cfg, timeSource: time.Now}

	switch {
	case cfg.PrivateKeyPEM != "":
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse RSA private key: %w", err)
		}
		svc.method = jwt.SigningMethodRS256
		svc.signKey = key
		svc.verifyKey = &key.PublicKey
		svc.canSign = true
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse RSA public key: %w", err)
		}
		svc.method = jwt.SigningMethodRS256
		svc.verifyKey = key
	case cfg.Secret != "":
		svc.method = jwt.SigningMethodHS256
		svc.signKey = []byte(cfg.Secret)
		svc.verifyKey = []byte(cfg.Secret)
		svc.canSign = true
	default:
		return nil, errors.New("token configuration requires a private key, a public key or a secret")
	}

	return svc, nil
}

// Issue signs a token for an API client.
func (s *TokenService) Issue(clientID, tenantID uuid.UUID, scopes []string) (string, error) {
	if !s.canSign {
		return "", ErrReadOnly
	}
	now := s.timeSource()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   clientID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
			ID:        uuid.NewString(),
		},
		ClientID: clientID,
		TenantID: tenantID,
		Scopes:   scopes,
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token, checks its signature, lifetime and issuer, and
// returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.timeSource),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.verifyKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key.
func LoadKeyFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file %q: %w", path, err)
	}
	return string(data), nil
}

// GenerateKeyPair returns a fresh 2048-bit RSA key pair as PEM strings.
func GenerateKeyPair() (privatePEM, publicPEM string, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return "", "", fmt.Errorf("generate RSA key: %w", err)
	}
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("marshal public key: %w", err)
	}
	privatePEM = string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
	return privatePEM, publicPEM, nil
}
