package jwtservice

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// Validator checks RS256 bearer tokens against a fixed public key, issuer and
// audience.
type Validator struct {
	publicKey *rsa.PublicKey
	issuer    string
	audience  string
	now       func() time.Time
}

func NewValidator(publicKey *rsa.PublicKey, issuer string, audience string) *Validator {
	return &Validator{publicKey: publicKey, issuer: issuer, audience: audience, now: time.Now}
}

func (v *Validator) ValidateToken(tokenStr string) (bool, error) {
	tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))
	if tokenStr == "" {
		return false, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(jwtToken *jwt.Token) (interface{}, error) {
		if _, ok := jwtToken.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected method: %s", jwtToken.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return false, err
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return false, errors.New("invalid token, claims parse error")
	}

	if !claims.VerifyExpiresAt(v.now().Unix(), true) {
		return false, errors.New("token expired")
	}

	if !claims.VerifyIssuer(v.issuer, true) {
		return false, errors.New("token issuer error")
	}

	if !claims.VerifyAudience(v.audience, true) {
		return false, errors.New("token audience error")
	}

	return true, nil
}

func ReadPublicPEMKey(path string) (*rsa.PublicKey, error) {
	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	block, _ := pem.Decode(keyBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %s", path)
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	switch t := publicKey.(type) {
	case *rsa.PublicKey:
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported public key type %T", publicKey)
	}
}
