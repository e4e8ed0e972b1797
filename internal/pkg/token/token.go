package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessTokenTTL is fixed. Tokens cannot be refreshed or revoked; clients
// log in again after expiry.
const accessTokenTTL = 30 * time.Minute

// Issuer mints signed access tokens for authenticated PNRs.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer builds an issuer signing with the given symmetric secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue mints an HS256 token with the subject, the issue time and an expiry
// exactly 30 minutes later.
func (i *Issuer) Issue(subject uuid.UUID) (string, error) {
	issuedAt := i.now().UTC()

	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(accessTokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}
