package adlink

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adcreativex/adcreativex/internal/common"
)

// linkClaims are the claims carried by a link access token.
type linkClaims struct {
	jwt.RegisteredClaims
	AdAccountID string
}

// MintLinkToken signs a short-lived HS256 token granting access to the
// given ad account.
func MintLinkToken(adAccountID string, secret []byte, validity time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, linkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		AdAccountID: adAccountID,
	})
	return token.SignedString(secret)
}

// AccountFromLinkToken validates a link token and returns the ad-account id
// it grants access to. Expired or tampered tokens yield
// common.ErrInvalidLinkToken.
func AccountFromLinkToken(tokenString string, secret []byte) (string, error) {
	claims := &linkClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidLinkToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidLinkToken
	}

	return claims.AdAccountID, nil
}

// SimulatedConnector stands in for the ad platform's linking API. It mints
// real signed tokens so downstream consumers exercise the same verification
// path a production connector would require.
type SimulatedConnector struct {
	secret   []byte
	validity time.Duration
}

func NewSimulatedConnector(secret []byte, validity time.Duration) *SimulatedConnector {
	return &SimulatedConnector{secret: secret, validity: validity}
}

func (c *SimulatedConnector) RequestLink(_ context.Context, adAccountID string) (string, error) {
	if adAccountID == "" {
		return "", fmt.Errorf("ad account id is required")
	}
	return MintLinkToken(adAccountID, c.secret, c.validity)
}

func (c *SimulatedConnector) RevokeLink(context.Context) error {
	return nil
}
