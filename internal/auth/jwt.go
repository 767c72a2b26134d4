package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// JWTManager validates access tokens issued by the identity provider and
// can mint tokens for tooling and tests.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the acting role and the
// outlet the user is assigned to (empty for head-office roles).
type accessClaims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	OutletID string `json:"outlet_id,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the principal.
func (m *JWTManager) GenerateAccessToken(p ctxutil.Principal) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(p.Role),
	}
	if p.OutletID != uuid.Nil {
		claims.OutletID = p.OutletID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the principal it carries. Unknown roles are rejected.
func (m *JWTManager) ValidateAccessToken(tokenString string) (ctxutil.Principal, error) {
	if tokenString == "" {
		return ctxutil.Principal{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return ctxutil.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Principal{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctxutil.Principal{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.ParseRole(claims.Role)
	if !role.IsValid() {
		return ctxutil.Principal{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	p := ctxutil.Principal{UserID: userID, Role: role}
	if claims.OutletID != "" {
		if p.OutletID, err = uuid.Parse(claims.OutletID); err != nil {
			return ctxutil.Principal{}, fmt.Errorf("invalid outlet_id: %w", err)
		}
	}

	return p, nil
}
