package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "github.com/Zayed4321/FoodHouse-Backend/internal/errors"
)

// TokenValidity is the fixed lifetime of an issued identity token. Tokens are
// stateless; expiry is the only termination mechanism, so privileged routes
// re-read the account role on every request instead of trusting the token.
const TokenValidity = 7 * 24 * time.Hour

// Claims carries only the account identity. Role is deliberately absent.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens. The signing secret is
// injected at construction, never read from ambient state.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Issue mints a token for the given account, valid for TokenValidity.
func (s *JWTService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the account identifier.
// Malformed, tampered and expired tokens all collapse into ErrInvalidToken
// rather than leaking parser detail to the caller.
func (s *JWTService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidToken
	}

	return userID, nil
}
