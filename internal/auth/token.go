package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/config"
	"github.com/Azotik83/Eclipse.github.io/pkg/errors"
)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken mints a signed access token for the session, expiring per the
// JWT config.
func IssueToken(s Session, cfg config.JWT) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpiredIn) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to sign token", err)
	}
	return signed, nil
}

// ParseToken validates a token and recovers the session it encodes.
func ParseToken(tokenStr string, cfg config.JWT) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	return &Session{UserID: userID, Email: claims.Email}, nil
}
