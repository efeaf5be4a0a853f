package token

import (
	"errors"
	"time"

	"hospital-management-system/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when the embedded expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenMalformed is returned for structural or signature failures.
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims is the session payload carried entirely inside the signed token.
// There is no server-side session table and no revocation list; a token is
// valid until its embedded expiry.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	config config.JWTConfig
}

func NewService(cfg config.JWTConfig) *Service {
	return &Service{config: cfg}
}

// Issue signs a session token embedding identity and role claims.
func (s *Service) Issue(userID uuid.UUID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.config.Secret))
}

// Verify parses and validates a session token, distinguishing expiry from
// structural and signature failures.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

func (s *Service) Expiry() time.Duration {
	return s.config.Expiry
}
