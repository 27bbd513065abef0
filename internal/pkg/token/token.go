package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Pair is the access/refresh token pair issued at registration and login.
type Pair struct {
	Access  string
	Refresh string
}

// Claims is the verified content of a token.
type Claims struct {
	UserID    uuid.UUID
	TokenType string
	JTI       string
}

// Service signs and verifies HS256 tokens. It is stateless: a signed
// token stays valid until its expiry, there is no revocation list.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints a fresh access/refresh pair bound to the user.
func (s *Service) IssuePair(userID uuid.UUID) (*Pair, error) {
	access, err := s.sign(userID, TypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(userID, TypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

func (s *Service) sign(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"token_type": tokenType,
		"jti":        uuid.New().String(),
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string (signature and expiry) and
// resolves it back to its claims.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userIDStr, _ := mapClaims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokenType, _ := mapClaims["token_type"].(string)
	jti, _ := mapClaims["jti"].(string)

	return &Claims{
		UserID:    userID,
		TokenType: tokenType,
		JTI:       jti,
	}, nil
}
