package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrTokenInvalid is the only verification failure. Malformed, expired and
// badly signed tokens are indistinguishable to callers.
var ErrTokenInvalid = errors.New("token invalid")

type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Issue(userID uuid.UUID, role string) (string, error)
	Verify(tokenString string) (Claims, error)
}

type HMACService struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration

	now func() time.Time
}

func NewHMACService(secret, issuer string, expiresIn time.Duration) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		issuer:    issuer,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *HMACService) Issue(userID uuid.UUID, role string) (string, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 {
		return "", ErrTokenInvalid
	}
	if userID == uuid.Nil || role == "" {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.expiresIn)),
			ID:        uuid.NewString(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (Claims, error) {
	if tokenString == "" || len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}
	p := jwtlib.NewParser(opts...)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == uuid.Nil || c.Role == "" || c.Subject != c.UserID.String() {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
