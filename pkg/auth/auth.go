package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	Enabled  bool          `yaml:"enabled" envconfig:"AUTH_ENABLED"`
	Secret   string        `yaml:"secret" envconfig:"AUTH_SECRET" default:"library-secret"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{
		key: []byte(cfg.Secret),
		ttl: cfg.TokenTTL,
		now: time.Now,
	}
}

// NewToken signs an HS256 token for username and returns it with its expiry.
func (i *Issuer) NewToken(username string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "SignedString")
	}
	return token, expiresAt, nil
}

func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type userNameKey struct{}

func SetUserName(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userNameKey{}, username)
}

func GetUserName(ctx context.Context) (string, error) {
	username, ok := ctx.Value(userNameKey{}).(string)
	if !ok || username == "" {
		return "", errors.New("username is empty")
	}
	return username, nil
}
