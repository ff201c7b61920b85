package auth

import (
	"context"
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"
)

// TokenCodec signs usernames into opaque bearer tokens and verifies them back.
// The signing secret is injected once at construction; tokens carry only the
// subject claim and never expire.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &TokenCodec{secret: []byte(secret)}, nil
}

// Sign produces an HS256-signed token whose subject is the given username.
func (c *TokenCodec) Sign(username string) (string, error) {
	if username == "" {
		return "", errors.New("empty subject")
	}
	claims := jwt.RegisteredClaims{Subject: username}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates the token's signature and returns the subject username.
// It fails closed: malformed tokens, wrong signatures, unexpected algorithms
// and missing subjects are all errors.
func (c *TokenCodec) Verify(tokenStr string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return "", err
	}
	claims, _ := tok.Claims.(*jwt.RegisteredClaims)
	if claims == nil || claims.Subject == "" {
		return "", errors.New("invalid claims")
	}
	return claims.Subject, nil
}

// Principal represents the authenticated caller decoded from a token.
type Principal struct {
	Username string
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

// ParseFromMD extracts the bearer token from gRPC metadata, verifies it and
// returns the Principal. A bare token without the "Bearer " prefix is accepted
// too, since existing clients send it that way.
func ParseFromMD(ctx context.Context, codec *TokenCodec) (*Principal, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.New("missing metadata")
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return nil, errors.New("missing authorization")
	}
	tokenStr := vals[0]
	if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	username, err := codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	return &Principal{Username: username}, nil
}
