// ABOUTME: Session token codec issuing and verifying HS256 signed JWTs
// ABOUTME: The signing algorithm is pinned during decode; the token's alg header is never trusted

package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/crm/internal/store"
)

// Token errors. Expired and invalid are distinct kinds because callers react
// differently: expired prompts a re-login, invalid is treated as potential
// tampering and the stored session is purged.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// DefaultTokenTTL is the default lifetime of a session token. Expiry is
// absolute, not sliding.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the verified claim set carried by a session token.
type Claims struct {
	EmployeeID int64
	Role       store.Department // department at issuance
	ExpiresAt  time.Time
}

// TokenCodec signs and verifies compact session tokens using a symmetric
// shared secret.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a token codec with the given signing secret.
func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Issue mints a signed token embedding the employee ID, department and an
// absolute expiry ttl from now.
func (c *TokenCodec) Issue(employeeID int64, role store.Department, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(employeeID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token signature and expiry and extracts the claims.
// Returns ErrTokenExpired when the expiry has passed, ErrTokenInvalid when
// the signature does not verify or the payload is malformed.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Pin the signing method; never trust the alg header in the token
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrTokenInvalid)
	}

	employeeID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed sub claim", ErrTokenInvalid)
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok || roleStr == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrTokenInvalid)
	}

	role, err := store.ParseDepartment(roleStr)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed role claim", ErrTokenInvalid)
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing exp claim", ErrTokenInvalid)
	}

	return &Claims{
		EmployeeID: employeeID,
		Role:       role,
		ExpiresAt:  exp.Time,
	}, nil
}
