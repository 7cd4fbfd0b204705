package service

import (
	"encoding/json"
	"strings"
	"time"

	"savr/auth-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Phone string          `json:"phone"`
	Role  domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs the placeholder token handed out when the client starts
// a login without one.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (i TokenIssuer) Issue(phone string, role domain.UserRole) (string, error) {
	now := time.Now()
	if i.Now != nil {
		now = i.Now()
	}
	ttl := i.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := Claims{
		Phone: phone,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
}

// RoleFromToken guesses the role a backend would grant for token. Marker
// words in the raw token win; otherwise a JWT payload's role (or type) claim
// is read without verifying the signature. Anything else is a diner.
func RoleFromToken(token string) domain.UserRole {
	if token == "" {
		return domain.RoleUser
	}
	lower := strings.ToLower(token)
	if strings.Contains(lower, "restaurant") {
		return domain.RoleRestaurant
	}
	if strings.Contains(lower, "user") {
		return domain.RoleUser
	}
	if strings.Count(token, ".") != 2 {
		return domain.RoleUser
	}

	// Only the payload matters; the header may be anything and the payload
	// may use either base64 alphabet, padded or not.
	segment := strings.NewReplacer("+", "-", "/", "_").Replace(strings.Split(token, ".")[1])
	raw, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(strings.TrimRight(segment, "="))
	if err != nil {
		return domain.RoleUser
	}
	claims := map[string]interface{}{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return domain.RoleUser
	}
	value, ok := claims["role"]
	if !ok || value == nil {
		value = claims["type"]
	}
	if s, ok := value.(string); ok && strings.ToLower(s) == string(domain.RoleRestaurant) {
		return domain.RoleRestaurant
	}
	return domain.RoleUser
}
