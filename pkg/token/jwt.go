// Package token issues and verifies the signed bearer tokens handed out
// by the confirmation-code exchange.
package token

import (
	"errors"
	"time"

	"kinohub/pkg/permission"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID    uuid.UUID
	Username  string
	Role      permission.Role
	Superuser bool
}

type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiryHours int) *Manager {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &Manager{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Issue signs an HS256 token for the given identity.
func (m *Manager) Issue(c Claims) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       c.UserID.String(),
		"username":  c.Username,
		"role":      string(c.Role),
		"superuser": c.Superuser,
		"exp":       now.Add(m.expiry).Unix(),
		"iat":       now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies the signature and expiry and returns the embedded
// identity.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := mapClaims["username"].(string)
	role, _ := mapClaims["role"].(string)
	superuser, _ := mapClaims["superuser"].(bool)

	return &Claims{
		UserID:    userID,
		Username:  username,
		Role:      permission.Role(role),
		Superuser: superuser,
	}, nil
}
