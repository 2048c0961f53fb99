package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
	ErrMissingToken = errors.New("missing authorization token")
	ErrWrongType    = errors.New("token has wrong type")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

const issuer = "smart-sales-api"

// Subject is the identity data embedded into issued tokens.
type Subject struct {
	UserID      uuid.UUID
	Username    string
	Email       string
	FirstName   string
	LastName    string
	IsStaff     bool
	IsSuperuser bool
}

// Claims represents the JWT claims structure
type Claims struct {
	TokenType   TokenType `json:"token_type"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	jwt.RegisteredClaims
}

// Pair is an access/refresh credential pair.
type Pair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair creates a fresh refresh token and an access token for the same subject.
func (m *Manager) IssuePair(sub Subject) (*Pair, error) {
	refresh, err := m.generate(sub, RefreshToken, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	access, err := m.generate(sub, AccessToken, m.accessTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{Refresh: refresh, Access: access}, nil
}

// IssueAccess creates a new access token from the claims of a refresh token.
func (m *Manager) IssueAccess(refresh *Claims) (string, error) {
	return m.generate(refresh.Identity(), AccessToken, m.accessTTL)
}

func (m *Manager) generate(sub Subject, typ TokenType, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		TokenType:   typ,
		UserID:      sub.UserID,
		Username:    sub.Username,
		Email:       sub.Email,
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		IsStaff:     sub.IsStaff,
		IsSuperuser: sub.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates signature, expiry and token type.
func (m *Manager) Parse(tokenString string, typ TokenType) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(issuer))

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != typ {
		return nil, ErrWrongType
	}
	return claims, nil
}

// Identity recovers the subject carried by the claims.
func (c *Claims) Identity() Subject {
	return Subject{
		UserID:      c.UserID,
		Username:    c.Username,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		IsStaff:     c.IsStaff,
		IsSuperuser: c.IsSuperuser,
	}
}
