package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/hr-core/hr-core-go/internal/domain/auth"
)

type Service interface {
	// GenerateSessionToken issues a token carrying the employee identity,
	// the role derived at login and the module allow-list. The role is fixed
	// for the token's lifetime.
	GenerateSessionToken(employeeID string, role auth.Role, modules []string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	Revoke(token string)
	IsRevoked(token string) bool
}

type JWTService struct {
	secretKey         string
	sessionExpiration string
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpiration string) Service {
	return &JWTService{
		secretKey:         secretKey,
		sessionExpiration: sessionExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(employeeID string, role auth.Role, modules []string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"role":        string(role),
		"modules":     modules,
		"type":        "session",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) Revoke(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
