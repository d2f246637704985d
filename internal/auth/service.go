package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCreds  = errors.New("invalid credentials")
	ErrNotConfigured = errors.New("admin access is not configured")

	jwtSecretOnce    sync.Once
	jwtSecretRuntime []byte
	jwtSecretErr     error
)

func jwtSecretFromEnv() ([]byte, error) {
	jwtSecretOnce.Do(func() {
		secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
		if secret != "" {
			jwtSecretRuntime = []byte(secret)
			return
		}

		buf := make([]byte, 48)
		if _, err := rand.Read(buf); err != nil {
			jwtSecretErr = fmt.Errorf("failed to generate JWT fallback secret: %w", err)
			return
		}

		jwtSecretRuntime = []byte(base64.RawURLEncoding.EncodeToString(buf))
		log.Print("JWT_SECRET is not set; using ephemeral in-memory fallback secret")
	})

	if jwtSecretErr != nil {
		return nil, jwtSecretErr
	}
	if len(jwtSecretRuntime) == 0 {
		return nil, errors.New("JWT secret unavailable")
	}

	return jwtSecretRuntime, nil
}

// Service authenticates the operator. There are no user accounts: a single
// admin secret (preferably a bcrypt hash via ADMIN_SECRET_HASH, or plain via
// ADMIN_SECRET) gates refresh and other mutating admin routes.
type Service struct {
	secretHash  []byte // bcrypt hash, preferred
	plainSecret []byte
	tokenTTL    time.Duration
}

func NewService() *Service {
	s := &Service{tokenTTL: 12 * time.Hour}
	if h := strings.TrimSpace(os.Getenv("ADMIN_SECRET_HASH")); h != "" {
		s.secretHash = []byte(h)
	} else if p := strings.TrimSpace(os.Getenv("ADMIN_SECRET")); p != "" {
		s.plainSecret = []byte(p)
		log.Print("ADMIN_SECRET is set in plain text; prefer ADMIN_SECRET_HASH (bcrypt)")
	}
	return s
}

// Login verifies the operator secret and issues a short-lived token.
func (s *Service) Login(secret string) (string, error) {
	switch {
	case len(s.secretHash) > 0:
		if bcrypt.CompareHashAndPassword(s.secretHash, []byte(secret)) != nil {
			return "", ErrInvalidCreds
		}
	case len(s.plainSecret) > 0:
		if subtle.ConstantTimeCompare(s.plainSecret, []byte(secret)) != 1 {
			return "", ErrInvalidCreds
		}
	default:
		return "", ErrNotConfigured
	}

	key, err := jwtSecretFromEnv()
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return token.SignedString(key)
}

// VerifyToken checks a bearer token issued by Login.
func VerifyToken(tokenString string) error {
	key, err := jwtSecretFromEnv()
	if err != nil {
		return err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidCreds
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidCreds
	}
	sub, err := claims.GetSubject()
	if err != nil || sub != "admin" {
		return ErrInvalidCreds
	}
	return nil
}
