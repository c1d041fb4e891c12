package services

import (
	"context"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/domain"
	"github.com/talentbridge/hr-suite/visitor-management-service/internal/core/ports"
)

const sessionTTL = 24 * time.Hour

type AuthService struct {
	employeeRepo ports.EmployeeRepository
	privateKey   *rsa.PrivateKey
	sessions     ports.SessionStore
}

func NewAuthService(
	employeeRepo ports.EmployeeRepository,
	privateKey *rsa.PrivateKey,
	sessions ports.SessionStore,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		privateKey:   privateKey,
		sessions:     sessions,
	}
}

// Login verifies the credentials against the stored bcrypt hash and returns
// a signed session token. The token is also stored in redis so logout can
// invalidate it before expiry.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if !employee.IsActive || employee.Status != domain.StatusApproved {
		return "", errors.New("account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":  employee.ID.Hex(),
		"role": employee.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Set(ctx, ports.SessionKey(employee.ID.Hex()), signed, sessionTTL).Err(); err != nil {
		return "", err
	}

	return signed, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Del(ctx, ports.SessionKey(userID)).Err()
}
