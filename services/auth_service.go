package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/models"
	"github.com/sweetshop-api/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login and token lifecycle
type AuthService struct {
	profileRepo *repositories.ProfileRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		profileRepo: repositories.NewProfileRepository(),
	}
}

// Register creates a new profile. The role is always user: elevation
// goes through the dedicated role endpoint, never through signup.
func (s *AuthService) Register(req dto.RegisterRequest) (models.Profile, error) {
	exists, err := s.profileRepo.ExistsByEmail(req.Email)
	if err != nil {
		return models.Profile{}, err
	}
	if exists {
		return models.Profile{}, fmt.Errorf("%w: email already registered", ErrInvalidRequest)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         models.RoleUser,
	}

	return s.profileRepo.Create(profile)
}

// Login authenticates a profile and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	token, expiresAt, err := GenerateToken(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		Profile:   profile,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile retrieves a profile by ID
func (s *AuthService) GetProfile(id string) (models.Profile, error) {
	return s.profileRepo.FindByID(id)
}

// GenerateToken generates a new JWT token for a profile
func GenerateToken(userID, email, role string) (string, time.Time, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
