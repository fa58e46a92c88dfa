package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

// AuthService is the session collaborator: it turns credentials into signed
// tokens and tokens back into an authenticated (user, role) pair.
type AuthService struct {
	DB        *gorm.DB
	log       *logger.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		log:       log.With("service", "AuthService"),
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := models.RoleJobSeeker
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict(apperr.CodeValidation, "email is already registered")
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.New(http.StatusUnauthorized, apperr.CodeUnauthorized,
				errors.New("invalid email or password"))
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apperr.New(http.StatusUnauthorized, apperr.CodeUnauthorized,
			errors.New("invalid email or password"))
	}
	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ParseToken verifies the signature and expiry and returns the session's
// user id and role.
func (s *AuthService) ParseToken(tokenString string) (uuid.UUID, models.Role, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", apperr.New(http.StatusUnauthorized, apperr.CodeUnauthorized,
			errors.New("invalid or expired token"))
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", apperr.New(http.StatusUnauthorized, apperr.CodeUnauthorized,
			errors.New("invalid token subject"))
	}
	return userID, models.Role(claims.Role), nil
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokenTTL }
