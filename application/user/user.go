package user

import (
	"context"
	"fmt"
	"time"

	"github.com/emirhly/marketplace/cmd/config"
	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	redisrepo "github.com/emirhly/marketplace/repository/redis"
	userrepo "github.com/emirhly/marketplace/repository/user"
	"github.com/emirhly/marketplace/utils/errors"
	"github.com/emirhly/marketplace/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (string, *model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	Me(ctx context.Context, userID string) (*model.UserEntity, error)
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
	GetUser(ctx context.Context, userID string) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, authUserID, targetUserID string, req *model.UserUpdateRequest) error
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if the user id is already taken
	existingUser, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Error("[Register] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUserIDExists)
	}

	// Check if the phone number is already registered
	existingUser, err = s.userRepo.GetByPhone(ctx, req.UserPhone)
	if err != nil {
		logger.Error("[Register] err userRepo.GetByPhone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrPhoneExists)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] err hashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserCity:     req.UserCity,
		UserAddress:  req.UserAddress,
		UserPhone:    req.UserPhone,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userEntity.UserID,
	}, nil
}

// Login verifies credentials and returns the signed token plus the response
// body. Unknown user and wrong password both map to the same generic error so
// credentials cannot be enumerated.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (string, *model.LoginResponse, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Error("[Login] err userRepo.GetByID", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), truncatePassword(req.Password)); err != nil {
		return "", nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, jti, err := s.generateJWT(user.UserID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.UserID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return "", nil, errors.SetCustomError(constant.ErrInternal)
	}

	return token, &model.LoginResponse{
		Message: "Login successful",
		UserID:  user.UserID,
	}, nil
}

// Logout drops the server-side session for the token, when one can still be
// recovered from it. The cookie is cleared by the transport regardless.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil
	}

	if claims.ID != "" {
		if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
			logger.Warn("[Logout] err DeleteSession", zap.String("error", err.Error()))
		}
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}

	userID := claims.Subject
	if userID == "" {
		return "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check the server-side session
	sessionUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != userID {
		return "", fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) Me(ctx context.Context, userID string) (*model.UserEntity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("[Me] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *UserAppImpl) GetUser(ctx context.Context, userID string) (*model.UserEntity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("[GetUser] err userRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

// UpdateProfile is self-only: the token subject must match the target id.
func (s *UserAppImpl) UpdateProfile(ctx context.Context, authUserID, targetUserID string, req *model.UserUpdateRequest) error {
	if authUserID != targetUserID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	update := &model.UserProfileUpdate{
		UserName:    req.UserName,
		UserCity:    req.UserCity,
		UserAddress: req.UserAddress,
		UserPhone:   req.UserPhone,
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		hashed, err := hashPassword(*req.NewPassword)
		if err != nil {
			logger.Error("[UpdateProfile] err hashPassword", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		update.PasswordHash = &hashed
	}

	if err := s.userRepo.Update(ctx, targetUserID, update); err != nil {
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// truncatePassword caps the input at bcrypt's 72 byte limit.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}
