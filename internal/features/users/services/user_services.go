package users_services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	users_dto "matchme/internal/features/users/dto"
	users_interfaces "matchme/internal/features/users/interfaces"
	users_models "matchme/internal/features/users/models"
	"matchme/internal/util/availability"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidClaims   = errors.New("invalid token claims")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserDeactivated = errors.New("user account is deactivated")
)

var UsernameRules = availability.Rules{
	Field:       "username",
	MinLength:   3,
	MaxLength:   30,
	Pattern:     regexp.MustCompile(`^[a-z0-9_]+$`),
	PatternHint: "username may contain only lowercase letters, digits and underscores",
}

const accessTokenTTL = 30 * 24 * time.Hour

type UserService struct {
	userRepository  users_interfaces.UserReader
	jwtSecret       string
	usernameChecker *availability.Checker
}

func NewUserService(
	userRepository users_interfaces.UserReader,
	jwtSecret string,
	usernameLimiter availability.AttemptLimiter,
) *UserService {
	return &UserService{
		userRepository:  userRepository,
		jwtSecret:       jwtSecret,
		usernameChecker: availability.NewChecker(usernameLimiter, UsernameRules),
	}
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidClaims
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidClaims
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActiveUser() {
		return nil, ErrUserDeactivated
	}

	return user, nil
}

// GenerateAccessToken issues a token in the same shape the auth provider does.
// Used by tooling and tests.
func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.AccessTokenDTO, error) {
	now := time.Now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": now.Add(accessTokenTTL).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.AccessTokenDTO{
		UserID: user.ID,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

// GetPublicProfiles returns profiles keyed by id; unknown ids are skipped.
func (s *UserService) GetPublicProfiles(userIDs []uuid.UUID) (map[uuid.UUID]users_dto.PublicProfileDTO, error) {
	users, err := s.userRepository.GetUsersByIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	profiles := make(map[uuid.UUID]users_dto.PublicProfileDTO, len(users))
	for _, user := range users {
		profiles[user.ID] = users_dto.PublicProfileDTO{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		}
	}

	return profiles, nil
}

func (s *UserService) CheckUsernameAvailability(
	ctx context.Context,
	clientIP string,
	username string,
) (*users_dto.UsernameAvailabilityResponseDTO, error) {
	result, err := s.usernameChecker.Check(ctx, clientIP, username, s.userRepository.IsUsernameTaken)
	if err != nil {
		return nil, err
	}

	return &users_dto.UsernameAvailabilityResponseDTO{
		Username:  result.Candidate,
		Available: result.Available,
	}, nil
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		IsActive:    user.IsActiveUser(),
		CreatedAt:   user.CreatedAt,
	}
}
