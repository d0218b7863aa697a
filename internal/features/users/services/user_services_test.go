package users_services

import (
	"context"
	"errors"
	"testing"
	"time"

	users_enums "matchme/internal/features/users/enums"
	users_testing "matchme/internal/features/users/testing"
	"matchme/internal/util/availability"
	test_utils "matchme/internal/util/testing"
	"matchme/internal/util/validation"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService() (*UserService, *users_testing.InMemoryUserRepository, *test_utils.CountingLimiter) {
	repository := users_testing.NewInMemoryUserRepository()
	limiter := test_utils.NewCountingLimiter(10)

	return NewUserService(repository, testSecret, limiter), repository, limiter
}

func Test_GetUserFromToken_WithIssuedToken_ReturnsUser(t *testing.T) {
	service, repository, _ := newTestService()
	user := users_testing.NewTestUser("alice")
	repository.Add(user)

	token, err := service.GenerateAccessToken(user)
	require.NoError(t, err)

	resolved, err := service.GetUserFromToken(token.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func Test_GetUserFromToken_WithForeignSecret_ReturnsInvalidToken(t *testing.T) {
	service, repository, _ := newTestService()
	user := users_testing.NewTestUser("alice")
	repository.Add(user)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func Test_GetUserFromToken_WithExpiredToken_ReturnsInvalidToken(t *testing.T) {
	service, repository, _ := newTestService()
	user := users_testing.NewTestUser("alice")
	repository.Add(user)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.GetUserFromToken(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func Test_GetUserFromToken_WithUnknownProfile_ReturnsNotFound(t *testing.T) {
	service, _, _ := newTestService()
	user := users_testing.NewTestUser("ghost")

	token, err := service.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = service.GetUserFromToken(token.Token)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func Test_GetUserFromToken_WithDeactivatedProfile_ReturnsDeactivated(t *testing.T) {
	service, repository, _ := newTestService()
	user := users_testing.NewTestUser("alice")
	user.Status = users_enums.UserStatusInactive
	repository.Add(user)

	token, err := service.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = service.GetUserFromToken(token.Token)
	assert.True(t, errors.Is(err, ErrUserDeactivated))
}

func Test_GetPublicProfiles_SkipsUnknownIDs(t *testing.T) {
	service, repository, _ := newTestService()
	alice := users_testing.NewTestUser("alice")
	repository.Add(alice)

	profiles, err := service.GetPublicProfiles([]uuid.UUID{alice.ID, uuid.New()})
	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[alice.ID].Username)
}

func Test_CheckUsernameAvailability_WithShortName_NeverReachesLimiter(t *testing.T) {
	service, _, limiter := newTestService()

	_, err := service.CheckUsernameAvailability(context.Background(), "10.0.0.1", "ab")

	var validationErr *validation.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "username", validationErr.Field)
	assert.Empty(t, limiter.Calls)
}

func Test_CheckUsernameAvailability_WithHyphen_ReturnsInvalidFormat(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CheckUsernameAvailability(context.Background(), "10.0.0.1", "bad-name")

	var validationErr *validation.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, validation.ErrorInvalidFormat, validationErr.Code)
}

func Test_CheckUsernameAvailability_WithTakenName_ReturnsUnavailable(t *testing.T) {
	service, repository, _ := newTestService()
	repository.Add(users_testing.NewTestUser("alice"))

	result, err := service.CheckUsernameAvailability(context.Background(), "10.0.0.1", "Alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.False(t, result.Available)
}

func Test_CheckUsernameAvailability_AfterLimit_ReturnsTooManyAttempts(t *testing.T) {
	service, _, _ := newTestService()

	for i := 0; i < 10; i++ {
		_, err := service.CheckUsernameAvailability(context.Background(), "10.0.0.1", "free_name")
		require.NoError(t, err)
	}

	_, err := service.CheckUsernameAvailability(context.Background(), "10.0.0.1", "free_name")
	assert.True(t, errors.Is(err, availability.ErrTooManyAttempts))
}
