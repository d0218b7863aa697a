package users_testing

import (
	"errors"
	"sync"
	"time"

	users_enums "matchme/internal/features/users/enums"
	users_models "matchme/internal/features/users/models"

	"github.com/google/uuid"
)

// InMemoryUserRepository implements users_interfaces.UserReader for tests.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*users_models.User
	Err   error
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: map[uuid.UUID]*users_models.User{}}
}

func (r *InMemoryUserRepository) Add(user *users_models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
}

func (r *InMemoryUserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	return r.users[userID], nil
}

func (r *InMemoryUserRepository) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	result := make([]*users_models.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}

	return result, nil
}

func (r *InMemoryUserRepository) IsUsernameTaken(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}

	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}

	return false, nil
}

func NewTestUser(username string) *users_models.User {
	return &users_models.User{
		ID:          uuid.New(),
		Username:    username,
		DisplayName: username,
		Email:       username + "@test.com",
		Status:      users_enums.UserStatusActive,
		CreatedAt:   time.Now().UTC(),
	}
}

// StaticTokenVerifier maps raw tokens to users without any crypto.
type StaticTokenVerifier struct {
	mu     sync.Mutex
	tokens map[string]*users_models.User
}

func NewStaticTokenVerifier() *StaticTokenVerifier {
	return &StaticTokenVerifier{tokens: map[string]*users_models.User{}}
}

// Issue registers user and returns a bearer header value for it.
func (v *StaticTokenVerifier) Issue(user *users_models.User) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	token := "token-" + user.ID.String()
	v.tokens[token] = user

	return "Bearer " + token
}

func (v *StaticTokenVerifier) GetUserFromToken(token string) (*users_models.User, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	user, ok := v.tokens[token]
	if !ok {
		return nil, errors.New("invalid token")
	}

	return user, nil
}
