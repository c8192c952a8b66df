package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/pkg/jwt"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCaseForTest(profileRepo *MockProfileRepository) AuthUseCase {
	return NewAuthUseCase(profileRepo, jwt.NewService("test-secret-key"), testRedis(), logger.New())
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(nil, errs.ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.Email == "maria@example.com" &&
			p.Role == entity.RoleUser &&
			p.Subscription == entity.SubscriptionInactive &&
			p.Password != "secret123" // never stored in the clear
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Profile).ID = "user-123"
	}).Return(nil)

	session, token, err := uc.Register(context.Background(), "maria@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", session.ID)
	assert.Equal(t, "maria", session.Name)
	mockRepo.AssertExpectations(t)
}

func TestRegister_WeakPassword(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	_, _, err := uc.Register(context.Background(), "maria@example.com", "123")

	var authErr *errs.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.AuthWeakPassword, authErr.Kind)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	existing := &entity.Profile{ID: "user-123", Email: "maria@example.com"}
	mockRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(existing, nil)

	_, _, err := uc.Register(context.Background(), "maria@example.com", "secret123")

	var authErr *errs.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.AuthAlreadyRegistered, authErr.Kind)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRegister_RepoDown(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(nil, errors.New("connection refused"))

	_, _, err := uc.Register(context.Background(), "maria@example.com", "secret123")

	var authErr *errs.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.AuthConnectivity, authErr.Kind)
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	profile := &entity.Profile{
		ID:           "user-123",
		Email:        "maria@example.com",
		Password:     hashedPassword(t, "secret123"),
		Role:         entity.RoleAdmin,
		Subscription: entity.SubscriptionActive,
	}
	mockRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(profile, nil)

	session, token, err := uc.Login(context.Background(), "maria@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.Equal(t, entity.SubscriptionActive, session.Subscription)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	profile := &entity.Profile{
		ID:       "user-123",
		Email:    "maria@example.com",
		Password: hashedPassword(t, "secret123"),
	}
	mockRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(profile, nil)

	_, _, err := uc.Login(context.Background(), "maria@example.com", "wrong")

	var authErr *errs.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.AuthInvalidCredentials, authErr.Kind)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	uc := newAuthUseCaseForTest(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errs.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "ghost@example.com", "secret123")

	var authErr *errs.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.AuthInvalidCredentials, authErr.Kind)
}

func TestGetSession_RebuiltFromProfile(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	// The cache is unreachable, so the snapshot must be rebuilt from the
	// profile row.
	uc := newAuthUseCaseForTest(mockRepo)

	profile := &entity.Profile{
		ID:           "user-123",
		Email:        "maria@example.com",
		Role:         entity.RoleEditor,
		Subscription: entity.SubscriptionInactive,
	}
	mockRepo.On("GetByID", mock.Anything, "user-123").Return(profile, nil)

	session, err := uc.GetSession(context.Background(), "user-123")

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, session.Role)
	assert.Equal(t, "maria", session.Name)
}
