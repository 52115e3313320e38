package service

import (
	"testing"
	"time"

	"iphone_store/internal/domain/user/model"
	"iphone_store/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]model.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) RoleExists(roleID uint) (bool, error) {
	args := m.Called(roleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetRoleByName(name string) (*model.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func testTokens() *token.Manager {
	return token.NewManager("unit-test-secret-0123456789abcdefghij", time.Hour)
}

func hashedUser(password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		UserName:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		RoleID:       model.RoleIDUser,
	}
	u.ID = 3
	u.IsActive = true
	return u
}

func TestRegister(t *testing.T) {
	t.Run("New user gets the default User role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		mockRepo.On("EmailExists", "bob@example.com").Return(false, nil)
		mockRepo.On("GetRoleByName", model.RoleNameUser).Return(&model.Role{ID: 2, RoleName: model.RoleNameUser}, nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

		user, err := service.Register(RegisterInput{
			UserName: "bob",
			Email:    " Bob@Example.com ",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "bob@example.com", user.Email)
		assert.Equal(t, uint(2), user.RoleID)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		mockRepo.On("EmailExists", "alice@example.com").Return(true, nil)

		_, err := service.Register(RegisterInput{
			UserName: "alice2",
			Email:    "alice@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("Unknown role id is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		mockRepo.On("EmailExists", "bob@example.com").Return(false, nil)
		mockRepo.On("RoleExists", uint(9)).Return(false, nil)

		_, err := service.Register(RegisterInput{
			UserName: "bob",
			Email:    "bob@example.com",
			Password: "secret123",
			RoleID:   9,
		})

		assert.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Correct password returns a verifiable token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		tokens := testTokens()
		service := NewUserService(mockRepo, tokens)

		mockRepo.On("GetByEmail", "alice@example.com").Return(hashedUser("secret123"), nil)

		result, err := service.Login("alice@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, uint(3), result.UserID)
		assert.Equal(t, model.RoleNameUser, result.Role)

		claims, err := tokens.Parse(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), claims.UserID)
	})

	t.Run("Wrong password bumps the failure counter", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		user := hashedUser("secret123")
		mockRepo.On("GetByEmail", "alice@example.com").Return(user, nil)
		mockRepo.On("Update", user).Return(nil)

		_, err := service.Login("alice@example.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Equal(t, 1, user.FailedLoginCount)
	})

	t.Run("Unknown email maps to user not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login("ghost@example.com", "whatever")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Successful login resets the failure counter", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, testTokens())

		user := hashedUser("secret123")
		user.FailedLoginCount = 4
		mockRepo.On("GetByEmail", "alice@example.com").Return(user, nil)
		mockRepo.On("Update", user).Return(nil)

		_, err := service.Login("alice@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, 0, user.FailedLoginCount)
	})
}

func TestDeactivateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, testTokens())

	user := hashedUser("secret123")
	mockRepo.On("GetByID", uint(3)).Return(user, nil)
	mockRepo.On("Update", mock.MatchedBy(func(u *model.User) bool {
		return !u.IsActive
	})).Return(nil)

	err := service.DeactivateUser(3)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
