package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/utils"
)

// UserStore 的 mock 实现
type userStoreMock struct {
	mock.Mock
}

func (m *userStoreMock) Create(name, email, password, role string) (*model.User, error) {
	args := m.Called(name, email, password, role)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userStoreMock) CreateBootstrapAdmin(name, email, password string) (*model.User, error) {
	args := m.Called(name, email, password)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *userStoreMock) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(store UserStore) *AuthService {
	return NewAuthService(store, "test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterInput
		storeUser *model.User
		storeErr  error
		wantErr   error
		callStore bool
	}{
		{
			name:      "valid registration",
			input:     RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			storeUser: &model.User{ID: 1, Name: "Ana", Email: "ana@example.com", Role: model.RoleUser},
			callStore: true,
		},
		{
			name:    "invalid email",
			input:   RegisterInput{Name: "Ana", Email: "not-an-email", Password: "secret123"},
			wantErr: repository.ErrValidation,
		},
		{
			name:    "password too short",
			input:   RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "abc"},
			wantErr: repository.ErrValidation,
		},
		{
			name:    "missing name",
			input:   RegisterInput{Email: "ana@example.com", Password: "secret123"},
			wantErr: repository.ErrValidation,
		},
		{
			name:      "duplicate email",
			input:     RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			storeErr:  repository.ErrDuplicateEmail,
			wantErr:   repository.ErrDuplicateEmail,
			callStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(userStoreMock)
			if tt.callStore {
				store.On("Create", tt.input.Name, tt.input.Email, tt.input.Password, model.RoleUser).
					Return(tt.storeUser, tt.storeErr)
			}

			svc := newTestService(store)
			user, err := svc.Register(tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.RoleUser, user.Role)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	account := &model.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	t.Run("correct credentials", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("FindByEmail", "ana@example.com").Return(account, nil)

		svc := newTestService(store)
		su, token, err := svc.Login("ana@example.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, account.ID, su.ID)
		assert.Equal(t, account.Name, su.Name)
		assert.Equal(t, account.Role, su.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("FindByEmail", "ana@example.com").Return(account, nil)

		svc := newTestService(store)
		su, token, err := svc.Login("ana@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, su)
		assert.Empty(t, token)
	})

	t.Run("unknown email returns same error", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("FindByEmail", "ghost@example.com").Return(nil, repository.ErrNotFound)

		svc := newTestService(store)
		_, _, err := svc.Login("ghost@example.com", "secret123")

		// 与密码错误不可区分，避免账号枚举
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("FindByEmail", "ana@example.com").Return(nil, repository.ErrStorage)

		svc := newTestService(store)
		_, _, err := svc.Login("ana@example.com", "secret123")

		assert.ErrorIs(t, err, repository.ErrStorage)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_CreateBootstrapAdmin(t *testing.T) {
	t.Run("first admin", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("CreateBootstrapAdmin", "Root", "root@example.com", "secret123").
			Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)

		svc := newTestService(store)
		user, err := svc.CreateBootstrapAdmin(RegisterInput{Name: "Root", Email: "root@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		store.AssertExpectations(t)
	})

	t.Run("already initialized", func(t *testing.T) {
		store := new(userStoreMock)
		store.On("CreateBootstrapAdmin", "Root", "root@example.com", "secret123").
			Return(nil, repository.ErrAlreadyInitialized)

		svc := newTestService(store)
		_, err := svc.CreateBootstrapAdmin(RegisterInput{Name: "Root", Email: "root@example.com", Password: "secret123"})

		assert.ErrorIs(t, err, repository.ErrAlreadyInitialized)
	})

	t.Run("invalid input skips store", func(t *testing.T) {
		store := new(userStoreMock)

		svc := newTestService(store)
		_, err := svc.CreateBootstrapAdmin(RegisterInput{Name: "Root", Email: "root@example.com", Password: "abc"})

		assert.ErrorIs(t, err, repository.ErrValidation)
		store.AssertNotCalled(t, "CreateBootstrapAdmin", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_CreateAdmin(t *testing.T) {
	store := new(userStoreMock)
	store.On("Create", "Second", "second@example.com", "secret123", model.RoleAdmin).
		Return(&model.User{ID: 2, Role: model.RoleAdmin}, nil)

	svc := newTestService(store)
	user, err := svc.CreateAdmin(RegisterInput{Name: "Second", Email: "second@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	store.AssertExpectations(t)
}

func TestAuthService_LoginNeverReturnsPlaintext(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	store := new(userStoreMock)
	store.On("FindByEmail", "ana@example.com").Return(&model.User{
		ID: 1, Email: "ana@example.com", Name: "Ana", PasswordHash: hash, Role: model.RoleUser,
	}, nil)

	svc := newTestService(store)
	_, token, err := svc.Login("ana@example.com", "secret123")
	require.NoError(t, err)

	assert.NotContains(t, token, "secret123")
}
