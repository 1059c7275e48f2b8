package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/domains/user/repository"
	"bookshelf-api/pkg/jwt"
)

type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.User
}

func newMemoryRepository() repository.Repository {
	return &memoryRepository{
		nextID: 1,
		byID:   make(map[int64]model.User),
	}
}

func (m *memoryRepository) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return model.ErrEmailAlreadyExists
		}
	}

	u.ID = m.nextID
	m.nextID++
	m.byID[u.ID] = *u
	return nil
}

func (m *memoryRepository) FindByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (m *memoryRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func newTestService() (ServiceInterface, *jwt.Manager) {
	manager := jwt.NewManager("user-service-test", 15*time.Minute, time.Hour)
	return NewUserService(newMemoryRepository(), manager), manager
}

func registerRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Email:    "reader@example.com",
		Password: "correct-horse-9",
		FullName: "Avid Reader",
	}
}

func Test_Register_CreatesAccount(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "reader@example.com", dto.Email)
}

func Test_Register_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
}

func Test_Register_RejectsWeakPayload(t *testing.T) {
	svc, _ := newTestService()

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)

	req = registerRequest()
	req.Email = "not-an-email"
	_, err = svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func Test_Login_IssuesUsableAccessToken(t *testing.T) {
	svc, manager := newTestService()
	ctx := context.Background()

	dto, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, model.LoginRequest{
		Email:    "reader@example.com",
		Password: "correct-horse-9",
	})
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, claims.UserID, "token identity must match the account")
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func Test_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{
		Email:    "reader@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func Test_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func Test_Refresh_RotatesTokens(t *testing.T) {
	svc, manager := newTestService()
	ctx := context.Background()

	dto, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	login, err := svc.Login(ctx, model.LoginRequest{
		Email:    "reader@example.com",
		Password: "correct-horse-9",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, claims.UserID)
}

func Test_Refresh_RejectsAccessToken(t *testing.T) {
	svc, manager := newTestService()

	token, err := manager.GenerateAccessToken(1, "reader@example.com")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
