package user

import (
	"context"
	"testing"
	"time"

	"filmoteka/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) GetCommonFriendIDs(ctx context.Context, userID, otherID int64) ([]int64, error) {
	args := m.Called(ctx, userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func validUser() *domain.User {
	return &domain.User{
		Email:    "joe@example.com",
		Login:    "joe",
		Name:     "Joe",
		Birthday: time.Date(1985, 7, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create_BlankNameDefaultsToLogin(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	var stored *domain.User
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.User)
		}).
		Return(nil)

	u := validUser()
	u.Name = "  "

	created, err := service.Create(context.Background(), u)
	require.NoError(t, err)

	// The substitution happens before the store sees the user.
	require.NotNil(t, stored)
	assert.Equal(t, "joe", stored.Name)
	assert.Equal(t, "joe", created.Name)
}

func TestService_Create_RejectsEmailWithoutAt(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	u := validUser()
	u.Email = "not-an-email"

	_, err := service.Create(context.Background(), u)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsLoginWithWhitespace(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)
	ctx := context.Background()

	u := validUser()
	u.Login = "jo e"
	_, err := service.Create(ctx, u)
	assert.ErrorIs(t, err, domain.ErrValidation)

	u = validUser()
	u.Login = ""
	_, err = service.Create(ctx, u)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_RejectsFutureBirthday(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	u := validUser()
	u.Birthday = time.Now().UTC().AddDate(0, 0, 2)

	_, err := service.Create(context.Background(), u)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Update_AppliesNameDefault(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == "joe"
	})).Return(nil)

	u := validUser()
	u.ID = 7
	u.Name = ""

	_, err := service.Update(context.Background(), u)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_AddFriend_FriendNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	repo.On("ExistsByID", mock.Anything, int64(2)).Return(false, nil)

	err := service.AddFriend(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "AddFriend", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetFriends_UserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("ExistsByID", mock.Anything, int64(9)).Return(false, nil)

	_, err := service.GetFriends(context.Background(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_GetCommonFriends_EmptyOverlap(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	repo.On("GetCommonFriendIDs", mock.Anything, int64(1), int64(2)).Return([]int64{}, nil)

	friends, err := service.GetCommonFriends(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestService_GetCommonFriends_ResolvesUsers(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewService(repo)

	shared := validUser()
	shared.ID = 3

	repo.On("GetCommonFriendIDs", mock.Anything, int64(1), int64(2)).Return([]int64{3}, nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(shared, nil)

	friends, err := service.GetCommonFriends(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, int64(3), friends[0].ID)
}
