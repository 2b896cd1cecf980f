package film

import (
	"context"
	"strings"
	"testing"
	"time"

	"filmoteka/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) ListAll(ctx context.Context) ([]domain.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) Create(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmRepository) Update(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) AddLike(ctx context.Context, filmID, userID int64) error {
	args := m.Called(ctx, filmID, userID)
	return args.Error(0)
}

func (m *MockFilmRepository) RemoveLike(ctx context.Context, filmID, userID int64) (bool, error) {
	args := m.Called(ctx, filmID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) LikeCount(ctx context.Context, filmID int64) (int64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFilmRepository) GetTop(ctx context.Context, limit int) ([]domain.Film, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

type MockUserChecker struct {
	mock.Mock
}

func (m *MockUserChecker) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validFilm() *domain.Film {
	return &domain.Film{
		Name:        "The Matrix",
		Description: "A hacker learns the truth",
		ReleaseDate: time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
		Duration:    136,
	}
}

func TestService_Create_RejectsBlankName(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))

	f := validFilm()
	f.Name = "   "

	_, err := service.Create(context.Background(), f)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	films.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DescriptionBoundary(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))
	ctx := context.Background()

	// 201 characters fails.
	f := validFilm()
	f.Description = strings.Repeat("x", 201)
	_, err := service.Create(ctx, f)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Exactly 200 passes validation and reaches the store.
	f = validFilm()
	f.Description = strings.Repeat("x", 200)
	films.On("Create", mock.Anything, f).Return(f, nil)

	_, err = service.Create(ctx, f)
	require.NoError(t, err)
	films.AssertExpectations(t)
}

func TestService_Create_ReleaseDateBoundary(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))
	ctx := context.Background()

	// Strictly before 1895-12-28 fails.
	f := validFilm()
	f.ReleaseDate = time.Date(1895, 12, 27, 0, 0, 0, 0, time.UTC)
	_, err := service.Create(ctx, f)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Exactly 1895-12-28 is accepted.
	f = validFilm()
	f.ReleaseDate = time.Date(1895, 12, 28, 0, 0, 0, 0, time.UTC)
	films.On("Create", mock.Anything, f).Return(f, nil)

	_, err = service.Create(ctx, f)
	require.NoError(t, err)

	// Future release dates fail.
	f = validFilm()
	f.ReleaseDate = time.Now().UTC().AddDate(1, 0, 0)
	_, err = service.Create(ctx, f)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_RejectsNonPositiveDuration(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))

	f := validFilm()
	f.Duration = 0

	_, err := service.Create(context.Background(), f)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_GetByID_NotFound(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))

	films.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	_, err := service.GetByID(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AddLike_FilmNotFound(t *testing.T) {
	films := new(MockFilmRepository)
	users := new(MockUserChecker)
	service := NewService(films, users)

	films.On("ExistsByID", mock.Anything, int64(1)).Return(false, nil)

	err := service.AddLike(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	users.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestService_AddLike_UserNotFound(t *testing.T) {
	films := new(MockFilmRepository)
	users := new(MockUserChecker)
	service := NewService(films, users)

	films.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(false, nil)

	err := service.AddLike(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	films.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AddLike_Success(t *testing.T) {
	films := new(MockFilmRepository)
	users := new(MockUserChecker)
	service := NewService(films, users)

	films.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	films.On("AddLike", mock.Anything, int64(1), int64(2)).Return(nil)

	err := service.AddLike(context.Background(), 1, 2)
	require.NoError(t, err)
	films.AssertExpectations(t)
}

func TestService_RemoveLike_ReportsMissing(t *testing.T) {
	films := new(MockFilmRepository)
	users := new(MockUserChecker)
	service := NewService(films, users)

	films.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	users.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
	films.On("RemoveLike", mock.Anything, int64(1), int64(2)).Return(false, nil)

	removed, err := service.RemoveLike(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestService_GetTop_RejectsNonPositiveCount(t *testing.T) {
	films := new(MockFilmRepository)
	service := NewService(films, new(MockUserChecker))

	_, err := service.GetTop(context.Background(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	films.AssertNotCalled(t, "GetTop", mock.Anything, mock.Anything)
}
