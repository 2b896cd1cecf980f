package user

import (
	"context"
	"strings"
	"time"
	"unicode"

	"filmoteka/internal/domain"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &domain.NotFoundError{Kind: "user", ID: id}
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := validateUser(u); err != nil {
		return nil, err
	}
	applyNameDefault(u)
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := validateUser(u); err != nil {
		return nil, err
	}
	applyNameDefault(u)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete is idempotent: deleting an unknown id reports false, not an error.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.users.Delete(ctx, id)
}

// AddFriend records a directed friendship: friendID shows up in userID's
// friend list, the reverse direction stays untouched.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	return s.users.AddFriend(ctx, userID, friendID)
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return false, err
	}
	return s.users.RemoveFriend(ctx, userID, friendID)
}

func (s *Service) GetFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Kind: "user", ID: userID}
	}

	ids, err := s.users.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, ids)
}

// GetCommonFriends returns the intersection of both users' friend sets.
// Symmetric in its arguments, and empty overlap is not an error.
func (s *Service) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	ids, err := s.users.GetCommonFriendIDs(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, ids)
}

func (s *Service) resolveUsers(ctx context.Context, ids []int64) ([]domain.User, error) {
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u != nil {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (s *Service) checkUsers(ctx context.Context, userID, friendID int64) error {
	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "user", ID: userID}
	}

	ok, err = s.users.ExistsByID(ctx, friendID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{Kind: "user", ID: friendID}
	}
	return nil
}

// applyNameDefault substitutes the login for a blank name before the user
// is persisted. Storage-level invariant, not a display fallback.
func applyNameDefault(u *domain.User) {
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
}

func validateUser(u *domain.User) error {
	if !strings.Contains(u.Email, "@") {
		return &domain.ValidationError{Field: "email", Rule: "must contain @"}
	}
	if strings.TrimSpace(u.Login) == "" {
		return &domain.ValidationError{Field: "login", Rule: "must not be empty"}
	}
	if strings.ContainsFunc(u.Login, unicode.IsSpace) {
		return &domain.ValidationError{Field: "login", Rule: "must not contain whitespace"}
	}
	if u.Birthday.After(endOfToday()) {
		return &domain.ValidationError{Field: "birthday", Rule: "must not be in the future"}
	}
	return nil
}

func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
