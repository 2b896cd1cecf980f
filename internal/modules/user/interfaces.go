package user

import (
	"context"

	"filmoteka/internal/domain"
)

// UserRepository is the storage contract for users and the directed
// friendship relation.
type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) (bool, error)
	GetFriendIDs(ctx context.Context, userID int64) ([]int64, error)
	GetCommonFriendIDs(ctx context.Context, userID, otherID int64) ([]int64, error)
}
