package repository

import (
	"context"
	"errors"

	"filmoteka/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:       row.ID,
		Email:    row.Email,
		Login:    row.Login,
		Name:     row.Name,
		Birthday: row.Birthday,
	}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list users", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}
	return users, nil
}

// GetByID returns nil without error when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get user", err)
	}
	u := toDomainUser(row)
	return &u, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate("check user", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	row := userRow{
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate("create user", err)
	}
	u.ID = row.ID
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	res := r.db.WithContext(ctx).
		Model(&userRow{}).
		Where("id = ?", u.ID).
		Select("email", "login", "name", "birthday").
		Updates(userRow{
			Email:    u.Email,
			Login:    u.Login,
			Name:     u.Name,
			Birthday: u.Birthday,
		})
	if res.Error != nil {
		return translate("update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Kind: "user", ID: u.ID}
	}
	return nil
}

// Delete removes the user together with every friendship row referencing
// them (either direction) and every like they recorded. Reports whether a
// user row was actually removed.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&friendshipRow{}).Error; err != nil {
			return translate("delete friendships", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&filmLikeRow{}).Error; err != nil {
			return translate("delete user likes", err)
		}
		res := tx.Where("id = ?", id).Delete(&userRow{})
		if res.Error != nil {
			return translate("delete user", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddFriend stores one directed row: friendID becomes visible in userID's
// friend list, not the other way around. Idempotent.
func (r *UserRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	row := friendshipRow{UserID: userID, FriendID: friendID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	return translate("add friend", err)
}

// RemoveFriend deletes the userID -> friendID row only. Reports whether a
// row was actually removed.
func (r *UserRepository) RemoveFriend(ctx context.Context, userID, friendID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&friendshipRow{})
	if tx.Error != nil {
		return false, translate("remove friend", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (r *UserRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&friendshipRow{}).
		Where("user_id = ?", userID).
		Order("friend_id ASC").
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, translate("get friends", err)
	}
	return ids, nil
}

// GetCommonFriendIDs intersects the two users' friend sets with a self-join
// on the friendship table. Empty result is not an error.
func (r *UserRepository) GetCommonFriendIDs(ctx context.Context, userID, otherID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("friendship AS f1").
		Joins("JOIN friendship AS f2 ON f1.friend_id = f2.friend_id").
		Where("f1.user_id = ? AND f2.user_id = ?", userID, otherID).
		Order("f1.friend_id ASC").
		Pluck("f1.friend_id", &ids).Error
	if err != nil {
		return nil, translate("get common friends", err)
	}
	return ids, nil
}
