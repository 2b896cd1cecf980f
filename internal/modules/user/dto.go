package user

import (
	"time"

	"filmoteka/internal/domain"
)

type UserRequest struct {
	Email    string `json:"email" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Name     string `json:"name"`
	Birthday string `json:"birthday" binding:"required"`
}

func (r UserRequest) toDomain(id int64) (*domain.User, error) {
	birthday, err := time.Parse("2006-01-02", r.Birthday)
	if err != nil {
		return nil, &domain.ValidationError{Field: "birthday", Rule: "must be a YYYY-MM-DD date"}
	}

	return &domain.User{
		ID:       id,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: birthday,
	}, nil
}
