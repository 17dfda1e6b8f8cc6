package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(ctx context.Context, user *types.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	value := &types.User{}
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	value := &types.User{}
	err := r.db.
		WithContext(ctx).
		Where("email = ?", email).
		First(value).Error
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*types.User, error) {
	resp := make([]*types.User, 0)
	err := r.db.WithContext(ctx).Order("name asc").Find(&resp).Error
	return resp, err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&types.User{}, "id = ?", id).Error
}
