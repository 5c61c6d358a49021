package repository

import (
	"errors"

	"github.com/kanbanlab/board_service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *domain.User) (*domain.User, error)
	FindAll() ([]domain.User, error)
	FindByID(id uint) (*domain.User, error)
	FindByName(name string) (*domain.User, error)
	Save(user *domain.User) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		zap.L().Error("create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindAll() ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.Order("name").Find(&users).Error; err != nil {
		zap.L().Error("list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "User"}
		}
		zap.L().Error("find user", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindByName(name string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.Where("name = ?", name).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "User"}
		}
		zap.L().Error("find user by name", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Save(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		zap.L().Error("save user", zap.Uint("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.User{}).Count(&n).Error; err != nil {
		zap.L().Error("count users", zap.Error(err))
		return 0, err
	}
	return n, nil
}
