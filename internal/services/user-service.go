package services

import (
	"errors"
	"strings"

	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/helper"
	"github.com/kanbanlab/board_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(input dto.UserCreate) (*domain.User, error)
	List() ([]domain.User, error)
	Get(id uint) (*domain.User, error)
	Login(name, password string) (*domain.User, string, error)
	Update(id uint, input dto.UserUpdate) (*domain.User, error)
	ChangePassword(id uint, newPassword string) (*domain.User, error)
	ResetPassword(id uint, newPassword string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
	auth  helper.Auth
}

func NewUserService(users repository.UserRepository, auth helper.Auth) UserService {
	return &userService{users: users, auth: auth}
}

// Register hashes the password and creates the account. The first user of a
// fresh database becomes an active admin with every permission; everyone
// after that waits inactive until an admin flips the flags.
func (s *userService) Register(input dto.UserCreate) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return nil, errors.New("name and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	count, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	isFirst := count == 0

	user := &domain.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		IsAdmin:      isFirst,
		IsActive:     isFirst,
		CanView:      isFirst,
		CanEdit:      isFirst,
		CanDelete:    isFirst,
	}
	return s.users.Create(user)
}

func (s *userService) List() ([]domain.User, error) {
	return s.users.FindAll()
}

func (s *userService) Get(id uint) (*domain.User, error) {
	return s.users.FindByID(id)
}

func (s *userService) Login(name, password string) (*domain.User, string, error) {
	user, err := s.users.FindByName(name)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", domain.ErrAccountInactive
	}

	token, err := s.auth.GenerateToken(int(user.ID), user.Name)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Update(id uint, input dto.UserUpdate) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.CanView != nil {
		user.CanView = *input.CanView
	}
	if input.CanEdit != nil {
		user.CanEdit = *input.CanEdit
	}
	if input.CanDelete != nil {
		user.CanDelete = *input.CanDelete
	}
	if input.MustChangePassword != nil {
		user.MustChangePassword = *input.MustChangePassword
	}

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword is the self-service flow after login; it clears the
// must_change_password flag.
func (s *userService) ChangePassword(id uint, newPassword string) (*domain.User, error) {
	return s.setPassword(id, newPassword, false)
}

// ResetPassword is the admin flow: a temporary password is set and the user
// has to pick a new one at next login.
func (s *userService) ResetPassword(id uint, newPassword string) (*domain.User, error) {
	return s.setPassword(id, newPassword, true)
}

func (s *userService) setPassword(id uint, newPassword string, mustChange bool) (*domain.User, error) {
	if newPassword == "" {
		return nil, errors.New("new password is required")
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user.PasswordHash = string(hashed)
	user.MustChangePassword = mustChange
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
