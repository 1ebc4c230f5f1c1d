package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"booking-backend/app/apperr"
	"booking-backend/app/models"
	"booking-backend/app/repo"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrBadPassword  = errors.New("invalid password")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register creates an account with the role fixed to "user". There is no
// self-escalation path; admins only come from EnsureAdmin.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: count users: %v", apperr.ErrStore, err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: name, Email: email, PasswordHash: string(hash), Role: models.RoleUser}
	if err := s.users.Create(u); err != nil {
		return nil, fmt.Errorf("%w: create user: %v", apperr.ErrStore, err)
	}
	return u, nil
}

// EnsureAdmin seeds the configured admin account once; reruns are no-ops.
func (s *UserService) EnsureAdmin(name, email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return s.users.Create(&models.User{Name: name, Email: email, PasswordHash: string(hash), Role: models.RoleAdmin})
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %v", apperr.ErrStore, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}
	return u, nil
}

// RoleByID is the middleware's per-request role lookup. A missing user is
// an error here: a token may outlive its account.
func (s *UserService) RoleByID(id uint) (string, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
