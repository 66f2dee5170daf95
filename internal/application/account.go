package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/internal/repository"
	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/linskybing/bizportal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidRole         = errors.New("invalid role")
)

type AccountService struct {
	Repos      *repository.Repos
	BcryptCost int
}

func NewAccountService(repos *repository.Repos, bcryptCost int) *AccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{
		Repos:      repos,
		BcryptCost: bcryptCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// notFound maps a missing row to ErrUserNotFound and passes other failures through.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func hashFailure(err error) error {
	if errors.Is(err, utils.ErrEmptyPassword) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPasswordHashFailure, err)
}

func (s *AccountService) RegisterIntakeUser(input intake.RegisterUserInput) (intake.User, error) {
	email := normalizeEmail(input.Email)
	_, err := s.Repos.IntakeUser.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return intake.User{}, err
	}
	if err == nil {
		return intake.User{}, ErrEmailTaken
	}

	usr := intake.User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
	}
	if err := usr.SetPasswordWithCost(input.Password, s.BcryptCost); err != nil {
		return intake.User{}, hashFailure(err)
	}
	if err := s.Repos.IntakeUser.CreateUser(&usr); err != nil {
		if errors.Is(err, dberr.ErrDuplicateKey) {
			return intake.User{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		return intake.User{}, err
	}
	return usr, nil
}

// AuthenticateIntakeUser never tells an unknown email apart from a wrong password.
func (s *AccountService) AuthenticateIntakeUser(email, password string) (intake.User, error) {
	usr, err := s.Repos.IntakeUser.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return intake.User{}, ErrInvalidCredentials
	}
	if !usr.CheckPassword(password) {
		return intake.User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (s *AccountService) ChangeIntakePassword(id uint, input intake.ChangePasswordInput) error {
	usr, err := s.Repos.IntakeUser.GetUserByID(id)
	if err != nil {
		return notFound(err)
	}
	if !usr.CheckPassword(input.OldPassword) {
		return ErrIncorrectPassword
	}
	if err := usr.SetPasswordWithCost(input.NewPassword, s.BcryptCost); err != nil {
		return hashFailure(err)
	}
	return s.Repos.IntakeUser.SaveUser(&usr)
}

func (s *AccountService) RegisterWorker(input workforce.RegisterUserInput) (workforce.User, error) {
	role := input.Role
	if role == 0 {
		role = workforce.RoleEmployee
	}
	if !role.Valid() {
		return workforce.User{}, ErrInvalidRole
	}

	email := normalizeEmail(input.Email)
	_, err := s.Repos.User.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return workforce.User{}, err
	}
	if err == nil {
		return workforce.User{}, ErrEmailTaken
	}

	usr := workforce.User{
		FullName:    strings.TrimSpace(input.FullName),
		CompanyName: input.CompanyName,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Email:       email,
		Role:        role,
		HourlyRate:  input.HourlyRate,
	}
	if err := usr.SetPasswordWithCost(input.Password, s.BcryptCost); err != nil {
		return workforce.User{}, hashFailure(err)
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if errors.Is(err, dberr.ErrDuplicateKey) {
			return workforce.User{}, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}
		return workforce.User{}, err
	}
	return usr, nil
}

func (s *AccountService) AuthenticateWorker(email, password string) (workforce.User, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return workforce.User{}, ErrInvalidCredentials
	}
	if !usr.CheckPassword(password) {
		return workforce.User{}, ErrInvalidCredentials
	}
	return usr, nil
}

func (s *AccountService) ChangeWorkerPassword(id uint, oldPassword, newPassword string) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return notFound(err)
	}
	if !usr.CheckPassword(oldPassword) {
		return ErrIncorrectPassword
	}
	if err := usr.SetPasswordWithCost(newPassword, s.BcryptCost); err != nil {
		return hashFailure(err)
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *AccountService) ChangeWorkerRole(id uint, role workforce.Role) (workforce.User, error) {
	if !role.Valid() {
		return workforce.User{}, ErrInvalidRole
	}
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return workforce.User{}, notFound(err)
	}
	usr.Role = role
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return workforce.User{}, err
	}
	return usr, nil
}
