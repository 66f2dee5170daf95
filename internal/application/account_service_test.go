package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"github.com/linskybing/bizportal/internal/repository"
	"github.com/linskybing/bizportal/internal/repository/mock"
	"github.com/linskybing/bizportal/pkg/dberr"
	"github.com/linskybing/bizportal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAccountServiceMocks(t *testing.T) (*AccountService, *mock.MockIntakeUserRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockIntake := mock.NewMockIntakeUserRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		IntakeUser: mockIntake,
		User:       mockUser,
	}
	svc := NewAccountService(repos, bcrypt.MinCost)
	return svc, mockIntake, mockUser
}

func hashed(t *testing.T, plain string) string {
	h, err := utils.HashPassword(plain, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// --------------------- RegisterIntakeUser ---------------------
func TestRegisterIntakeUser_Success(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)

	mockIntake.EXPECT().GetUserByEmail("alice@test.com").Return(intake.User{}, gorm.ErrRecordNotFound)
	mockIntake.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *intake.User) error {
		assert.Equal(t, "alice@test.com", u.Email)
		assert.NotEqual(t, "123456", u.PasswordHash)
		u.ID = 1
		return nil
	})

	usr, err := svc.RegisterIntakeUser(intake.RegisterUserInput{FullName: "Alice", Email: " Alice@Test.com ", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), usr.ID)
	assert.True(t, usr.CheckPassword("123456"))
}

func TestRegisterIntakeUser_EmailTaken(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByEmail("alice@test.com").Return(intake.User{ID: 1}, nil)

	_, err := svc.RegisterIntakeUser(intake.RegisterUserInput{FullName: "Alice", Email: "alice@test.com", Password: "123456"})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestRegisterIntakeUser_RaceOnUniqueEmail(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByEmail("alice@test.com").Return(intake.User{}, gorm.ErrRecordNotFound)
	mockIntake.EXPECT().CreateUser(gomock.Any()).Return(&dberr.DuplicateKeyError{Constraint: "user_email_key"})

	_, err := svc.RegisterIntakeUser(intake.RegisterUserInput{FullName: "Alice", Email: "alice@test.com", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
}

func TestRegisterIntakeUser_EmptyPassword(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByEmail("alice@test.com").Return(intake.User{}, gorm.ErrRecordNotFound)

	_, err := svc.RegisterIntakeUser(intake.RegisterUserInput{FullName: "Alice", Email: "alice@test.com"})
	assert.ErrorIs(t, err, utils.ErrEmptyPassword)
}

func TestRegisterIntakeUser_LookupFailure(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByEmail("alice@test.com").Return(intake.User{}, errors.New("db down"))

	_, err := svc.RegisterIntakeUser(intake.RegisterUserInput{FullName: "Alice", Email: "alice@test.com", Password: "x"})
	assert.EqualError(t, err, "db down")
}

// --------------------- AuthenticateIntakeUser ---------------------
func TestAuthenticateIntakeUser(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	stored := intake.User{ID: 3, Email: "bob@test.com", PasswordHash: hashed(t, "123456")}

	mockIntake.EXPECT().GetUserByEmail("bob@test.com").Return(stored, nil).Times(2)
	mockIntake.EXPECT().GetUserByEmail("ghost@test.com").Return(intake.User{}, gorm.ErrRecordNotFound)

	usr, err := svc.AuthenticateIntakeUser("bob@test.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, uint(3), usr.ID)

	_, err = svc.AuthenticateIntakeUser("bob@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateIntakeUser("ghost@test.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- ChangeIntakePassword ---------------------
func TestChangeIntakePassword_Success(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	stored := intake.User{ID: 3, FullName: "Bob", Email: "bob@test.com", PasswordHash: hashed(t, "oldpass")}

	mockIntake.EXPECT().GetUserByID(uint(3)).Return(stored, nil)
	mockIntake.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *intake.User) error {
		assert.True(t, u.CheckPassword("newpass"))
		assert.False(t, u.CheckPassword("oldpass"))
		return nil
	})

	err := svc.ChangeIntakePassword(3, intake.ChangePasswordInput{OldPassword: "oldpass", NewPassword: "newpass"})
	assert.NoError(t, err)
}

func TestChangeIntakePassword_WrongOld(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByID(uint(3)).Return(intake.User{ID: 3, PasswordHash: hashed(t, "oldpass")}, nil)

	err := svc.ChangeIntakePassword(3, intake.ChangePasswordInput{OldPassword: "nope", NewPassword: "newpass"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestChangeIntakePassword_UserNotFound(t *testing.T) {
	svc, mockIntake, _ := setupAccountServiceMocks(t)
	mockIntake.EXPECT().GetUserByID(uint(9)).Return(intake.User{}, gorm.ErrRecordNotFound)

	err := svc.ChangeIntakePassword(9, intake.ChangePasswordInput{OldPassword: "a", NewPassword: "b"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- RegisterWorker ---------------------
func TestRegisterWorker_DefaultsToEmployee(t *testing.T) {
	svc, _, mockUser := setupAccountServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("eve@test.com").Return(workforce.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(nil)

	usr, err := svc.RegisterWorker(workforce.RegisterUserInput{
		FullName:    "Eve",
		PhoneNumber: "555-0101",
		Email:       "eve@test.com",
		Password:    "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, workforce.RoleEmployee, usr.Role)
	assert.True(t, usr.CheckPassword("123456"))
}

func TestRegisterWorker_InvalidRole(t *testing.T) {
	svc, _, _ := setupAccountServiceMocks(t)

	_, err := svc.RegisterWorker(workforce.RegisterUserInput{Email: "x@test.com", Password: "1", Role: workforce.Role(8)})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterWorker_EmailTaken(t *testing.T) {
	svc, _, mockUser := setupAccountServiceMocks(t)
	mockUser.EXPECT().GetUserByEmail("eve@test.com").Return(workforce.User{ID: 2}, nil)

	_, err := svc.RegisterWorker(workforce.RegisterUserInput{Email: "eve@test.com", Password: "1", Role: workforce.RoleVendor})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- AuthenticateWorker / ChangeWorkerPassword ---------------------
func TestAuthenticateWorker(t *testing.T) {
	svc, _, mockUser := setupAccountServiceMocks(t)
	stored := workforce.User{ID: 5, Email: "admin@test.com", Role: workforce.RoleAdmin, PasswordHash: hashed(t, "adminpw")}
	mockUser.EXPECT().GetUserByEmail("admin@test.com").Return(stored, nil).Times(2)

	usr, err := svc.AuthenticateWorker("ADMIN@test.com", "adminpw")
	require.NoError(t, err)
	assert.True(t, usr.IsAdmin())

	_, err = svc.AuthenticateWorker("admin@test.com", "adminpw ")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangeWorkerPassword(t *testing.T) {
	svc, _, mockUser := setupAccountServiceMocks(t)
	stored := workforce.User{ID: 5, PasswordHash: hashed(t, "oldpass")}
	mockUser.EXPECT().GetUserByID(uint(5)).Return(stored, nil).Times(2)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	assert.ErrorIs(t, svc.ChangeWorkerPassword(5, "bad", "newpass"), ErrIncorrectPassword)
	assert.NoError(t, svc.ChangeWorkerPassword(5, "oldpass", "newpass"))
}

func TestChangeWorkerRole(t *testing.T) {
	svc, _, mockUser := setupAccountServiceMocks(t)
	mockUser.EXPECT().GetUserByID(uint(5)).Return(workforce.User{ID: 5, Role: workforce.RoleEmployee}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, err := svc.ChangeWorkerRole(5, workforce.RoleVendor)
	require.NoError(t, err)
	assert.True(t, usr.IsVendor())

	_, err = svc.ChangeWorkerRole(5, workforce.Role(0))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserLookup_StorageErrorPassesThrough(t *testing.T) {
	svc, mockIntake, mockUser := setupAccountServiceMocks(t)
	dbDown := errors.New("db down")
	mockIntake.EXPECT().GetUserByID(uint(1)).Return(intake.User{}, dbDown)
	mockUser.EXPECT().GetUserByID(uint(2)).Return(workforce.User{}, dbDown).Times(2)
	mockUser.EXPECT().GetUserByID(uint(3)).Return(workforce.User{}, gorm.ErrRecordNotFound)

	err := svc.ChangeIntakePassword(1, intake.ChangePasswordInput{OldPassword: "a", NewPassword: "b"})
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	err = svc.ChangeWorkerPassword(2, "a", "b")
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ChangeWorkerRole(2, workforce.RoleAdmin)
	assert.ErrorIs(t, err, dbDown)

	_, err = svc.ChangeWorkerRole(3, workforce.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
